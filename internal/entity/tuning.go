package entity

import (
	"errors"
	"fmt"

	"github.com/Versifine/spacee/internal/physics"
)

type ShipTuning struct {
	Radius      float64
	Thrust      float64
	Friction    float64
	ShootRate   float64
	BulletSpeed float64
}

type BulletTuning struct {
	Radius   float64
	Lifetime float64
}

type EnemyTuning struct {
	Radius   float64
	SpeedMin float64
	SpeedMax float64
	Health   int
}

// Tuning groups the parameters of every entity kind.
type Tuning struct {
	Ship   ShipTuning
	Bullet BulletTuning
	Enemy  EnemyTuning
}

func DefaultTuning() Tuning {
	return Tuning{
		Ship: ShipTuning{
			Radius:      physics.ShipRadius,
			Thrust:      physics.ShipThrust,
			Friction:    physics.ShipFriction,
			ShootRate:   physics.ShipShootRate,
			BulletSpeed: physics.ShipBulletSpeed,
		},
		Bullet: BulletTuning{
			Radius:   physics.BulletRadius,
			Lifetime: physics.BulletLifetime,
		},
		Enemy: EnemyTuning{
			Radius:   physics.EnemyRadius,
			SpeedMin: physics.EnemySpeedMin,
			SpeedMax: physics.EnemySpeedMax,
			Health:   physics.EnemyHealth,
		},
	}
}

func (t ShipTuning) Validate() error {
	if !(t.Radius > 0) {
		return fmt.Errorf("ship: %w: got %v", ErrInvalidRadius, t.Radius)
	}
	if err := positive("ship thrust", t.Thrust); err != nil {
		return err
	}
	if !(t.Friction > 0 && t.Friction <= 1) {
		return fmt.Errorf("%w: ship friction must be in (0,1], got %v", ErrInvalidParameter, t.Friction)
	}
	if err := positive("ship shoot rate", t.ShootRate); err != nil {
		return err
	}
	return positive("ship bullet speed", t.BulletSpeed)
}

func (t BulletTuning) Validate() error {
	if !(t.Radius > 0) {
		return fmt.Errorf("bullet: %w: got %v", ErrInvalidRadius, t.Radius)
	}
	return positive("bullet lifetime", t.Lifetime)
}

func (t EnemyTuning) Validate() error {
	if !(t.Radius > 0) {
		return fmt.Errorf("enemy: %w: got %v", ErrInvalidRadius, t.Radius)
	}
	if err := positive("enemy min speed", t.SpeedMin); err != nil {
		return err
	}
	if t.SpeedMax < t.SpeedMin {
		return fmt.Errorf("%w: enemy max speed %v below min speed %v", ErrInvalidParameter, t.SpeedMax, t.SpeedMin)
	}
	if t.Health < 0 {
		return fmt.Errorf("%w: enemy health must be >= 0, got %d", ErrInvalidParameter, t.Health)
	}
	return nil
}

func (t Tuning) Validate() error {
	return errors.Join(t.Ship.Validate(), t.Bullet.Validate(), t.Enemy.Validate())
}
