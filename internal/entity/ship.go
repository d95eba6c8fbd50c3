package entity

import (
	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/physics"
	"github.com/Versifine/spacee/internal/render"
)

// shipHull is the ship outline in local space, nose along +X.
var shipHull = []physics.Vec2{
	{X: 18, Y: 0},
	{X: -12, Y: -10},
	{X: -12, Y: 10},
}

// Ship is the player. It aims at the pointer, moves by impulses from the
// directional keys and fires while the pointer button is held.
type Ship struct {
	Body
	Velocity      physics.Vec2
	Thrust        float64
	Friction      float64
	ShootCooldown float64
	ShootRate     float64
	BulletSpeed   float64

	bullet BulletTuning
}

func NewShip(pos physics.Vec2, t ShipTuning, bt BulletTuning) (*Ship, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := bt.Validate(); err != nil {
		return nil, err
	}
	body, err := newBody(pos, t.Radius)
	if err != nil {
		return nil, err
	}
	return &Ship{
		Body:        body,
		Thrust:      t.Thrust,
		Friction:    t.Friction,
		ShootRate:   t.ShootRate,
		BulletSpeed: t.BulletSpeed,
		bullet:      bt,
	}, nil
}

func (s *Ship) Update(dt float64, in *input.State, w World) {
	pointer := in.Pointer()
	s.Rotation = physics.Vec2{X: pointer.X, Y: pointer.Y}.Sub(s.Position).Angle()

	impulse := s.Thrust * dt
	if in.AnyDown(input.MoveUp...) {
		s.Velocity.Y -= impulse
	}
	if in.AnyDown(input.MoveDown...) {
		s.Velocity.Y += impulse
	}
	if in.AnyDown(input.MoveLeft...) {
		s.Velocity.X -= impulse
	}
	if in.AnyDown(input.MoveRight...) {
		s.Velocity.X += impulse
	}

	s.Position = physics.Integrate(s.Position, s.Velocity, dt)
	s.Velocity = physics.Damp(s.Velocity, s.Friction)
	s.wrap(w)

	s.ShootCooldown -= dt
	if s.ShootCooldown < 0 {
		s.ShootCooldown = 0
	}
	if pointer.Down && s.ShootCooldown <= 0 {
		s.Shoot(w)
		s.ShootCooldown = s.ShootRate
	}
}

// Shoot adds one bullet at the ship's position travelling along its rotation.
func (s *Ship) Shoot(w World) *Bullet {
	b := makeBullet(s.Position, physics.FromAngle(s.Rotation, s.BulletSpeed), s.bullet)
	w.Add(b)
	return b
}

func (s *Ship) Draw(surface render.Surface) {
	surface.StrokePolygon(s.transform(shipHull), 2, render.ShipStroke)
}
