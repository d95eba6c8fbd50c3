package entity

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/physics"
	"github.com/Versifine/spacee/internal/render"
)

// Enemy seeks the player at a constant speed chosen once at spawn.
type Enemy struct {
	Body
	Velocity physics.Vec2
	Speed    float64
	Health   int
}

// NewEnemy draws the speed from [SpeedMin, SpeedMax) using rng, or the
// global source when rng is nil.
func NewEnemy(pos physics.Vec2, t EnemyTuning, rng *rand.Rand) (*Enemy, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	body, err := newBody(pos, t.Radius)
	if err != nil {
		return nil, err
	}
	r := rand.Float64
	if rng != nil {
		r = rng.Float64
	}
	return &Enemy{
		Body:   body,
		Speed:  t.SpeedMin + r()*(t.SpeedMax-t.SpeedMin),
		Health: t.Health,
	}, nil
}

// NewEnemyWithSpeed builds an enemy with a fixed speed.
func NewEnemyWithSpeed(pos physics.Vec2, radius, speed float64) (*Enemy, error) {
	body, err := newBody(pos, radius)
	if err != nil {
		return nil, err
	}
	if err := positive("enemy speed", speed); err != nil {
		return nil, err
	}
	return &Enemy{Body: body, Speed: speed, Health: physics.EnemyHealth}, nil
}

func (e *Enemy) Update(dt float64, _ *input.State, w World) {
	if p := w.Player(); p != nil && p.Alive() {
		// Zero distance keeps the previous heading.
		if dir, ok := p.Position.Sub(e.Position).Normalize(); ok {
			e.Velocity = dir.Scale(e.Speed)
		}
	}
	e.Position = physics.Integrate(e.Position, e.Velocity, dt)
	e.wrap(w)
}

// Hit marks the enemy destroyed.
func (e *Enemy) Hit() {
	e.Health = 0
	e.Kill()
}

func (e *Enemy) Draw(surface render.Surface) {
	hex := make([]physics.Vec2, 6)
	for i := range hex {
		hex[i] = physics.FromAngle(math.Pi/3*float64(i), e.radius).Add(e.Position)
	}
	surface.FillPolygon(hex, render.EnemyFill)
	surface.StrokePolygon(hex, 2, render.EnemyStroke)
}

func (e *Enemy) String() string {
	return fmt.Sprintf("enemy(%.0f,%.0f speed=%.1f)", e.Position.X, e.Position.Y, e.Speed)
}
