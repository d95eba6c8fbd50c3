package entity

import (
	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/physics"
	"github.com/Versifine/spacee/internal/render"
)

// Bullet flies in a straight line and expires after Lifetime seconds.
type Bullet struct {
	Body
	Velocity physics.Vec2
	Lifetime float64
}

func NewBullet(pos, vel physics.Vec2, t BulletTuning) (*Bullet, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return makeBullet(pos, vel, t), nil
}

// makeBullet skips validation; t must already be valid.
func makeBullet(pos, vel physics.Vec2, t BulletTuning) *Bullet {
	return &Bullet{
		Body:     Body{Position: pos, radius: t.Radius},
		Velocity: vel,
		Lifetime: t.Lifetime,
	}
}

func (b *Bullet) Update(dt float64, _ *input.State, w World) {
	b.Position = physics.Integrate(b.Position, b.Velocity, dt)
	b.Lifetime -= dt
	if b.Lifetime <= 0 {
		b.Kill()
	}
	b.wrap(w)
}

func (b *Bullet) Draw(surface render.Surface) {
	surface.FillCircle(b.Position, b.radius, render.BulletFill)
}
