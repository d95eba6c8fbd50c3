// Package entity holds the simulation objects driven by a scene: the player
// Ship, Bullets it fires, seeking Enemies and a generic Placeholder.
package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/physics"
	"github.com/Versifine/spacee/internal/render"
)

var (
	ErrInvalidRadius    = errors.New("entity: radius must be > 0")
	ErrInvalidParameter = errors.New("entity: invalid parameter")
)

// World is the view of the owning scene an entity sees during Update.
type World interface {
	Bounds() (width, height float64)
	// Add registers a new entity; it is first updated on the next tick.
	Add(e Entity) Entity
	// Player returns the live player ship, or nil.
	Player() *Ship
}

// Entity is one simulation object. Update is called at most once per tick
// and only while Alive; Draw must not change simulation state.
type Entity interface {
	Update(dt float64, in *input.State, w World)
	Draw(s render.Surface)
	Alive() bool
	Kill()
	Center() physics.Vec2
	Radius() float64
}

// Body carries the state shared by every entity kind. Alive → dead is one-way.
type Body struct {
	Position physics.Vec2
	Rotation float64

	radius float64
	dead   bool
}

func newBody(pos physics.Vec2, radius float64) (Body, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Body{}, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	return Body{Position: pos, radius: radius}, nil
}

func (b *Body) Alive() bool {
	return !b.dead
}

func (b *Body) Kill() {
	b.dead = true
}

func (b *Body) Center() physics.Vec2 {
	return b.Position
}

func (b *Body) Radius() float64 {
	return b.radius
}

// Circle returns the collision shape of the body.
func (b *Body) Circle() physics.Circle {
	return physics.Circle{Center: b.Position, Radius: b.radius}
}

func (b *Body) wrap(w World) {
	width, height := w.Bounds()
	b.Position = physics.Wrap(b.Position, width, height)
}

// transform rotates local-space points by the body's rotation and moves them
// to its position.
func (b *Body) transform(local []physics.Vec2) []physics.Vec2 {
	out := make([]physics.Vec2, len(local))
	for i, p := range local {
		out[i] = p.Rotate(b.Rotation).Add(b.Position)
	}
	return out
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidParameter, name, v)
	}
	return nil
}
