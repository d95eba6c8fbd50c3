// Package scene owns the live entity collection and orchestrates one tick:
// entity updates, culling, game rules and draw dispatch.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/Versifine/spacee/internal/entity"
	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/render"
)

var (
	ErrInvalidSize  = errors.New("scene: width and height must be > 0")
	ErrInvalidDelta = errors.New("scene: delta time must be a finite value >= 0")
)

// Scene is the generic entity container. Game variants embed it and add
// their own rules around Step.
type Scene struct {
	width      float64
	height     float64
	entities   []entity.Entity
	Background color.Color
}

func New(width, height int) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Scene{
		width:      float64(width),
		height:     float64(height),
		Background: render.Background,
	}, nil
}

func (s *Scene) Bounds() (float64, float64) {
	return s.width, s.height
}

// Resize changes the logical size used for wrap-around and spawning.
func (s *Scene) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	s.width = float64(width)
	s.height = float64(height)
	return nil
}

// Add appends e to the collection and returns it. Entities added while a
// tick is in progress are first updated on the following tick.
func (s *Scene) Add(e entity.Entity) entity.Entity {
	if e == nil {
		return nil
	}
	s.entities = append(s.entities, e)
	return e
}

func (s *Scene) Remove(e entity.Entity) {
	s.entities = slices.DeleteFunc(s.entities, func(x entity.Entity) bool {
		return x == e
	})
}

// Entities returns a snapshot of the collection in insertion order.
func (s *Scene) Entities() []entity.Entity {
	return slices.Clone(s.entities)
}

func (s *Scene) Len() int {
	return len(s.entities)
}

// Player is nil for the generic scene.
func (s *Scene) Player() *entity.Ship {
	return nil
}

func (s *Scene) Update(dt float64, in *input.State) error {
	return s.Step(dt, in, s)
}

// Step updates every entity alive at the start of the tick, passing w as
// their world, then drops the dead ones.
func (s *Scene) Step(dt float64, in *input.State, w entity.World) error {
	if err := checkDelta(dt); err != nil {
		return err
	}
	for _, e := range slices.Clone(s.entities) {
		if e.Alive() {
			e.Update(dt, in, w)
		}
	}
	s.Cull()
	return nil
}

// Cull removes every entity that is no longer alive.
func (s *Scene) Cull() int {
	before := len(s.entities)
	s.entities = slices.DeleteFunc(s.entities, func(e entity.Entity) bool {
		return !e.Alive()
	})
	return before - len(s.entities)
}

func (s *Scene) Draw(surface render.Surface) {
	surface.FillRect(0, 0, s.width, s.height, s.Background)
	for _, e := range s.entities {
		if e.Alive() {
			e.Draw(surface)
		}
	}
}

func checkDelta(dt float64) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDelta, dt)
	}
	return nil
}
