// Package input aggregates key and pointer notifications from an external
// event source into a snapshot the simulation reads once per tick.
package input

import (
	"fmt"

	"github.com/ErikKalkoken/go-set"
)

// Pointer is the pointer position in surface-local coordinates.
type Pointer struct {
	X    float64
	Y    float64
	Down bool
}

// Offsetter reports where the rendering surface sits on screen.
type Offsetter interface {
	Offset() (x, y float64)
}

// State is the queryable input snapshot. It is mutated only through
// HandleEvent while attached to a source; entities only read it.
type State struct {
	keys    set.Set[string]
	pointer Pointer
	surface Offsetter
	source  Source
}

func NewState() *State {
	return &State{}
}

// Attach subscribes the state to src. A failed subscription is returned
// unchanged so callers never run with a half-attached source.
func (s *State) Attach(src Source) error {
	if src == nil {
		return ErrNilSource
	}
	if s.source != nil {
		return ErrAlreadyAttached
	}
	if err := src.Attach(s); err != nil {
		return fmt.Errorf("attach input source: %w", err)
	}
	s.source = src
	return nil
}

// Detach releases the source subscription and clears held keys.
// After Detach no event mutates the state.
func (s *State) Detach() error {
	if s.source == nil {
		return nil
	}
	src := s.source
	s.source = nil
	s.keys = set.Set[string]{}
	s.pointer.Down = false
	if err := src.Detach(s); err != nil {
		return fmt.Errorf("detach input source: %w", err)
	}
	return nil
}

func (s *State) Attached() bool {
	return s != nil && s.source != nil
}

// AttachSurface sets the surface used to translate pointer coordinates.
// Passing nil falls back to raw event coordinates.
func (s *State) AttachSurface(o Offsetter) {
	s.surface = o
}

func (s *State) HandleEvent(ev Event) {
	if s.source == nil {
		return
	}
	switch ev.Kind {
	case KeyDown:
		if ev.Key != "" {
			s.keys.Add(ev.Key)
		}
	case KeyUp:
		s.keys.Delete(ev.Key)
	case PointerDown:
		s.pointer.Down = true
	case PointerUp:
		s.pointer.Down = false
	case PointerMove:
		var ox, oy float64
		if s.surface != nil {
			ox, oy = s.surface.Offset()
		}
		s.pointer.X = ev.X - ox
		s.pointer.Y = ev.Y - oy
	}
}

// IsDown reports whether key is currently held. Unknown keys are never down.
func (s *State) IsDown(key string) bool {
	if s == nil {
		return false
	}
	return s.keys.Contains(key)
}

// AnyDown reports whether at least one of keys is held.
func (s *State) AnyDown(keys ...string) bool {
	for _, k := range keys {
		if s.IsDown(k) {
			return true
		}
	}
	return false
}

func (s *State) Pointer() Pointer {
	if s == nil {
		return Pointer{}
	}
	return s.pointer
}
