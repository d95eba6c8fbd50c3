package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Versifine/spacee/internal/input"
)

// Poller is an input source that reads device state once per Update.
type Poller interface {
	input.Source
	Poll(scale float64)
}

// Source polls ebiten's keyboard and mouse state and pushes the changes.
type Source struct {
	*input.Queue
	keys    []ebiten.Key
	lastX   int
	lastY   int
	moved   bool
	pressed bool
}

func NewSource() *Source {
	return &Source{Queue: input.NewQueue()}
}

// Poll must run inside Game.Update. scale converts screen pixels back to
// logical pixels.
func (s *Source) Poll(scale float64) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if name := keyName(k); name != "" {
			s.Push(input.Event{Kind: input.KeyDown, Key: name})
		}
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if name := keyName(k); name != "" {
			s.Push(input.Event{Kind: input.KeyUp, Key: name})
		}
	}

	x, y := ebiten.CursorPosition()
	if !s.moved || x != s.lastX || y != s.lastY {
		s.lastX, s.lastY, s.moved = x, y, true
		if !(scale > 0) {
			scale = 1
		}
		s.Push(input.Event{Kind: input.PointerMove, X: float64(x) / scale, Y: float64(y) / scale})
	}

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case down && !s.pressed:
		s.Push(input.Event{Kind: input.PointerDown})
	case !down && s.pressed:
		s.Push(input.Event{Kind: input.PointerUp})
	}
	s.pressed = down
}

// keyName maps ebiten keys to the names the bindings use. Letters come
// through lower case, since ebiten reports physical keys.
func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return input.KeyArrowUp
	case ebiten.KeyArrowDown:
		return input.KeyArrowDown
	case ebiten.KeyArrowLeft:
		return input.KeyArrowLeft
	case ebiten.KeyArrowRight:
		return input.KeyArrowRight
	case ebiten.KeyEscape:
		return input.KeyEscape
	case ebiten.KeySpace:
		return input.KeySpace
	}
	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		return strings.ToLower(k.String())
	}
	return ""
}
