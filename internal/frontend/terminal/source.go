package terminal

import (
	"maps"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Versifine/spacee/internal/input"
)

// Terminals report key presses and auto-repeat but never releases, so a
// key counts as held until keyPulse passes without another press.
const defaultKeyPulse = 180 * time.Millisecond

// Source turns tcell events into input events. It must be fed from the
// host's loop goroutine.
type Source struct {
	*input.Queue
	canvas *Canvas
	pulse  time.Duration

	heldUntil map[string]time.Duration
	pointerDn bool
}

func NewSource(canvas *Canvas) *Source {
	return &Source{
		Queue:     input.NewQueue(),
		canvas:    canvas,
		pulse:     defaultKeyPulse,
		heldUntil: make(map[string]time.Duration),
	}
}

// Handle dispatches ev; now is the host clock used for key release.
func (s *Source) Handle(ev tcell.Event, now time.Duration) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := keyName(ev)
		if name == "" {
			return
		}
		if _, held := s.heldUntil[name]; !held {
			s.Push(input.Event{Kind: input.KeyDown, Key: name})
		}
		s.heldUntil[name] = now + s.pulse
	case *tcell.EventMouse:
		x, y := s.canvas.Logical(ev.Position())
		s.Push(input.Event{Kind: input.PointerMove, X: x, Y: y})
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !s.pointerDn:
			s.Push(input.Event{Kind: input.PointerDown})
		case !down && s.pointerDn:
			s.Push(input.Event{Kind: input.PointerUp})
		}
		s.pointerDn = down
	}
}

// Expire releases every key whose pulse ran out by now.
func (s *Source) Expire(now time.Duration) {
	for _, name := range slices.Sorted(maps.Keys(s.heldUntil)) {
		if s.heldUntil[name] <= now {
			delete(s.heldUntil, name)
			s.Push(input.Event{Kind: input.KeyUp, Key: name})
		}
	}
}

func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyUp:
		return input.KeyArrowUp
	case tcell.KeyDown:
		return input.KeyArrowDown
	case tcell.KeyLeft:
		return input.KeyArrowLeft
	case tcell.KeyRight:
		return input.KeyArrowRight
	case tcell.KeyEscape:
		return input.KeyEscape
	}
	return ""
}
