package input

import "errors"

var (
	ErrNilSource       = errors.New("input: nil source")
	ErrNilHandler      = errors.New("input: nil handler")
	ErrAlreadyAttached = errors.New("input: already attached")
	ErrNotAttached     = errors.New("input: not attached")
)

type EventKind uint8

const (
	KeyDown EventKind = iota
	KeyUp
	PointerDown
	PointerUp
	PointerMove
)

func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	case PointerDown:
		return "pointer_down"
	case PointerUp:
		return "pointer_up"
	case PointerMove:
		return "pointer_move"
	default:
		return "unknown"
	}
}

// Event is one notification from an external input source. Key is set for
// key events; X and Y are raw (screen) coordinates for pointer moves.
type Event struct {
	Kind EventKind
	Key  string
	X    float64
	Y    float64
}

type Handler interface {
	HandleEvent(ev Event)
}

// Source delivers events to attached handlers. Implementations must deliver
// on the goroutine that owns the simulation.
type Source interface {
	Attach(h Handler) error
	Detach(h Handler) error
}

// Queue is an in-memory Source. Push dispatches synchronously to every
// attached handler in attach order.
type Queue struct {
	handlers []Handler
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Attach(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	for _, existing := range q.handlers {
		if existing == h {
			return ErrAlreadyAttached
		}
	}
	q.handlers = append(q.handlers, h)
	return nil
}

func (q *Queue) Detach(h Handler) error {
	for i, existing := range q.handlers {
		if existing == h {
			q.handlers = append(q.handlers[:i], q.handlers[i+1:]...)
			return nil
		}
	}
	return ErrNotAttached
}

// Handlers reports how many handlers are attached.
func (q *Queue) Handlers() int {
	return len(q.handlers)
}

func (q *Queue) Push(ev Event) {
	for _, h := range append([]Handler(nil), q.handlers...) {
		h.HandleEvent(ev)
	}
}

func (q *Queue) PressKey(key string) {
	q.Push(Event{Kind: KeyDown, Key: key})
}

func (q *Queue) ReleaseKey(key string) {
	q.Push(Event{Kind: KeyUp, Key: key})
}

func (q *Queue) MovePointer(x, y float64) {
	q.Push(Event{Kind: PointerMove, X: x, Y: y})
}
