package event

import (
	"log/slog"
	"sync"
)

type HandlerFunc func(raw any)

type subscription struct {
	id      uint64
	handler HandlerFunc
}

// Bus is a name-keyed publish/subscribe hub. Handlers run synchronously on
// the publishing goroutine, in subscription order; a panicking handler is
// logged and does not stop the others.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]subscription
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]subscription),
	}
}

// Subscribe registers handler for eventName and returns a function that
// removes it again.
func (b *Bus) Subscribe(eventName string, handler HandlerFunc) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.handlers[eventName] = append(b.handlers[eventName], subscription{id: id, handler: handler})
	return func() {
		b.unsubscribe(eventName, id)
	}
}

func (b *Bus) unsubscribe(eventName string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.handlers[eventName]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventName] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventName]) == 0 {
		delete(b.handlers, eventName)
	}
}

func (b *Bus) Publish(eventName string, evt any) {
	if b == nil {
		return
	}
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[eventName]))
	copy(subs, b.handlers[eventName])
	b.mu.RUnlock()

	for _, s := range subs {
		b.call(eventName, s.handler, evt)
	}
}

func (b *Bus) call(eventName string, h HandlerFunc, evt any) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event handler panicked", "event", eventName, "panic", r)
		}
	}()
	h(evt)
}
