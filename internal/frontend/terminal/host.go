// Package terminal plays the game in a terminal through tcell. Cells stand
// in for pixels and the mouse aims wherever the terminal reports it.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Versifine/spacee/internal/frontend"
	"github.com/Versifine/spacee/internal/loop"
)

const eventBuffer = 64

// resizeObserver forwards tcell resize events to the driver.
type resizeObserver struct {
	fn func()
}

func (o *resizeObserver) Observe(fn func()) (func(), error) {
	o.fn = fn
	return func() { o.fn = nil }, nil
}

func (o *resizeObserver) notify() {
	if o.fn != nil {
		o.fn()
	}
}

type Host struct {
	screen  tcell.Screen
	params  frontend.Params
	canvas  *Canvas
	source  *Source
	queue   *loop.FrameQueue
	clock   loop.Clock
	resizes *resizeObserver
	log     *slog.Logger
}

// New wires a host onto an initialised screen. The caller keeps ownership
// of the screen.
func New(screen tcell.Screen, p frontend.Params) (*Host, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	canvas := NewCanvas(screen)
	return &Host{
		screen:  screen,
		params:  p,
		canvas:  canvas,
		source:  NewSource(canvas),
		queue:   loop.NewFrameQueue(),
		clock:   loop.NewSystemClock(),
		resizes: &resizeObserver{},
		log:     p.Log().With("frontend", "terminal"),
	}, nil
}

// RunScreen opens the process terminal, plays until quit and restores it.
func RunScreen(ctx context.Context, p frontend.Params) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	h, err := New(screen, p)
	if err != nil {
		return err
	}
	return h.Run(ctx)
}

// Run plays until ctx ends, a quit key is pressed or the frame budget is
// spent. A tcell pump goroutine feeds the loop goroutine, which owns the
// driver and the simulation.
func (h *Host) Run(ctx context.Context) error {
	opts := h.params.DriverOptions(h.canvas, h.queue, h.clock)
	opts.Input = h.source
	opts.Resizes = h.resizes
	d, err := loop.New(opts)
	if err != nil {
		return fmt.Errorf("create loop driver: %w", err)
	}
	defer func() {
		if err := d.Destroy(); err != nil {
			h.log.Warn("Destroy loop driver failed", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := h.source.Attach(frontend.NewControls(d, cancel, h.log)); err != nil {
		return fmt.Errorf("attach controls: %w", err)
	}
	if err := d.Start(); err != nil {
		return err
	}
	w, hgt := d.Size()
	h.log.Info("Terminal frontend started", "width", w, "height", hgt)

	events := make(chan tcell.Event, eventBuffer)
	quit := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h.screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		return h.loop(gctx, d, events, cancel)
	})
	return g.Wait()
}

func (h *Host) loop(ctx context.Context, d *loop.Driver, events <-chan tcell.Event, cancel context.CancelFunc) error {
	ticker := time.NewTicker(h.params.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			h.dispatch(ev, cancel)
		case <-ticker.C:
			now := h.clock.Now()
			h.source.Expire(now)
			if h.queue.Pending() > 0 {
				h.queue.Fire(now)
				h.screen.Show()
			}
			if err := d.Err(); err != nil {
				return err
			}
			if h.params.Done(d) {
				h.log.Info("Frame budget spent", "frames", d.Frames())
				return nil
			}
		}
	}
}

func (h *Host) dispatch(ev tcell.Event, cancel context.CancelFunc) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resizes.notify()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			cancel()
			return
		}
		h.source.Handle(ev, h.clock.Now())
	case *tcell.EventMouse:
		h.source.Handle(ev, h.clock.Now())
	}
}
