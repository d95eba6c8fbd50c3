// Package window plays the game in a desktop window through ebiten.
package window

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Versifine/spacee/internal/frontend"
	"github.com/Versifine/spacee/internal/loop"
)

var errQuit = errors.New("window: quit requested")

type resizeObserver struct {
	fn func()
}

func (o *resizeObserver) Observe(fn func()) (func(), error) {
	o.fn = fn
	return func() { o.fn = nil }, nil
}

// Game adapts the loop driver to ebiten.Game. Frames are pumped from
// Update, which ebiten calls on a single goroutine.
type Game struct {
	ctx      context.Context
	params   frontend.Params
	viewport *Viewport
	source   Poller
	queue    *loop.FrameQueue
	clock    loop.Clock
	resizes  *resizeObserver
	driver   *loop.Driver
	quit     error
	log      *slog.Logger
}

func NewGame(ctx context.Context, p frontend.Params) (*Game, error) {
	return newGame(ctx, p, NewViewport(p.Width, p.Height, p.Scale), NewSource(), loop.NewSystemClock())
}

func newGame(ctx context.Context, p frontend.Params, vp *Viewport, src Poller, clock loop.Clock) (*Game, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		ctx:      ctx,
		params:   p,
		viewport: vp,
		source:   src,
		queue:    loop.NewFrameQueue(),
		clock:    clock,
		resizes:  &resizeObserver{},
		log:      p.Log().With("frontend", "window"),
	}
	opts := p.DriverOptions(vp, g.queue, g.clock)
	opts.Input = src
	opts.Resizes = g.resizes
	d, err := loop.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create loop driver: %w", err)
	}
	g.driver = d

	controls := frontend.NewControls(d, func() { g.quit = errQuit }, g.log)
	if err := src.Attach(controls); err != nil {
		_ = d.Destroy()
		return nil, fmt.Errorf("attach controls: %w", err)
	}
	if err := d.Start(); err != nil {
		_ = d.Destroy()
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit != nil || g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.viewport.takeResize() && g.resizes.fn != nil {
		g.resizes.fn()
	}
	g.source.Poll(g.viewport.Scale())
	if g.quit != nil {
		return ebiten.Termination
	}

	if g.queue.Pending() > 0 {
		g.viewport.Reset()
		g.queue.Fire(g.clock.Now())
	}
	if err := g.driver.Err(); err != nil {
		return err
	}
	if g.params.Done(g.driver) {
		g.log.Info("Frame budget spent", "frames", g.driver.Frames())
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.viewport.Replay(painter{dst: screen, scale: float32(g.viewport.Scale())})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewport.layout(outsideWidth, outsideHeight)
}

// Close releases the driver. Safe to call more than once.
func (g *Game) Close() error {
	return g.driver.Destroy()
}

// Run opens the window and plays until it is closed, a quit key is
// pressed, ctx ends or the frame budget is spent.
func Run(ctx context.Context, p frontend.Params) error {
	g, err := NewGame(ctx, p)
	if err != nil {
		return err
	}
	defer func() {
		if err := g.Close(); err != nil {
			g.log.Warn("Destroy loop driver failed", "error", err)
		}
	}()

	ebiten.SetWindowTitle(p.Title)
	ebiten.SetWindowSize(p.Width, p.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g.log.Info("Window frontend started", "width", p.Width, "height", p.Height)
	return ebiten.RunGame(g)
}
