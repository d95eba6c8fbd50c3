// Package frontend holds what every host shares: run parameters and the
// pause and quit key handling. The hosts themselves live in the headless,
// terminal and window subpackages.
package frontend

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Versifine/spacee/internal/event"
	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/loop"
)

var ErrNoSimulation = errors.New("frontend: no simulation")

type Params struct {
	Sim loop.Simulation
	Bus *event.Bus

	Title  string
	Width  int // initial logical size
	Height int
	Scale  float64 // 0 asks the host for its pixel ratio

	MaxDelta float64
	TickHz   int
	// Frames stops the host after that many simulated frames. 0 runs
	// until quit.
	Frames uint64

	Logger *slog.Logger
}

func (p Params) Validate() error {
	if p.Sim == nil {
		return ErrNoSimulation
	}
	if p.TickHz <= 0 {
		return fmt.Errorf("frontend: tick rate must be > 0, got %d", p.TickHz)
	}
	return nil
}

func (p Params) TickInterval() time.Duration {
	return time.Second / time.Duration(p.TickHz)
}

func (p Params) Log() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

// DriverOptions fills the loop options shared by every host.
func (p Params) DriverOptions(vp loop.Viewport, sched loop.Scheduler, clock loop.Clock) loop.Options {
	return loop.Options{
		Viewport:  vp,
		Sim:       p.Sim,
		Scheduler: sched,
		Clock:     clock,
		Bus:       p.Bus,
		MaxDelta:  p.MaxDelta,
		Logger:    p.Log(),
	}
}

// Done reports whether the frame budget is spent.
func (p Params) Done(d *loop.Driver) bool {
	return p.Frames > 0 && d.Frames() >= p.Frames
}

// Controls maps the pause and quit bindings onto the driver. Attach it to
// the same source as the driver's input.
type Controls struct {
	driver *loop.Driver
	quit   func()
	log    *slog.Logger
}

func NewControls(d *loop.Driver, quit func(), logger *slog.Logger) *Controls {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controls{driver: d, quit: quit, log: logger}
}

func (c *Controls) HandleEvent(ev input.Event) {
	if ev.Kind != input.KeyDown {
		return
	}
	switch {
	case slices.Contains(input.Pause, ev.Key):
		if err := c.driver.Toggle(); err != nil {
			c.log.Warn("Toggle pause failed", "error", err)
			return
		}
		c.log.Info("Pause toggled", "running", c.driver.Running())
	case slices.Contains(input.Quit, ev.Key):
		c.log.Info("Quit requested", "key", ev.Key)
		if c.quit != nil {
			c.quit()
		}
	}
}
