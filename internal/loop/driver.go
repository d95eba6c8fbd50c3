// Package loop drives a simulation from host frame callbacks: it measures
// and clamps frame deltas, owns the input state, and keeps the viewport's
// logical and backing sizes in step with the host.
package loop

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/Versifine/spacee/internal/event"
	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/physics"
	"github.com/Versifine/spacee/internal/render"
)

var (
	ErrMissingOption = errors.New("loop: missing required option")
	ErrDestroyed     = errors.New("loop: driver destroyed")
)

// Viewport is the drawing target plus the host facts needed to size it.
type Viewport interface {
	render.Surface
	// ClientSize is the displayed size in logical pixels. Zero means the
	// host has not laid the viewport out yet.
	ClientSize() (w, h float64)
	DevicePixelRatio() float64
	SetBackingSize(w, h int, scale float64)
}

type Simulation interface {
	Update(dt float64, in *input.State) error
	Draw(surface render.Surface)
	Resize(w, h int) error
}

// ResizeObserver calls fn whenever the host viewport changes size, until
// stop is called.
type ResizeObserver interface {
	Observe(fn func()) (stop func(), err error)
}

type Options struct {
	Viewport  Viewport
	Sim       Simulation
	Scheduler Scheduler
	Clock     Clock

	Input   input.Source
	Resizes ResizeObserver
	Bus     *event.Bus

	MaxDelta  float64 // seconds
	MinWidth  int
	MinHeight int

	Logger *slog.Logger
}

type driverState uint8

const (
	stateStopped driverState = iota
	stateRunning
	stateDestroyed
)

func (s driverState) String() string {
	switch s {
	case stateStopped:
		return "stopped"
	case stateRunning:
		return "running"
	case stateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Driver is not safe for concurrent use. Every method and every scheduled
// frame must run on the host's loop goroutine.
type Driver struct {
	viewport  Viewport
	sim       Simulation
	scheduler Scheduler
	clock     Clock
	source    input.Source
	bus       *event.Bus

	maxDelta  float64
	minWidth  int
	minHeight int

	in         *input.State
	stopResize func()

	state      driverState
	lastFrame  time.Duration
	pending    FrameID
	hasPending bool

	width  int
	height int
	frames uint64
	err    error

	clampLog *rate.Limiter
	log      *slog.Logger
}

// New attaches input, sizes the viewport once and subscribes to resizes.
// The driver starts stopped.
func New(opts Options) (*Driver, error) {
	switch {
	case opts.Viewport == nil:
		return nil, fmt.Errorf("%w: viewport", ErrMissingOption)
	case opts.Sim == nil:
		return nil, fmt.Errorf("%w: simulation", ErrMissingOption)
	case opts.Scheduler == nil:
		return nil, fmt.Errorf("%w: scheduler", ErrMissingOption)
	case opts.Clock == nil:
		return nil, fmt.Errorf("%w: clock", ErrMissingOption)
	}
	if !(opts.MaxDelta > 0) {
		opts.MaxDelta = physics.MaxFrameDelta
	}
	if opts.MinWidth <= 0 {
		opts.MinWidth = physics.MinViewportWidth
	}
	if opts.MinHeight <= 0 {
		opts.MinHeight = physics.MinViewportHeight
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Driver{
		viewport:  opts.Viewport,
		sim:       opts.Sim,
		scheduler: opts.Scheduler,
		clock:     opts.Clock,
		source:    opts.Input,
		bus:       opts.Bus,
		maxDelta:  opts.MaxDelta,
		minWidth:  opts.MinWidth,
		minHeight: opts.MinHeight,
		in:        input.NewState(),
		clampLog:  rate.NewLimiter(rate.Every(time.Second), 1),
		log:       logger.With("component", "loop"),
	}

	if off, ok := opts.Viewport.(input.Offsetter); ok {
		d.in.AttachSurface(off)
	}
	if d.source != nil {
		if err := d.in.Attach(d.source); err != nil {
			return nil, err
		}
	}
	if err := d.Resize(); err != nil {
		_ = d.in.Detach()
		return nil, fmt.Errorf("initial resize: %w", err)
	}
	if opts.Resizes != nil {
		stop, err := opts.Resizes.Observe(d.onResize)
		if err != nil {
			_ = d.in.Detach()
			return nil, fmt.Errorf("observe resizes: %w", err)
		}
		d.stopResize = stop
	}
	return d, nil
}

// Start begins scheduling frames. It is a no-op while running.
func (d *Driver) Start() error {
	switch d.state {
	case stateDestroyed:
		return ErrDestroyed
	case stateRunning:
		return nil
	}
	d.state = stateRunning
	d.lastFrame = d.clock.Now()
	d.request()
	d.log.Debug("Loop started")
	d.bus.Publish(event.EventLoopState, event.LoopStateEvent{Running: true})
	return nil
}

// Pause stops scheduling and cancels the frame already requested.
func (d *Driver) Pause() {
	if d.state != stateRunning {
		return
	}
	d.state = stateStopped
	d.cancel()
	d.log.Debug("Loop paused", "frames", d.frames)
	d.bus.Publish(event.EventLoopState, event.LoopStateEvent{Running: false})
}

func (d *Driver) Toggle() error {
	if d.state == stateRunning {
		d.Pause()
		return nil
	}
	return d.Start()
}

// Destroy pauses, releases input and stops resize observation. It is safe
// to call from any state, any number of times.
func (d *Driver) Destroy() error {
	if d.state == stateDestroyed {
		return nil
	}
	d.Pause()
	d.cancel()
	d.state = stateDestroyed

	if d.stopResize != nil {
		d.stopResize()
		d.stopResize = nil
	}
	if err := d.in.Detach(); err != nil {
		return fmt.Errorf("destroy loop: %w", err)
	}
	return nil
}

// Resize recomputes the logical size from the viewport's client size,
// clamped to the minimums, and the backing size from the pixel ratio.
func (d *Driver) Resize() error {
	if d.state == stateDestroyed {
		return nil
	}
	cw, ch := d.viewport.ClientSize()
	w := clampSize(cw, d.minWidth)
	h := clampSize(ch, d.minHeight)

	ratio := d.viewport.DevicePixelRatio()
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	d.viewport.SetBackingSize(int(math.Round(float64(w)*ratio)), int(math.Round(float64(h)*ratio)), ratio)

	if err := d.sim.Resize(w, h); err != nil {
		return err
	}
	if w != d.width || h != d.height {
		d.log.Debug("Viewport resized", "width", w, "height", h, "ratio", ratio)
	}
	d.width, d.height = w, h
	return nil
}

func (d *Driver) onResize() {
	if err := d.Resize(); err != nil {
		d.log.Warn("Resize failed", "error", err)
	}
}

func (d *Driver) Running() bool {
	return d.state == stateRunning
}

// Size is the current logical size.
func (d *Driver) Size() (int, int) {
	return d.width, d.height
}

func (d *Driver) Frames() uint64 {
	return d.frames
}

// Input is the state the simulation reads each frame.
func (d *Driver) Input() *input.State {
	return d.in
}

// Err returns the simulation error that stopped the loop, if any.
func (d *Driver) Err() error {
	return d.err
}

func (d *Driver) request() {
	d.pending = d.scheduler.RequestFrame(d.frame)
	d.hasPending = true
}

func (d *Driver) cancel() {
	if !d.hasPending {
		return
	}
	d.scheduler.CancelFrame(d.pending)
	d.hasPending = false
}

func (d *Driver) frame(now time.Duration) {
	d.hasPending = false
	if d.state != stateRunning {
		return
	}

	elapsed := now - d.lastFrame
	d.lastFrame = now
	dt := max(0, elapsed.Seconds())
	if dt > d.maxDelta {
		dt = d.maxDelta
		if d.clampLog.Allow() {
			d.log.Debug("Frame delta clamped", "elapsed", elapsed, "max", d.maxDelta)
		}
	}

	if err := d.sim.Update(dt, d.in); err != nil {
		d.err = err
		d.log.Error("Simulation update failed", "error", err)
		d.Pause()
		return
	}
	d.sim.Draw(d.viewport)
	d.frames++

	if d.state == stateRunning {
		d.request()
	}
}

func clampSize(v float64, minimum int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return minimum
	}
	return max(minimum, int(math.Floor(v)))
}
