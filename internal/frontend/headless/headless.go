// Package headless runs the simulation without any display. Frames are
// stepped on a manual clock at the configured tick rate, so a run with a
// frame budget is deterministic for a fixed seed.
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/Versifine/spacee/internal/frontend"
	"github.com/Versifine/spacee/internal/loop"
	"github.com/Versifine/spacee/internal/render"
)

// Canvas records the last frame's draw calls.
type Canvas struct {
	*render.DisplayList
	width    float64
	height   float64
	backingW int
	backingH int
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		DisplayList: render.NewDisplayList(),
		width:       float64(width),
		height:      float64(height),
	}
}

func (c *Canvas) ClientSize() (float64, float64) { return c.width, c.height }
func (c *Canvas) DevicePixelRatio() float64      { return 1 }

func (c *Canvas) SetBackingSize(w, h int, _ float64) {
	c.backingW, c.backingH = w, h
}

func (c *Canvas) BackingSize() (int, int) {
	return c.backingW, c.backingH
}

// Run steps frames until ctx ends, the frame budget is spent, or the
// simulation fails. Without a budget frames are paced in real time.
func Run(ctx context.Context, p frontend.Params, canvas *Canvas) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if canvas == nil {
		canvas = NewCanvas(p.Width, p.Height)
	}
	log := p.Log().With("frontend", "headless")

	queue := loop.NewFrameQueue()
	clock := &loop.ManualClock{}
	d, err := loop.New(p.DriverOptions(canvas, queue, clock))
	if err != nil {
		return fmt.Errorf("create loop driver: %w", err)
	}
	defer func() {
		if err := d.Destroy(); err != nil {
			log.Warn("Destroy loop driver failed", "error", err)
		}
	}()
	if err := d.Start(); err != nil {
		return err
	}

	step := p.TickInterval()
	var pace <-chan time.Time
	if p.Frames == 0 {
		ticker := time.NewTicker(step)
		defer ticker.Stop()
		pace = ticker.C
	}

	log.Info("Headless run started", "frames", p.Frames, "tick", step)
	for !p.Done(d) && queue.Pending() > 0 {
		if pace != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-pace:
			}
		} else if ctx.Err() != nil {
			return nil
		}
		canvas.Reset()
		queue.Fire(clock.Advance(step))
	}
	log.Info("Headless run finished", "frames", d.Frames())
	return d.Err()
}
