package window

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Versifine/spacee/internal/render"
)

// Viewport records each frame into a display list during Update; Draw
// replays it onto the screen image. The outside size arrives from Layout,
// which ebiten may call from another goroutine, so it is guarded and only
// applied from Update.
type Viewport struct {
	*render.DisplayList

	mu       sync.Mutex
	outsideW int
	outsideH int
	dirty    bool
	backingW int
	backingH int
	scale    float64

	ratio func() float64
}

// NewViewport starts at the requested window size. A scale of 0 follows
// the monitor's device scale factor.
func NewViewport(width, height int, scale float64) *Viewport {
	ratio := monitorScale
	if scale > 0 {
		ratio = func() float64 { return scale }
	}
	return &Viewport{
		DisplayList: render.NewDisplayList(),
		outsideW:    width,
		outsideH:    height,
		scale:       1,
		ratio:       ratio,
	}
}

func monitorScale() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	return m.DeviceScaleFactor()
}

func (v *Viewport) ClientSize() (float64, float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return float64(v.outsideW), float64(v.outsideH)
}

func (v *Viewport) DevicePixelRatio() float64 {
	return v.ratio()
}

func (v *Viewport) SetBackingSize(w, h int, scale float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.backingW, v.backingH, v.scale = w, h, scale
}

// Scale is backing pixels per logical pixel.
func (v *Viewport) Scale() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scale
}

// layout records the outside size and returns the screen size to use.
func (v *Viewport) layout(outsideW, outsideH int) (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if outsideW != v.outsideW || outsideH != v.outsideH {
		v.outsideW, v.outsideH = outsideW, outsideH
		v.dirty = true
	}
	if v.backingW <= 0 || v.backingH <= 0 {
		return outsideW, outsideH
	}
	return v.backingW, v.backingH
}

// takeResize reports whether the outside size changed since the last call.
func (v *Viewport) takeResize() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	dirty := v.dirty
	v.dirty = false
	return dirty
}
