package frontend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/loop"
	"github.com/Versifine/spacee/internal/render"
)

type stubViewport struct{ *render.DisplayList }

func (stubViewport) ClientSize() (float64, float64) { return 800, 600 }
func (stubViewport) DevicePixelRatio() float64      { return 1 }
func (stubViewport) SetBackingSize(int, int, float64) {}

type stubSim struct{ updates int }

func (s *stubSim) Update(float64, *input.State) error { s.updates++; return nil }
func (s *stubSim) Draw(render.Surface)               {}
func (s *stubSim) Resize(int, int) error             { return nil }

func TestParamsValidate(t *testing.T) {
	assert.ErrorIs(t, Params{TickHz: 60}.Validate(), ErrNoSimulation)
	assert.Error(t, Params{Sim: &stubSim{}}.Validate())
	require.NoError(t, Params{Sim: &stubSim{}, TickHz: 50}.Validate())
	assert.Equal(t, 20*time.Millisecond, Params{TickHz: 50}.TickInterval())
}

func TestControls(t *testing.T) {
	sim := &stubSim{}
	p := Params{Sim: sim, TickHz: 60, Frames: 2}
	queue := loop.NewFrameQueue()
	clock := &loop.ManualClock{}
	src := input.NewQueue()

	opts := p.DriverOptions(stubViewport{render.NewDisplayList()}, queue, clock)
	opts.Input = src
	d, err := loop.New(opts)
	require.NoError(t, err)

	quits := 0
	require.NoError(t, src.Attach(NewControls(d, func() { quits++ }, nil)))

	src.PressKey("p")
	assert.True(t, d.Running())
	src.ReleaseKey("p")
	src.PressKey("P")
	assert.False(t, d.Running())

	src.PressKey("w")
	assert.Equal(t, 0, quits)
	src.PressKey(input.KeyEscape)
	src.PressKey("q")
	assert.Equal(t, 2, quits)

	require.NoError(t, d.Start())
	assert.False(t, p.Done(d))
	queue.Fire(clock.Advance(time.Millisecond))
	queue.Fire(clock.Advance(time.Millisecond))
	assert.True(t, p.Done(d))
	assert.Equal(t, 2, sim.updates)
}
