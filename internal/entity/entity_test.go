package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/physics"
	"github.com/Versifine/spacee/internal/render"
)

type fakeWorld struct {
	width, height float64
	added         []Entity
	player        *Ship
}

func (w *fakeWorld) Bounds() (float64, float64) { return w.width, w.height }

func (w *fakeWorld) Add(e Entity) Entity {
	w.added = append(w.added, e)
	return e
}

func (w *fakeWorld) Player() *Ship { return w.player }

func newWorld() *fakeWorld {
	return &fakeWorld{width: 800, height: 600}
}

func newInput(t *testing.T) (*input.State, *input.Queue) {
	t.Helper()
	q := input.NewQueue()
	s := input.NewState()
	require.NoError(t, s.Attach(q))
	return s, q
}

func mustShip(t *testing.T, x, y float64) *Ship {
	t.Helper()
	tun := DefaultTuning()
	s, err := NewShip(physics.Vec2{X: x, Y: y}, tun.Ship, tun.Bullet)
	require.NoError(t, err)
	return s
}

func TestConstructorsRejectInvalidParameters(t *testing.T) {
	tun := DefaultTuning()

	badShip := tun.Ship
	badShip.Radius = 0
	_, err := NewShip(physics.Vec2{}, badShip, tun.Bullet)
	assert.ErrorIs(t, err, ErrInvalidRadius)

	badShip = tun.Ship
	badShip.Friction = 1.5
	_, err = NewShip(physics.Vec2{}, badShip, tun.Bullet)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	badShip = tun.Ship
	badShip.ShootRate = 0
	_, err = NewShip(physics.Vec2{}, badShip, tun.Bullet)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewBullet(physics.Vec2{}, physics.Vec2{}, BulletTuning{Radius: -3, Lifetime: 2})
	assert.ErrorIs(t, err, ErrInvalidRadius)

	_, err = NewEnemy(physics.Vec2{}, EnemyTuning{Radius: 16, SpeedMin: 100, SpeedMax: 60}, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewEnemyWithSpeed(physics.Vec2{}, 16, -1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewPlaceholder(physics.Vec2{}, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidRadius)

	assert.NoError(t, tun.Validate())
}

func TestShipAimsAtPointer(t *testing.T) {
	in, q := newInput(t)
	s := mustShip(t, 100, 100)

	q.MovePointer(100, 200)
	s.Update(0.016, in, newWorld())
	assert.InDelta(t, math.Pi/2, s.Rotation, 1e-9)

	q.MovePointer(0, 100)
	s.Update(0.016, in, newWorld())
	assert.InDelta(t, math.Pi, s.Rotation, 1e-9)
}

func TestShipThrustIntegratesThenAppliesFriction(t *testing.T) {
	in, q := newInput(t)
	s := mustShip(t, 100, 100)
	q.MovePointer(100, 100)
	q.PressKey("d")
	q.PressKey("W")

	s.Update(0.1, in, newWorld())

	// impulse 180*0.1 = 18 on each axis, position moves by 18*0.1 before damping.
	assert.InDelta(t, 101.8, s.Position.X, 1e-9)
	assert.InDelta(t, 98.2, s.Position.Y, 1e-9)
	assert.InDelta(t, 18*0.98, s.Velocity.X, 1e-9)
	assert.InDelta(t, -18*0.98, s.Velocity.Y, 1e-9)
}

func TestShipWrapsPreservingVelocity(t *testing.T) {
	in, _ := newInput(t)
	s := mustShip(t, 799, 300)
	s.Velocity = physics.Vec2{X: 100, Y: 0}

	s.Update(0.02, in, newWorld())

	assert.InDelta(t, 1, s.Position.X, 1e-9)
	assert.InDelta(t, 98, s.Velocity.X, 1e-9)
}

func TestShipShootsWhileHeldRespectingCooldown(t *testing.T) {
	in, q := newInput(t)
	w := newWorld()
	s := mustShip(t, 100, 100)
	q.MovePointer(200, 100)
	q.Push(input.Event{Kind: input.PointerDown})

	s.Update(0.01, in, w)
	require.Len(t, w.added, 1)
	b, ok := w.added[0].(*Bullet)
	require.True(t, ok)
	assert.InDelta(t, 400, b.Velocity.X, 1e-9)
	assert.InDelta(t, 0, b.Velocity.Y, 1e-9)
	assert.Equal(t, s.Position, b.Position)
	assert.Equal(t, s.ShootRate, s.ShootCooldown)

	s.Update(0.1, in, w)
	assert.Len(t, w.added, 1, "cooldown still running")

	s.Update(0.06, in, w)
	assert.Len(t, w.added, 2)

	q.Push(input.Event{Kind: input.PointerUp})
	s.Update(1, in, w)
	assert.Len(t, w.added, 2)
	assert.Equal(t, 0.0, s.ShootCooldown)
}

func TestBulletExpiresAfterLifetime(t *testing.T) {
	b, err := NewBullet(physics.Vec2{X: 10, Y: 10}, physics.Vec2{X: 100, Y: 0}, BulletTuning{Radius: 3, Lifetime: 0.5})
	require.NoError(t, err)
	w := newWorld()

	b.Update(0.25, nil, w)
	assert.True(t, b.Alive())
	assert.InDelta(t, 35, b.Position.X, 1e-9)

	b.Update(0.25, nil, w)
	assert.False(t, b.Alive())
}

func TestBulletWraps(t *testing.T) {
	b, err := NewBullet(physics.Vec2{X: 5, Y: 5}, physics.Vec2{X: -400, Y: -400}, DefaultTuning().Bullet)
	require.NoError(t, err)

	b.Update(0.02, nil, newWorld())
	assert.InDelta(t, 797, b.Position.X, 1e-9)
	assert.InDelta(t, 597, b.Position.Y, 1e-9)
}

func TestEnemySeeksPlayer(t *testing.T) {
	w := newWorld()
	w.player = mustShip(t, 400, 300)
	e, err := NewEnemyWithSpeed(physics.Vec2{X: 100, Y: 300}, 16, 80)
	require.NoError(t, err)

	e.Update(0.5, nil, w)
	assert.InDelta(t, 80, e.Velocity.X, 1e-9)
	assert.InDelta(t, 0, e.Velocity.Y, 1e-9)
	assert.InDelta(t, 140, e.Position.X, 1e-9)
}

func TestEnemyHoldsVelocityWithoutPlayer(t *testing.T) {
	w := newWorld()
	e, err := NewEnemyWithSpeed(physics.Vec2{X: 100, Y: 100}, 16, 80)
	require.NoError(t, err)
	e.Velocity = physics.Vec2{X: 0, Y: 50}

	e.Update(0.1, nil, w)
	assert.Equal(t, physics.Vec2{X: 0, Y: 50}, e.Velocity)

	dead := mustShip(t, 0, 0)
	dead.Kill()
	w.player = dead
	e.Update(0.1, nil, w)
	assert.Equal(t, physics.Vec2{X: 0, Y: 50}, e.Velocity)
	assert.InDelta(t, 110, e.Position.Y, 1e-9)
}

func TestEnemySpeedWithinRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tun := DefaultTuning().Enemy
	for i := 0; i < 200; i++ {
		e, err := NewEnemy(physics.Vec2{}, tun, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, e.Speed, tun.SpeedMin)
		assert.Less(t, e.Speed, tun.SpeedMax)
	}
}

func TestKillIsOneWay(t *testing.T) {
	p, err := NewPlaceholder(physics.Vec2{X: 1, Y: 1}, 10)
	require.NoError(t, err)
	assert.True(t, p.Alive())
	p.Kill()
	p.Update(1, nil, newWorld())
	assert.False(t, p.Alive())
}

func TestDrawIssuesPrimitives(t *testing.T) {
	d := render.NewDisplayList()
	mustShip(t, 50, 50).Draw(d)

	e, err := NewEnemyWithSpeed(physics.Vec2{X: 10, Y: 10}, 16, 60)
	require.NoError(t, err)
	e.Draw(d)

	b, err := NewBullet(physics.Vec2{X: 1, Y: 1}, physics.Vec2{}, DefaultTuning().Bullet)
	require.NoError(t, err)
	b.Draw(d)

	ops := d.Ops()
	require.Len(t, ops, 4)
	assert.Equal(t, render.OpStrokePolygon, ops[0].Kind)
	assert.Len(t, ops[0].Points, 3)
	assert.Equal(t, physics.Vec2{X: 68, Y: 50}, ops[0].Points[0], "nose at +18 with zero rotation")
	assert.Equal(t, render.OpFillPolygon, ops[1].Kind)
	assert.Len(t, ops[1].Points, 6)
	assert.Equal(t, render.OpStrokePolygon, ops[2].Kind)
	assert.Equal(t, render.OpFillCircle, ops[3].Kind)
	assert.Equal(t, 3.0, ops[3].Radius)
}
