package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Versifine/spacee/internal/physics"
)

func TestDisplayListRecordsInOrder(t *testing.T) {
	d := NewDisplayList()
	d.FillRect(0, 0, 800, 600, Background)
	d.FillCircle(physics.Vec2{X: 1, Y: 2}, 3, BulletFill)
	d.StrokePolygon([]physics.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, 2, ShipStroke)
	d.Text("Score: 0", 12, 24, 16, HUDText)

	ops := d.Ops()
	require.Len(t, ops, 4)
	assert.Equal(t, OpFillRect, ops[0].Kind)
	assert.Equal(t, OpFillCircle, ops[1].Kind)
	assert.Equal(t, OpStrokePolygon, ops[2].Kind)
	assert.Equal(t, OpText, ops[3].Kind)
	assert.Equal(t, "Score: 0", ops[3].Text)
	assert.Equal(t, "stroke_polygon", ops[2].Kind.String())
}

func TestDisplayListCopiesPoints(t *testing.T) {
	d := NewDisplayList()
	pts := []physics.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 1}}
	d.FillPolygon(pts, EnemyFill)
	pts[0].X = 99

	assert.Equal(t, 1.0, d.Ops()[0].Points[0].X)
}

func TestDisplayListReplay(t *testing.T) {
	src := NewDisplayList()
	src.FillRect(0, 0, 10, 10, color.Black)
	src.StrokeCircle(physics.Vec2{X: 5, Y: 5}, 4, 1, color.White)
	src.FillPolygon([]physics.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, EnemyFill)
	src.Text("hi", 1, 2, 12, HUDHint)

	dst := NewDisplayList()
	src.Replay(dst)

	assert.Equal(t, src.Ops(), dst.Ops())

	src.Reset()
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 4, dst.Len())
}
