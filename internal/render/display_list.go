package render

import (
	"image/color"

	"github.com/Versifine/spacee/internal/physics"
)

type OpKind uint8

const (
	OpFillRect OpKind = iota
	OpFillCircle
	OpStrokeCircle
	OpFillPolygon
	OpStrokePolygon
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill_rect"
	case OpFillCircle:
		return "fill_circle"
	case OpStrokeCircle:
		return "stroke_circle"
	case OpFillPolygon:
		return "fill_polygon"
	case OpStrokePolygon:
		return "stroke_polygon"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Rect   [4]float64 // x, y, w, h
	Center physics.Vec2
	Radius float64
	Width  float64
	Points []physics.Vec2
	Text   string
	Size   float64
	Color  color.Color
}

// DisplayList is a Surface that records every call in order.
type DisplayList struct {
	ops []Op
}

func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

func (d *DisplayList) FillRect(x, y, w, h float64, c color.Color) {
	d.ops = append(d.ops, Op{Kind: OpFillRect, Rect: [4]float64{x, y, w, h}, Color: c})
}

func (d *DisplayList) FillCircle(center physics.Vec2, r float64, c color.Color) {
	d.ops = append(d.ops, Op{Kind: OpFillCircle, Center: center, Radius: r, Color: c})
}

func (d *DisplayList) StrokeCircle(center physics.Vec2, r, width float64, c color.Color) {
	d.ops = append(d.ops, Op{Kind: OpStrokeCircle, Center: center, Radius: r, Width: width, Color: c})
}

func (d *DisplayList) FillPolygon(points []physics.Vec2, c color.Color) {
	d.ops = append(d.ops, Op{Kind: OpFillPolygon, Points: clonePoints(points), Color: c})
}

func (d *DisplayList) StrokePolygon(points []physics.Vec2, width float64, c color.Color) {
	d.ops = append(d.ops, Op{Kind: OpStrokePolygon, Points: clonePoints(points), Width: width, Color: c})
}

func (d *DisplayList) Text(s string, x, y, size float64, c color.Color) {
	d.ops = append(d.ops, Op{Kind: OpText, Text: s, Rect: [4]float64{x, y, 0, 0}, Size: size, Color: c})
}

// Ops returns the recorded calls. The slice is owned by the list.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Reset drops recorded calls but keeps the backing array.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

// Replay issues the recorded calls onto dst in recording order.
func (d *DisplayList) Replay(dst Surface) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpFillRect:
			dst.FillRect(op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3], op.Color)
		case OpFillCircle:
			dst.FillCircle(op.Center, op.Radius, op.Color)
		case OpStrokeCircle:
			dst.StrokeCircle(op.Center, op.Radius, op.Width, op.Color)
		case OpFillPolygon:
			dst.FillPolygon(op.Points, op.Color)
		case OpStrokePolygon:
			dst.StrokePolygon(op.Points, op.Width, op.Color)
		case OpText:
			dst.Text(op.Text, op.Rect[0], op.Rect[1], op.Size, op.Color)
		}
	}
}

func clonePoints(points []physics.Vec2) []physics.Vec2 {
	out := make([]physics.Vec2, len(points))
	copy(out, points)
	return out
}
