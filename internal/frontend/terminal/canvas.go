package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Versifine/spacee/internal/physics"
)

// A terminal cell stands for this many logical pixels.
const (
	cellWidth  = 8
	cellHeight = 16
)

const (
	strokeRune = '•'
	fillRune   = ' '
)

// Canvas rasterises logical-pixel drawing calls onto terminal cells. The
// logical size is whatever the driver last set; it is stretched over the
// whole screen, so a terminal smaller than the minimum size still shows
// the full playfield.
type Canvas struct {
	screen   tcell.Screen
	logicalW float64
	logicalH float64
}

func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen}
}

func (c *Canvas) ClientSize() (float64, float64) {
	cols, rows := c.screen.Size()
	return float64(cols * cellWidth), float64(rows * cellHeight)
}

func (c *Canvas) DevicePixelRatio() float64 {
	return 1
}

func (c *Canvas) SetBackingSize(w, h int, scale float64) {
	c.logicalW = float64(w) / scale
	c.logicalH = float64(h) / scale
}

// Cell maps a logical point to the cell containing it.
func (c *Canvas) Cell(x, y float64) (int, int) {
	sx, sy := c.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// Logical maps a cell to the logical point at its centre.
func (c *Canvas) Logical(col, row int) (float64, float64) {
	sx, sy := c.scale()
	return (float64(col) + 0.5) / sx, (float64(row) + 0.5) / sy
}

// scale is cells per logical pixel on each axis.
func (c *Canvas) scale() (float64, float64) {
	cols, rows := c.screen.Size()
	w, h := c.logicalW, c.logicalH
	if w <= 0 || h <= 0 {
		return 1.0 / cellWidth, 1.0 / cellHeight
	}
	return float64(cols) / w, float64(rows) / h
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	c0, r0 := c.Cell(x, y)
	c1, r1 := c.Cell(x+w, y+h)
	style := tcell.StyleDefault.Background(toTcell(clr))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			c.set(col, row, fillRune, style)
		}
	}
}

func (c *Canvas) FillCircle(center physics.Vec2, r float64, clr color.Color) {
	c.fillWhere(center.X-r, center.Y-r, center.X+r, center.Y+r, center, func(p physics.Vec2) bool {
		return physics.Distance(p, center) <= r
	}, clr)
}

func (c *Canvas) StrokeCircle(center physics.Vec2, r, _ float64, clr color.Color) {
	steps := max(12, int(2*math.Pi*r/cellWidth)*2)
	for i := 0; i < steps; i++ {
		p := physics.FromAngle(2*math.Pi*float64(i)/float64(steps), r).Add(center)
		c.plot(p, clr)
	}
}

func (c *Canvas) FillPolygon(points []physics.Vec2, clr color.Color) {
	if len(points) < 3 {
		return
	}
	minX, minY, maxX, maxY := bounds(points)
	c.fillWhere(minX, minY, maxX, maxY, centroid(points), func(p physics.Vec2) bool {
		return insidePolygon(p, points)
	}, clr)
}

func (c *Canvas) StrokePolygon(points []physics.Vec2, _ float64, clr color.Color) {
	for i := range points {
		c.line(points[i], points[(i+1)%len(points)], clr)
	}
}

// Text writes s with its baseline at y, like a canvas fillText call.
func (c *Canvas) Text(s string, x, y, size float64, clr color.Color) {
	col, row := c.Cell(x, y-size)
	fg := toTcell(clr)
	for _, r := range s {
		c.setForeground(col, row, r, fg)
		col++
	}
}

// fillWhere paints every cell in the box whose centre passes inside. A
// shape smaller than a cell still paints the cell holding fallback.
func (c *Canvas) fillWhere(x0, y0, x1, y1 float64, fallback physics.Vec2, inside func(physics.Vec2) bool, clr color.Color) {
	style := tcell.StyleDefault.Background(toTcell(clr))
	c0, r0 := c.Cell(x0, y0)
	c1, r1 := c.Cell(x1, y1)
	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := c.Logical(col, row)
			if inside(physics.Vec2{X: x, Y: y}) {
				c.set(col, row, fillRune, style)
				painted = true
			}
		}
	}
	if !painted {
		col, row := c.Cell(fallback.X, fallback.Y)
		c.set(col, row, fillRune, style)
	}
}

// line walks the cells between a and b (Bresenham).
func (c *Canvas) line(a, b physics.Vec2, clr color.Color) {
	x0, y0 := c.Cell(a.X, a.Y)
	x1, y1 := c.Cell(b.X, b.Y)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	fg := toTcell(clr)
	for {
		c.setForeground(x0, y0, strokeRune, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *Canvas) plot(p physics.Vec2, clr color.Color) {
	col, row := c.Cell(p.X, p.Y)
	c.setForeground(col, row, strokeRune, toTcell(clr))
}

func (c *Canvas) set(col, row int, r rune, style tcell.Style) {
	cols, rows := c.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	c.screen.SetContent(col, row, r, nil, style)
}

// setForeground draws r over the cell, keeping its background.
func (c *Canvas) setForeground(col, row int, r rune, fg tcell.Color) {
	cols, rows := c.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	_, _, style, _ := c.screen.GetContent(col, row)
	c.screen.SetContent(col, row, r, nil, style.Foreground(fg))
}

func toTcell(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func bounds(points []physics.Vec2) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

func centroid(points []physics.Vec2) physics.Vec2 {
	var sum physics.Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(p physics.Vec2, points []physics.Vec2) bool {
	in := false
	j := len(points) - 1
	for i := range points {
		a, b := points[i], points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
