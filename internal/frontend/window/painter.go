package window

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Versifine/spacee/internal/physics"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// debugFontHeight is the glyph height of the ebitenutil debug font.
const debugFontHeight = 16

// painter draws logical-pixel calls onto an ebiten image scaled to its
// backing size.
type painter struct {
	dst   *ebiten.Image
	scale float32
}

func (p painter) pt(v physics.Vec2) (float32, float32) {
	return float32(v.X) * p.scale, float32(v.Y) * p.scale
}

func (p painter) FillRect(x, y, w, h float64, c color.Color) {
	s := float64(p.scale)
	vector.DrawFilledRect(p.dst, float32(x*s), float32(y*s), float32(w*s), float32(h*s), c, false)
}

func (p painter) FillCircle(center physics.Vec2, r float64, c color.Color) {
	x, y := p.pt(center)
	vector.DrawFilledCircle(p.dst, x, y, float32(r)*p.scale, c, true)
}

func (p painter) StrokeCircle(center physics.Vec2, r, width float64, c color.Color) {
	x, y := p.pt(center)
	vector.StrokeCircle(p.dst, x, y, float32(r)*p.scale, float32(width)*p.scale, c, true)
}

func (p painter) FillPolygon(points []physics.Vec2, c color.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	for i, v := range points {
		x, y := p.pt(v)
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		FillRule:       ebiten.NonZero,
		AntiAlias:      true,
	}
	p.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func (p painter) StrokePolygon(points []physics.Vec2, width float64, c color.Color) {
	for i := range points {
		x0, y0 := p.pt(points[i])
		x1, y1 := p.pt(points[(i+1)%len(points)])
		vector.StrokeLine(p.dst, x0, y0, x1, y1, float32(width)*p.scale, c, true)
	}
}

// Text uses the debug font, which has one size and one colour.
func (p painter) Text(s string, x, y, _ float64, _ color.Color) {
	s64 := float64(p.scale)
	ebitenutil.DebugPrintAt(p.dst, latin1(s), int(math.Round(x*s64)), int(math.Round(y*s64))-debugFontHeight)
}

// latin1 replaces runes the debug font cannot draw.
func latin1(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xff {
			return '*'
		}
		return r
	}, s)
}
