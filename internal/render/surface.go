// Package render defines the primitive drawing surface the simulation draws
// onto. Frontends (terminal, window) implement Surface; DisplayList records
// calls so a frame can be replayed later or inspected by tests.
package render

import (
	"image/color"

	"github.com/Versifine/spacee/internal/physics"
)

// Surface accepts primitive draw calls in logical pixels.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(center physics.Vec2, r float64, c color.Color)
	StrokeCircle(center physics.Vec2, r, width float64, c color.Color)
	FillPolygon(points []physics.Vec2, c color.Color)
	StrokePolygon(points []physics.Vec2, width float64, c color.Color)
	Text(s string, x, y, size float64, c color.Color)
}

// Palette used by the built-in entities and HUD.
var (
	Background  = color.RGBA{R: 0x0b, G: 0x0d, B: 0x10, A: 0xff}
	ShipStroke  = color.RGBA{R: 0x7d, G: 0xd3, B: 0xfc, A: 0xff}
	BulletFill  = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	EnemyFill   = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	EnemyStroke = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	Placeholder = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66}
	HUDText     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}
	HUDHint     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x99}
)
