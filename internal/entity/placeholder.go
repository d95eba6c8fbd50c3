package entity

import (
	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/physics"
	"github.com/Versifine/spacee/internal/render"
)

// Placeholder is an inert entity drawn as a faint circle. Scenes built for
// other game variants use it to stand in for kinds they have not written yet.
type Placeholder struct {
	Body
}

func NewPlaceholder(pos physics.Vec2, radius float64) (*Placeholder, error) {
	body, err := newBody(pos, radius)
	if err != nil {
		return nil, err
	}
	return &Placeholder{Body: body}, nil
}

func (p *Placeholder) Update(float64, *input.State, World) {}

func (p *Placeholder) Draw(surface render.Surface) {
	surface.StrokeCircle(p.Position, p.radius, 1, render.Placeholder)
}
