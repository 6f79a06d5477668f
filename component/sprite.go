package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/invaders/ecs"
)

// Renderer is the sink sprites submit to each Draw pass. The game owns the
// screen and implements this per frame.
type Renderer interface {
	DrawSprite(img *ebiten.Image, topLeft cp.Vector)
}

// SpriteRenderer draws a solid-color rectangle centered on the sibling
// Transform. Requires a Transform attached first.
type SpriteRenderer struct {
	ecs.BaseComponent
	Size cp.Vector
	Fill color.Color

	target    Renderer
	image     *ebiten.Image
	transform *Transform
}

// NewSpriteRenderer creates a sprite of 2*halfSize tinted with fill that
// draws through target.
func NewSpriteRenderer(target Renderer, halfSize cp.Vector, fill color.Color) *SpriteRenderer {
	return &SpriteRenderer{target: target, Size: halfSize.Mult(2), Fill: fill}
}

// Init resolves the sibling Transform and builds the sprite image.
func (s *SpriteRenderer) Init() {
	s.transform = ecs.Get[*Transform](s.Owner())

	w, h := int(s.Size.X), int(s.Size.Y)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.image = ebiten.NewImage(w, h)
	s.image.Fill(s.Fill)
}

// Draw submits the sprite at its current position.
func (s *SpriteRenderer) Draw() {
	s.target.DrawSprite(s.image, s.transform.Position.Sub(s.Size.Mult(0.5)))
}
