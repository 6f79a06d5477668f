package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/invaders/ecs"
)

// Physics integrates velocity into the sibling Transform and reports
// world-bounds crossings. Requires a Transform attached first.
type Physics struct {
	ecs.BaseComponent
	Velocity cp.Vector
	HalfSize cp.Vector
	Bounds   cp.Vector // world extent; (0,0) is the top-left corner

	// OnOutOfBounds, when set, receives the direction pointing back into
	// bounds whenever the body crosses an edge.
	OnOutOfBounds func(restitution cp.Vector)

	transform *Transform
}

// NewPhysics creates a body with the given half extents inside bounds.
func NewPhysics(halfSize, bounds cp.Vector) *Physics {
	return &Physics{HalfSize: halfSize, Bounds: bounds}
}

// Init resolves the sibling Transform.
func (p *Physics) Init() {
	p.transform = ecs.Get[*Transform](p.Owner())
}

// Update advances the position by Velocity*dt and fires the out-of-bounds
// callback for any crossed edge.
func (p *Physics) Update(dt float64) {
	p.transform.Position = p.transform.Position.Add(p.Velocity.Mult(dt))

	if p.OnOutOfBounds == nil {
		return
	}
	if p.Left() < 0 {
		p.OnOutOfBounds(cp.Vector{X: 1})
	} else if p.Right() > p.Bounds.X {
		p.OnOutOfBounds(cp.Vector{X: -1})
	}
	if p.Top() < 0 {
		p.OnOutOfBounds(cp.Vector{Y: 1})
	} else if p.Bottom() > p.Bounds.Y {
		p.OnOutOfBounds(cp.Vector{Y: -1})
	}
}

// X returns the body's center x.
func (p *Physics) X() float64 {
	return p.transform.X()
}

// Y returns the body's center y.
func (p *Physics) Y() float64 {
	return p.transform.Y()
}

// Left returns the body's left edge.
func (p *Physics) Left() float64 {
	return p.X() - p.HalfSize.X
}

// Right returns the body's right edge.
func (p *Physics) Right() float64 {
	return p.X() + p.HalfSize.X
}

// Top returns the body's top edge (screen coordinates, y grows downward).
func (p *Physics) Top() float64 {
	return p.Y() - p.HalfSize.Y
}

// Bottom returns the body's bottom edge.
func (p *Physics) Bottom() float64 {
	return p.Y() + p.HalfSize.Y
}

// SetY moves the body's center to y.
func (p *Physics) SetY(y float64) {
	p.transform.Position.Y = y
}

// BB returns the current axis-aligned bounding box.
func (p *Physics) BB() cp.BB {
	return cp.NewBBForExtents(p.transform.Position, p.HalfSize.X, p.HalfSize.Y)
}

// Intersects reports whether the two bodies' bounding boxes overlap.
func (p *Physics) Intersects(other *Physics) bool {
	return p.BB().Intersects(other.BB())
}
