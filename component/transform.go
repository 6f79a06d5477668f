// Package component holds the game's component variants. Every variant
// embeds ecs.BaseComponent and resolves the siblings it depends on during
// Init, so attachment order inside the entity factories matters.
package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/invaders/ecs"
)

// Transform stores an entity's position in world space.
type Transform struct {
	ecs.BaseComponent
	Position cp.Vector
}

// NewTransform creates a Transform at position.
func NewTransform(position cp.Vector) *Transform {
	return &Transform{Position: position}
}

// X returns the world-space x coordinate.
func (t *Transform) X() float64 {
	return t.Position.X
}

// Y returns the world-space y coordinate.
func (t *Transform) Y() float64 {
	return t.Position.Y
}
