// Package ecs is a small entity-component core. Entities are identities
// assembled at runtime from typed components, tagged into overlapping
// groups, and driven uniformly by a Manager. The package is single-threaded:
// the host calls Refresh, Update, and Draw once per logical step, in that
// order, and every call runs to completion before the next.
package ecs

// ComponentID identifies a component variant. IDs are assigned the first
// time a variant passes through TypeFor and stay stable for the process
// lifetime.
type ComponentID uint32

const (
	// MaxComponents bounds the number of distinct component variants a
	// process may register. Exceeding it is a programming error and panics.
	MaxComponents = 32
	// MaxGroups bounds the group tags a Manager tracks.
	MaxGroups = 32
)

// Component is the capability contract every variant satisfies. Embed
// BaseComponent to pick up the no-op defaults and the owner back-reference,
// then override any subset of the hooks.
type Component interface {
	// Init runs exactly once, immediately after the component is attached
	// and its owner assigned. Sibling components attached earlier may be
	// looked up here; later ones may not.
	Init()
	// Update advances the component by dt.
	Update(dt float64)
	// Draw renders the component.
	Draw()

	// Owner returns the owning entity. The entity owns the component, never
	// the other way around.
	Owner() *Entity
	setOwner(e *Entity)
}

// BaseComponent supplies no-op lifecycle hooks and holds the non-owning
// back-reference to the owning entity. Every component variant embeds it.
type BaseComponent struct {
	owner *Entity
}

// Init does nothing.
func (b *BaseComponent) Init() {}

// Update does nothing.
func (b *BaseComponent) Update(dt float64) {}

// Draw does nothing.
func (b *BaseComponent) Draw() {}

// Owner returns the entity this component is attached to, or nil before
// attachment.
func (b *BaseComponent) Owner() *Entity {
	return b.owner
}

func (b *BaseComponent) setOwner(e *Entity) {
	b.owner = e
}
