package ecs

import "fmt"

// Group is a runtime classification tag in [0, MaxGroups). Groups carry no
// payload; they only index entities in the Manager's buckets.
type Group uint32

// Entity is an identity owning an attachment-ordered set of components,
// alive/active flags, and group membership. Entities are created only
// through Manager.AddEntity and never outlive their manager.
type Entity struct {
	manager *Manager

	alive  bool
	active bool

	components []Component
	slots      [MaxComponents]Component
	mask       bitset
	groups     bitset
}

// Update advances every owned component in attachment order. Filtering on
// the active flag is the manager's job, not the entity's.
func (e *Entity) Update(dt float64) {
	for _, c := range e.components {
		c.Update(dt)
	}
}

// Draw renders every owned component in attachment order.
func (e *Entity) Draw() {
	for _, c := range e.components {
		c.Draw()
	}
}

// IsAlive reports whether destruction has been requested. A dead entity
// stays reachable until the next Manager.Refresh.
func (e *Entity) IsAlive() bool {
	return e.alive
}

// Destroy flags the entity for removal. The flag flips immediately and is
// irreversible; the entity and its components are released only by the next
// Refresh, so a component may call Destroy from its own Update without
// invalidating the pass iterating it.
func (e *Entity) Destroy() {
	e.alive = false
}

// IsActive reports whether the manager's Update and Draw passes visit this
// entity.
func (e *Entity) IsActive() bool {
	return e.active
}

// Enable marks the entity active again. Active is orthogonal to alive and
// freely reversible.
func (e *Entity) Enable() {
	e.active = true
}

// Disable excludes the entity from Update and Draw without removing it.
func (e *Entity) Disable() {
	e.active = false
}

// HasGroup reports membership in g.
func (e *Entity) HasGroup(g Group) bool {
	return e.groups.has(uint32(g))
}

// AddGroup tags the entity with g and eagerly registers it in the manager's
// bucket. Adding a group the entity already has is a no-op, so buckets never
// hold duplicates.
func (e *Entity) AddGroup(g Group) {
	if e.HasGroup(g) {
		return
	}
	e.groups.set(uint32(g))
	e.manager.AddToGroup(e, g)
}

// DelGroup clears the membership bit only. The manager's bucket keeps its
// stale entry until the next Refresh discovers and drops it; removal stays
// O(1) and never rewrites a bucket mid-pass.
func (e *Entity) DelGroup(g Group) {
	e.groups.clear(uint32(g))
}

// Add attaches c to e, assigns the owner back-reference, records the
// component under its variant's slot and presence bit, runs Init, and
// returns c. Attaching a second component of the same variant is a
// programming error and panics.
func Add[T Component](e *Entity, c T) T {
	id := TypeFor[T]()
	if e.mask.has(uint32(id)) {
		panic(fmt.Sprintf("ecs: duplicate component %T on entity", c))
	}
	c.setOwner(e)
	e.components = append(e.components, c)
	e.slots[id] = c
	e.mask.set(uint32(id))
	c.Init()
	return c
}

// Has reports whether a component of variant T is attached to e. O(1).
func Has[T Component](e *Entity) bool {
	return e.mask.has(uint32(TypeFor[T]()))
}

// Get returns the component of variant T attached to e. O(1). Callers guard
// with Has unless attachment order already guarantees presence; asking for
// an absent variant is a programming error and panics.
func Get[T Component](e *Entity) T {
	id := TypeFor[T]()
	if !e.mask.has(uint32(id)) {
		var zero T
		panic(fmt.Sprintf("ecs: entity has no component %T", zero))
	}
	return e.slots[id].(T)
}
