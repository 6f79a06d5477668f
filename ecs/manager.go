package ecs

// Manager exclusively owns every entity plus the per-group buckets derived
// from membership. Buckets hold non-owning back-references and may lag
// behind the membership bits between refreshes; Refresh reconciles them.
type Manager struct {
	entities []*Entity
	grouped  [MaxGroups][]*Entity
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddEntity allocates a new alive, active entity owned by this manager and
// appends it to the canonical collection. The returned pointer stays valid
// until a Refresh after the entity's destruction.
func (m *Manager) AddEntity() *Entity {
	e := &Entity{manager: m, alive: true, active: true}
	m.entities = append(m.entities, e)
	return e
}

// AddToGroup appends a back-reference for e into g's bucket. It does not
// check membership bits or dedupe; Entity.AddGroup is the guarded path and
// keeps bit and bucket in step.
func (m *Manager) AddToGroup(e *Entity, g Group) {
	m.grouped[g] = append(m.grouped[g], e)
}

// EntitiesByGroup returns the live backing slice for g, in insertion order.
// Between refreshes it may still hold entities that died, were disabled, or
// left the group; callers iterating it check the flags they care about.
func (m *Manager) EntitiesByGroup(g Group) []*Entity {
	return m.grouped[g]
}

// Update advances every active entity in insertion order. Inactive entities
// are skipped entirely.
func (m *Manager) Update(dt float64) {
	for _, e := range m.entities {
		if e.active {
			e.Update(dt)
		}
	}
}

// Draw renders every active entity in insertion order.
func (m *Manager) Draw() {
	for _, e := range m.entities {
		if e.active {
			e.Draw()
		}
	}
}

// Refresh compacts in two steps whose order is fixed: first every bucket
// drops entries that are dead or no longer members, then the canonical
// collection drops dead entities, releasing them and their components.
// Bucket cleanup reads alive bits, so it must run before the entities are
// let go. Both sweeps preserve the relative order of survivors, and a second
// Refresh with no intervening mutation is a no-op.
func (m *Manager) Refresh() {
	for g := range m.grouped {
		bucket := m.grouped[g]
		live := bucket[:0]
		for _, e := range bucket {
			if e.alive && e.groups.has(uint32(g)) {
				live = append(live, e)
			}
		}
		for i := len(live); i < len(bucket); i++ {
			bucket[i] = nil
		}
		m.grouped[g] = live
	}

	live := m.entities[:0]
	for _, e := range m.entities {
		if e.alive {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(m.entities); i++ {
		m.entities[i] = nil
	}
	m.entities = live
}

// Len reports the number of owned entities, including any still pending
// destruction.
func (m *Manager) Len() int {
	return len(m.entities)
}
