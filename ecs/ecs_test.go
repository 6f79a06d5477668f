package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test component variants. Each embeds BaseComponent and overrides only the
// hooks it needs, like real game components do.

type posComp struct {
	BaseComponent
	x, y float64
}

type velComp struct {
	BaseComponent
	dx, dy float64
}

type tagComp struct {
	BaseComponent
}

// tickComp counts hook invocations and remembers the last dt.
type tickComp struct {
	BaseComponent
	inits   int
	updates int
	draws   int
	lastDT  float64
}

func (c *tickComp) Init()             { c.inits++ }
func (c *tickComp) Update(dt float64) { c.updates++; c.lastDT = dt }
func (c *tickComp) Draw()             { c.draws++ }

// siblingComp resolves a sibling posComp during Init.
type siblingComp struct {
	BaseComponent
	pos *posComp
}

func (c *siblingComp) Init() {
	c.pos = Get[*posComp](c.Owner())
}

func TestTypeForStableAndDistinct(t *testing.T) {
	a1 := TypeFor[*posComp]()
	b1 := TypeFor[*velComp]()
	a2 := TypeFor[*posComp]()
	b2 := TypeFor[*velComp]()

	assert.Equal(t, a1, a2, "same variant must yield the same ID")
	assert.Equal(t, b1, b2, "same variant must yield the same ID")
	assert.NotEqual(t, a1, b1, "distinct variants must never collide")
}

func TestTypeForCapacityExhausted(t *testing.T) {
	resetTypeRegistry()
	t.Cleanup(resetTypeRegistry)

	nextTypeID = MaxComponents
	require.Panics(t, func() { TypeFor[*tagComp]() })
}

func TestAddHasGet(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	pos := Add(e, &posComp{x: 3, y: 4})

	require.True(t, Has[*posComp](e))
	assert.False(t, Has[*velComp](e))
	assert.Same(t, pos, Get[*posComp](e))
	assert.Same(t, pos, Get[*posComp](e), "repeated Get must return the same instance")
	assert.Same(t, e, pos.Owner())
}

func TestAddDuplicatePanics(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	Add(e, &posComp{})
	require.Panics(t, func() { Add(e, &posComp{}) })
	require.True(t, Has[*posComp](e), "failed duplicate add must not evict the original")
}

func TestGetAbsentPanics(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	require.Panics(t, func() { Get[*velComp](e) })
}

func TestInitRunsOnceWithOwnerAssigned(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	tick := Add(e, &tickComp{})
	assert.Equal(t, 1, tick.inits)
	assert.Same(t, e, tick.Owner())
}

func TestInitSeesEarlierSiblings(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	pos := Add(e, &posComp{x: 7})
	sib := Add(e, &siblingComp{})

	require.Same(t, pos, sib.pos, "Init must resolve components attached earlier")
}

func TestEntityUpdateDrawVisitAttachmentOrder(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	var order []string
	Add(e, &recordComp{log: &order, name: "first"})
	Add(e, &recordComp2{recordComp{log: &order, name: "second"}})

	e.Update(1)
	e.Draw()

	assert.Equal(t, []string{"first.update", "second.update", "first.draw", "second.draw"}, order)
}

// recordComp appends its hook invocations to a shared log.
type recordComp struct {
	BaseComponent
	log  *[]string
	name string
}

func (c *recordComp) Update(dt float64) { *c.log = append(*c.log, c.name+".update") }
func (c *recordComp) Draw()             { *c.log = append(*c.log, c.name+".draw") }

// recordComp2 is a second variant so both can live on one entity.
type recordComp2 struct {
	recordComp
}

func TestLifecycleFlags(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(e *Entity)
		alive  bool
		active bool
	}{
		{"fresh", func(e *Entity) {}, true, true},
		{"disabled", func(e *Entity) { e.Disable() }, true, false},
		{"reenabled", func(e *Entity) { e.Disable(); e.Enable() }, true, true},
		{"destroyed", func(e *Entity) { e.Destroy() }, false, true},
		{"destroyed_then_disabled", func(e *Entity) { e.Destroy(); e.Disable() }, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewManager()
			e := m.AddEntity()
			c.mutate(e)
			assert.Equal(t, c.alive, e.IsAlive())
			assert.Equal(t, c.active, e.IsActive())
		})
	}
}
