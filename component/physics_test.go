package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/invaders/ecs"
)

var testBounds = cp.Vector{X: 800, Y: 600}

func newBody(t *testing.T, m *ecs.Manager, pos, halfSize cp.Vector) (*ecs.Entity, *Physics) {
	t.Helper()
	e := m.AddEntity()
	ecs.Add(e, NewTransform(pos))
	p := ecs.Add(e, NewPhysics(halfSize, testBounds))
	return e, p
}

func TestPhysicsIntegratesVelocity(t *testing.T) {
	m := ecs.NewManager()
	e, p := newBody(t, m, cp.Vector{X: 100, Y: 100}, cp.Vector{X: 5, Y: 5})
	p.Velocity = cp.Vector{X: 2, Y: -1}

	e.Update(10)

	tr := ecs.Get[*Transform](e)
	assert.Equal(t, cp.Vector{X: 120, Y: 90}, tr.Position)
}

func TestPhysicsEdges(t *testing.T) {
	m := ecs.NewManager()
	_, p := newBody(t, m, cp.Vector{X: 100, Y: 200}, cp.Vector{X: 10, Y: 20})

	assert.Equal(t, 90.0, p.Left())
	assert.Equal(t, 110.0, p.Right())
	assert.Equal(t, 180.0, p.Top())
	assert.Equal(t, 220.0, p.Bottom())

	p.SetY(50)
	assert.Equal(t, 50.0, p.Y())
}

func TestPhysicsOutOfBoundsCallback(t *testing.T) {
	cases := []struct {
		name     string
		pos      cp.Vector
		expected []cp.Vector
	}{
		{"inside", cp.Vector{X: 400, Y: 300}, nil},
		{"left", cp.Vector{X: 0, Y: 300}, []cp.Vector{{X: 1}}},
		{"right", cp.Vector{X: 800, Y: 300}, []cp.Vector{{X: -1}}},
		{"top", cp.Vector{X: 400, Y: 0}, []cp.Vector{{Y: 1}}},
		{"bottom", cp.Vector{X: 400, Y: 600}, []cp.Vector{{Y: -1}}},
		{"corner", cp.Vector{X: 0, Y: 0}, []cp.Vector{{X: 1}, {Y: 1}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := ecs.NewManager()
			e, p := newBody(t, m, c.pos, cp.Vector{X: 5, Y: 5})

			var hits []cp.Vector
			p.OnOutOfBounds = func(restitution cp.Vector) {
				hits = append(hits, restitution)
			}

			e.Update(0)
			assert.Equal(t, c.expected, hits)
		})
	}
}

func TestPhysicsIntersects(t *testing.T) {
	m := ecs.NewManager()
	_, a := newBody(t, m, cp.Vector{X: 100, Y: 100}, cp.Vector{X: 10, Y: 10})
	_, b := newBody(t, m, cp.Vector{X: 115, Y: 100}, cp.Vector{X: 10, Y: 10})
	_, c := newBody(t, m, cp.Vector{X: 200, Y: 200}, cp.Vector{X: 10, Y: 10})

	require.True(t, a.Intersects(b))
	require.True(t, b.Intersects(a))
	require.False(t, a.Intersects(c))
}
