package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/invaders/ecs"
)

type fakeKeyboard struct {
	left, right, fire bool
}

func (k *fakeKeyboard) Left() bool  { return k.left }
func (k *fakeKeyboard) Right() bool { return k.right }
func (k *fakeKeyboard) Fire() bool  { return k.fire }

const testBulletGroup ecs.Group = 3

func newPooledBullet(m *ecs.Manager) *ecs.Entity {
	e := m.AddEntity()
	ecs.Add(e, NewTransform(cp.Vector{}))
	e.Disable()
	e.AddGroup(testBulletGroup)
	return e
}

func newPlayer(m *ecs.Manager, keys Keyboard) (*ecs.Entity, *PlayerController) {
	e := m.AddEntity()
	ecs.Add(e, NewTransform(cp.Vector{X: 400, Y: 540}))
	ecs.Add(e, NewPhysics(cp.Vector{X: 33, Y: 25}, testBounds))
	ctrl := ecs.Add(e, NewPlayerController(keys, m, testBulletGroup, 0.6, 1000, 45))
	return e, ctrl
}

func TestPlayerControllerSteering(t *testing.T) {
	cases := []struct {
		name      string
		keys      fakeKeyboard
		startX    float64
		expectedX float64
	}{
		{"idle", fakeKeyboard{}, 400, 0},
		{"left", fakeKeyboard{left: true}, 400, -0.6},
		{"right", fakeKeyboard{right: true}, 400, 0.6},
		{"left_blocked_at_wall", fakeKeyboard{left: true}, 33, 0},
		{"right_blocked_at_wall", fakeKeyboard{right: true}, 767, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := ecs.NewManager()
			keys := c.keys
			e, _ := newPlayer(m, &keys)
			ecs.Get[*Transform](e).Position.X = c.startX

			e.Update(1)

			assert.Equal(t, c.expectedX, ecs.Get[*Physics](e).Velocity.X)
		})
	}
}

func TestPlayerControllerFiresFromPool(t *testing.T) {
	m := ecs.NewManager()
	keys := &fakeKeyboard{fire: true}
	player, _ := newPlayer(m, keys)
	b1 := newPooledBullet(m)
	b2 := newPooledBullet(m)

	player.Update(1)

	require.True(t, b1.IsActive(), "first shot enables the first pooled bullet")
	require.False(t, b2.IsActive())

	pos := ecs.Get[*Transform](b1).Position
	assert.Equal(t, cp.Vector{X: 400, Y: 495}, pos, "bullet spawns at the muzzle")
}

func TestPlayerControllerFireRateGate(t *testing.T) {
	m := ecs.NewManager()
	keys := &fakeKeyboard{fire: true}
	player, _ := newPlayer(m, keys)
	b1 := newPooledBullet(m)
	b2 := newPooledBullet(m)

	player.Update(1) // fires
	player.Update(1) // gated
	require.True(t, b1.IsActive())
	require.False(t, b2.IsActive(), "second shot inside the rate window must not fire")

	player.Update(1001) // gate reopens
	assert.True(t, b2.IsActive(), "round robin advances to the next pooled bullet")
}

func TestPlayerControllerEmptyPool(t *testing.T) {
	m := ecs.NewManager()
	keys := &fakeKeyboard{fire: true}
	player, _ := newPlayer(m, keys)

	assert.NotPanics(t, func() { player.Update(1) })
}

func TestPlayerControllerPoolWrapsAround(t *testing.T) {
	m := ecs.NewManager()
	keys := &fakeKeyboard{fire: true}
	player, ctrl := newPlayer(m, keys)
	b1 := newPooledBullet(m)
	newPooledBullet(m)

	ctrl.FireRate = 0
	player.Update(1)
	player.Update(1)
	b1.Disable()
	player.Update(1)

	assert.True(t, b1.IsActive(), "third shot wraps back to the first bullet")
}
