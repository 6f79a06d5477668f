package component

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/invaders/ecs"
)

// WeaponAI fires pooled bullets downward at randomized intervals. Requires
// a Transform attached first.
type WeaponAI struct {
	ecs.BaseComponent
	MinDelay     float64 // ms, inclusive lower bound between shots
	MaxDelay     float64 // ms, exclusive upper bound between shots
	MuzzleOffset float64 // px below the ship center where bullets spawn

	manager *ecs.Manager
	bullets ecs.Group
	rng     *rand.Rand

	nextShot    float64
	accumulated float64
	next        int

	transform *Transform
}

// NewWeaponAI creates an AI weapon firing bullets from the given pool group.
func NewWeaponAI(manager *ecs.Manager, bullets ecs.Group, rng *rand.Rand, minDelay, maxDelay, muzzleOffset float64) *WeaponAI {
	return &WeaponAI{
		MinDelay:     minDelay,
		MaxDelay:     maxDelay,
		MuzzleOffset: muzzleOffset,
		manager:      manager,
		bullets:      bullets,
		rng:          rng,
	}
}

// Init resolves the sibling Transform and rolls the first fire delay.
func (w *WeaponAI) Init() {
	w.transform = ecs.Get[*Transform](w.Owner())
	w.reload()
}

// Update accumulates time and fires once the rolled delay elapses.
func (w *WeaponAI) Update(dt float64) {
	w.accumulated += dt
	if w.accumulated < w.nextShot {
		return
	}
	w.fire()
	w.reload()
	w.accumulated = 0
}

func (w *WeaponAI) reload() {
	w.nextShot = w.MinDelay
	if spread := w.MaxDelay - w.MinDelay; spread > 0 {
		w.nextShot += w.rng.Float64() * spread
	}
}

func (w *WeaponAI) fire() {
	pool := w.manager.EntitiesByGroup(w.bullets)
	if len(pool) == 0 {
		return
	}
	if w.next >= len(pool) {
		w.next = 0
	}
	bullet := pool[w.next]
	w.next++

	ecs.Get[*Transform](bullet).Position = cp.Vector{
		X: w.transform.X(),
		Y: w.transform.Y() + w.MuzzleOffset,
	}
	bullet.Enable()
}
