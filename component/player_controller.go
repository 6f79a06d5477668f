package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/invaders/ecs"
)

// Keyboard is the input subset the player controller polls. The game
// supplies an ebiten-backed implementation.
type Keyboard interface {
	Left() bool
	Right() bool
	Fire() bool
}

// PlayerController moves the ship horizontally from keyboard input and
// recycles pooled bullets on fire, rate-limited. Requires Transform and
// Physics attached first.
type PlayerController struct {
	ecs.BaseComponent
	Speed        float64 // px per ms
	FireRate     float64 // ms between shots
	MuzzleOffset float64 // px above the ship center where bullets spawn

	keys    Keyboard
	manager *ecs.Manager
	bullets ecs.Group

	sinceShot float64
	next      int

	transform *Transform
	physics   *Physics
}

// NewPlayerController creates a controller firing bullets from the given
// pool group.
func NewPlayerController(keys Keyboard, manager *ecs.Manager, bullets ecs.Group, speed, fireRate, muzzleOffset float64) *PlayerController {
	return &PlayerController{
		Speed:        speed,
		FireRate:     fireRate,
		MuzzleOffset: muzzleOffset,
		keys:         keys,
		manager:      manager,
		bullets:      bullets,
	}
}

// Init resolves siblings and arms the weapon so the first shot is not rate
// limited.
func (c *PlayerController) Init() {
	c.transform = ecs.Get[*Transform](c.Owner())
	c.physics = ecs.Get[*Physics](c.Owner())
	c.sinceShot = c.FireRate + 1
}

// Update steers the ship, keeping it inside the world, and fires when the
// key is held and the rate gate is open.
func (c *PlayerController) Update(dt float64) {
	switch {
	case c.keys.Left() && c.physics.Left() > 0:
		c.physics.Velocity.X = -c.Speed
	case c.keys.Right() && c.physics.Right() < c.physics.Bounds.X:
		c.physics.Velocity.X = c.Speed
	default:
		c.physics.Velocity.X = 0
	}

	c.sinceShot += dt
	if c.keys.Fire() && c.sinceShot > c.FireRate {
		c.fire()
		c.sinceShot = 0
	}
}

// fire repositions the next pooled bullet at the muzzle and enables it.
// Pool entries are never destroyed, only disabled, so the bucket is safe to
// index between refreshes.
func (c *PlayerController) fire() {
	pool := c.manager.EntitiesByGroup(c.bullets)
	if len(pool) == 0 {
		return
	}
	if c.next >= len(pool) {
		c.next = 0
	}
	bullet := pool[c.next]
	c.next++

	ecs.Get[*Transform](bullet).Position = cp.Vector{
		X: c.transform.X(),
		Y: c.transform.Y() - c.MuzzleOffset,
	}
	bullet.Enable()
}
