package entity

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/invaders/component"
	"github.com/milk9111/invaders/config"
	"github.com/milk9111/invaders/ecs"
)

// newPooledBullet builds one recycled bullet: disabled until a weapon
// repositions and enables it, disabled again when it leaves the world.
// Bullets are never destroyed, so their group buckets stay index-stable.
func newPooledBullet(m *ecs.Manager, cfg *config.Config, target component.Renderer, velocity cp.Vector, fill color.Color, group ecs.Group) *ecs.Entity {
	bounds := worldBounds(cfg)
	halfSize := cp.Vector{X: cfg.Bullet.Width / 2, Y: cfg.Bullet.Height / 2}

	e := m.AddEntity()
	ecs.Add(e, component.NewTransform(cp.Vector{X: bounds.X / 2, Y: bounds.Y / 2}))
	physics := ecs.Add(e, component.NewPhysics(halfSize, bounds))
	physics.Velocity = velocity
	physics.OnOutOfBounds = func(cp.Vector) { e.Disable() }
	ecs.Add(e, component.NewSpriteRenderer(target, halfSize, fill))

	e.Disable()
	e.AddGroup(group)
	return e
}

// SpawnPlayerBullets builds the player's upward-moving bullet pool.
func SpawnPlayerBullets(m *ecs.Manager, cfg *config.Config, target component.Renderer) {
	for i := 0; i < cfg.Pools.PlayerBullets; i++ {
		newPooledBullet(m, cfg, target,
			cp.Vector{Y: -cfg.Bullet.Velocity}, colornames.Skyblue, GroupPlayerBullet)
	}
}

// SpawnEnemyBullets builds the fleet's downward-moving bullet pool.
func SpawnEnemyBullets(m *ecs.Manager, cfg *config.Config, target component.Renderer) {
	for i := 0; i < cfg.Pools.EnemyBullets; i++ {
		newPooledBullet(m, cfg, target,
			cp.Vector{Y: cfg.Bullet.Velocity}, colornames.Orangered, GroupEnemyBullet)
	}
}
