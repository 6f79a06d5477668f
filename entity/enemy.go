package entity

import (
	"image/color"
	"math/rand"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/invaders/component"
	"github.com/milk9111/invaders/config"
	"github.com/milk9111/invaders/ecs"
)

func newEnemyShip(m *ecs.Manager, cfg *config.Config, target component.Renderer, position cp.Vector, fill color.Color, group ecs.Group) *ecs.Entity {
	halfSize := cp.Vector{X: cfg.Enemy.Width / 2, Y: cfg.Enemy.Height / 2}

	e := m.AddEntity()
	ecs.Add(e, component.NewTransform(position))
	physics := ecs.Add(e, component.NewPhysics(halfSize, worldBounds(cfg)))
	physics.Velocity = cp.Vector{X: cfg.Enemy.Velocity}
	ecs.Add(e, component.NewSpriteRenderer(target, halfSize, fill))

	e.AddGroup(group)
	return e
}

// NewOffensiveEnemy builds an enemy ship that fires from the shared enemy
// bullet pool.
func NewOffensiveEnemy(m *ecs.Manager, cfg *config.Config, target component.Renderer, rng *rand.Rand, position cp.Vector) *ecs.Entity {
	e := newEnemyShip(m, cfg, target, position, colornames.Crimson, GroupOffensiveEnemy)
	ecs.Add(e, component.NewWeaponAI(m, GroupEnemyBullet, rng,
		cfg.Enemy.MinFireDelay, cfg.Enemy.MaxFireDelay, cfg.Enemy.MuzzleOffset))
	return e
}

// NewDefensiveEnemy builds an unarmed enemy ship.
func NewDefensiveEnemy(m *ecs.Manager, cfg *config.Config, target component.Renderer, position cp.Vector) *ecs.Entity {
	return newEnemyShip(m, cfg, target, position, colornames.Mediumseagreen, GroupDefensiveEnemy)
}

// SpawnFleet builds the enemy grid, alternating armed and unarmed rows.
func SpawnFleet(m *ecs.Manager, cfg *config.Config, target component.Renderer, rng *rand.Rand) {
	for col := 0; col < cfg.Enemy.Columns; col++ {
		for row := 0; row < cfg.Enemy.Rows; row++ {
			position := cp.Vector{
				X: float64(col+1)*(cfg.Enemy.Width+cfg.Enemy.Spacing) + cfg.Enemy.OffsetX,
				Y: float64(row+1) * (cfg.Enemy.Height + cfg.Enemy.Spacing),
			}
			if row%2 == 0 {
				NewOffensiveEnemy(m, cfg, target, rng, position)
			} else {
				NewDefensiveEnemy(m, cfg, target, position)
			}
		}
	}
}
