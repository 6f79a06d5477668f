package entity

import (
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/invaders/component"
	"github.com/milk9111/invaders/config"
	"github.com/milk9111/invaders/ecs"
)

// NewPlayerShip builds the player ship near the bottom center of the world.
func NewPlayerShip(m *ecs.Manager, cfg *config.Config, keys component.Keyboard, target component.Renderer) *ecs.Entity {
	bounds := worldBounds(cfg)
	halfSize := cp.Vector{X: cfg.Player.Width / 2, Y: cfg.Player.Height / 2}

	e := m.AddEntity()
	ecs.Add(e, component.NewTransform(cp.Vector{X: bounds.X / 2, Y: bounds.Y - 60}))
	ecs.Add(e, component.NewPhysics(halfSize, bounds))
	ecs.Add(e, component.NewSpriteRenderer(target, halfSize, colornames.Steelblue))
	ecs.Add(e, component.NewPlayerController(keys, m, GroupPlayerBullet,
		cfg.Player.Velocity, cfg.Player.FireRate, cfg.Player.MuzzleOffset))

	e.AddGroup(GroupPlayerShip)
	return e
}

func worldBounds(cfg *config.Config) cp.Vector {
	return cp.Vector{X: float64(cfg.Window.Width), Y: float64(cfg.Window.Height)}
}
