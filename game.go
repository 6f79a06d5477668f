package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/invaders/component"
	"github.com/milk9111/invaders/config"
	"github.com/milk9111/invaders/ecs"
	"github.com/milk9111/invaders/entity"
)

// Game drives the entity manager from ebiten's loop: once per simulation
// slice it runs Refresh, then Update, then the collision and fleet rules,
// and draws whatever is active.
type Game struct {
	cfg     *config.Config
	cfgPath string
	log     *zap.Logger
	debug   bool

	manager *ecs.Manager
	rng     *rand.Rand
	watcher *config.Watcher

	// screen is the current frame's render target; sprites draw through
	// DrawSprite during manager.Draw.
	screen *ebiten.Image
	face   text.Face

	slice float64 // simulated time still owed, in ms
	score int
	over  bool
	won   bool
}

// NewGame builds the world from cfg. watcher may be nil.
func NewGame(cfg *config.Config, cfgPath string, log *zap.Logger, watcher *config.Watcher, debug bool) *Game {
	g := &Game{
		cfg:     cfg,
		cfgPath: cfgPath,
		log:     log,
		debug:   debug,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		watcher: watcher,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	g.reset()
	return g
}

// reset rebuilds the world: player ship, enemy fleet, then both bullet
// pools, in that order so controllers find their pools populated before the
// first fire.
func (g *Game) reset() {
	g.manager = ecs.NewManager()
	g.score = 0
	g.over = false
	g.won = false

	entity.NewPlayerShip(g.manager, g.cfg, keyboard{}, g)
	entity.SpawnFleet(g.manager, g.cfg, g, g.rng)
	entity.SpawnPlayerBullets(g.manager, g.cfg, g)
	entity.SpawnEnemyBullets(g.manager, g.cfg, g)

	g.log.Info("world built",
		zap.Int("entities", g.manager.Len()),
		zap.Int("fleet", g.cfg.Enemy.Columns*g.cfg.Enemy.Rows))
}

// Update advances the simulation by fixed slices regardless of the tick
// rate ebiten runs us at.
func (g *Game) Update() error {
	g.pollWatcher()

	if g.over || g.won {
		if restartPressed() {
			g.reset()
		}
		return nil
	}

	g.slice += 1000.0 / float64(ebiten.TPS())
	for ; g.slice >= g.cfg.Step; g.slice -= g.cfg.Step {
		g.manager.Refresh()
		g.manager.Update(g.cfg.Step)
		g.resolveCollisions()
		g.steerFleet()
	}

	switch {
	case !anyAlive(g.manager, entity.GroupPlayerShip):
		g.over = true
		g.log.Info("player ship destroyed", zap.Int("score", g.score))
	case !anyAlive(g.manager, entity.GroupOffensiveEnemy) && !anyAlive(g.manager, entity.GroupDefensiveEnemy):
		g.won = true
		g.log.Info("fleet cleared", zap.Int("score", g.score))
	}
	return nil
}

// resolveCollisions applies the bullet rules: a hit destroys the ship and
// returns the bullet to its pool. Only flags flip here; the entities
// themselves go away on the next Refresh.
func (g *Game) resolveCollisions() {
	for _, bullet := range g.manager.EntitiesByGroup(entity.GroupPlayerBullet) {
		if !bullet.IsActive() {
			continue
		}
		bulletPhys := ecs.Get[*component.Physics](bullet)
		for _, ship := range g.fleet() {
			if !ship.IsAlive() {
				continue
			}
			if bulletPhys.Intersects(ecs.Get[*component.Physics](ship)) {
				ship.Destroy()
				bullet.Disable()
				g.score++
				break
			}
		}
	}

	for _, bullet := range g.manager.EntitiesByGroup(entity.GroupEnemyBullet) {
		if !bullet.IsActive() {
			continue
		}
		bulletPhys := ecs.Get[*component.Physics](bullet)
		for _, ship := range g.manager.EntitiesByGroup(entity.GroupPlayerShip) {
			if !ship.IsAlive() {
				continue
			}
			if bulletPhys.Intersects(ecs.Get[*component.Physics](ship)) {
				ship.Destroy()
				bullet.Disable()
			}
		}
	}
}

// steerFleet reverses the fleet and drops it one step when any ship touches
// a side of the world.
func (g *Game) steerFleet() {
	flip := false
	for _, ship := range g.fleet() {
		if !ship.IsAlive() {
			continue
		}
		phys := ecs.Get[*component.Physics](ship)
		if phys.Left() < 0 || phys.Right() > float64(g.cfg.Window.Width) {
			flip = true
			break
		}
	}
	if !flip {
		return
	}
	for _, ship := range g.fleet() {
		if !ship.IsAlive() {
			continue
		}
		phys := ecs.Get[*component.Physics](ship)
		phys.Velocity.X = -phys.Velocity.X
		phys.SetY(phys.Y() + g.cfg.Enemy.Descent)
	}
}

// fleet yields both enemy groups. Buckets may hold dead ships between
// refreshes; callers filter on IsAlive.
func (g *Game) fleet() []*ecs.Entity {
	offensive := g.manager.EntitiesByGroup(entity.GroupOffensiveEnemy)
	defensive := g.manager.EntitiesByGroup(entity.GroupDefensiveEnemy)
	out := make([]*ecs.Entity, 0, len(offensive)+len(defensive))
	out = append(out, offensive...)
	return append(out, defensive...)
}

func anyAlive(m *ecs.Manager, g ecs.Group) bool {
	for _, e := range m.EntitiesByGroup(g) {
		if e.IsAlive() {
			return true
		}
	}
	return false
}

// pollWatcher applies config edits without blocking the loop.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			return
		}
		cfg, err := config.Load(path)
		if err != nil {
			g.log.Warn("config reload rejected", zap.String("path", path), zap.Error(err))
			return
		}
		g.applyTuning(cfg)
		g.log.Info("tuning reloaded", zap.String("path", path))
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("config watcher", zap.Error(err))
		}
	default:
	}
}

// applyTuning pushes the reloadable subset of a fresh config into live
// entities. Layout values (window, grid, pool sizes) only take effect on
// the next reset.
func (g *Game) applyTuning(cfg *config.Config) {
	g.cfg.Step = cfg.Step
	g.cfg.Player = cfg.Player
	g.cfg.Enemy = cfg.Enemy
	g.cfg.Bullet = cfg.Bullet

	for _, e := range g.manager.EntitiesByGroup(entity.GroupPlayerShip) {
		ctrl := ecs.Get[*component.PlayerController](e)
		ctrl.Speed = cfg.Player.Velocity
		ctrl.FireRate = cfg.Player.FireRate
		ctrl.MuzzleOffset = cfg.Player.MuzzleOffset
	}
	for _, e := range g.fleet() {
		phys := ecs.Get[*component.Physics](e)
		phys.Velocity.X = math.Copysign(cfg.Enemy.Velocity, phys.Velocity.X)
		if ecs.Has[*component.WeaponAI](e) {
			ai := ecs.Get[*component.WeaponAI](e)
			ai.MinDelay = cfg.Enemy.MinFireDelay
			ai.MaxDelay = cfg.Enemy.MaxFireDelay
			ai.MuzzleOffset = cfg.Enemy.MuzzleOffset
		}
	}
	for _, group := range []ecs.Group{entity.GroupPlayerBullet, entity.GroupEnemyBullet} {
		for _, e := range g.manager.EntitiesByGroup(group) {
			phys := ecs.Get[*component.Physics](e)
			phys.Velocity.Y = math.Copysign(cfg.Bullet.Velocity, phys.Velocity.Y)
		}
	}
}

// Draw renders all active entities, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen = screen
	g.manager.Draw()
	g.screen = nil

	g.drawHUD(screen)
}

// DrawSprite implements component.Renderer for the current frame.
func (g *Game) DrawSprite(img *ebiten.Image, topLeft cp.Vector) {
	if g.screen == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(topLeft.X, topLeft.Y)
	g.screen.DrawImage(img, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawText(screen, fmt.Sprintf("SCORE %d", g.score), 8, 8)

	switch {
	case g.over:
		g.drawText(screen, "GAME OVER - press Enter", float64(g.cfg.Window.Width)/2-90, float64(g.cfg.Window.Height)/2)
	case g.won:
		g.drawText(screen, "FLEET CLEARED - press Enter", float64(g.cfg.Window.Width)/2-105, float64(g.cfg.Window.Height)/2)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS %.0f  FPS %.0f  entities %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.manager.Len()),
			8, g.cfg.Window.Height-20)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	text.Draw(screen, s, g.face, op)
}

// Layout reports the fixed logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
