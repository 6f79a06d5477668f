// Package entity builds the game's entities: every factory goes through
// Manager.AddEntity, attaches components in dependency order, then tags
// groups.
package entity

import "github.com/milk9111/invaders/ecs"

// Group tags used to index entities at runtime.
const (
	GroupPlayerShip ecs.Group = iota
	GroupOffensiveEnemy
	GroupPlayerBullet
	GroupEnemyBullet
	GroupDefensiveEnemy
)
