// Package config loads the game's tuning values from YAML, falling back to
// an embedded default, and can watch the file for live edits.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Window describes the game window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Ship describes a player or enemy ship.
type Ship struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Velocity float64 `yaml:"velocity"` // px per ms
}

// Player tunes the player ship and its weapon.
type Player struct {
	Ship         `yaml:",inline"`
	FireRate     float64 `yaml:"fire_rate"` // ms between shots
	MuzzleOffset float64 `yaml:"muzzle_offset"`
}

// Enemy tunes the enemy fleet.
type Enemy struct {
	Ship         `yaml:",inline"`
	Columns      int     `yaml:"columns"`
	Rows         int     `yaml:"rows"`
	Spacing      float64 `yaml:"spacing"`
	OffsetX      float64 `yaml:"offset_x"`
	Descent      float64 `yaml:"descent"` // px dropped on each direction flip
	MinFireDelay float64 `yaml:"min_fire_delay"`
	MaxFireDelay float64 `yaml:"max_fire_delay"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`
}

// Bullet tunes both bullet kinds.
type Bullet struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Velocity float64 `yaml:"velocity"`
}

// Pools sizes the recycled bullet pools.
type Pools struct {
	PlayerBullets int `yaml:"player_bullets"`
	EnemyBullets  int `yaml:"enemy_bullets"`
}

// Config is the full tuning document.
type Config struct {
	Window Window `yaml:"window"`
	Player Player `yaml:"player"`
	Enemy  Enemy  `yaml:"enemy"`
	Bullet Bullet `yaml:"bullet"`
	Pools  Pools  `yaml:"pools"`
	// Step is the fixed simulation slice in ms.
	Step float64 `yaml:"step"`
}

// Default returns the embedded tuning values.
func Default() (*Config, error) {
	return parse(defaultYAML)
}

// Load reads path, falling back to the embedded default when path is empty
// or missing.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default()
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window must have positive dimensions, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Step <= 0:
		return fmt.Errorf("config: step must be positive, got %v", c.Step)
	case c.Pools.PlayerBullets <= 0 || c.Pools.EnemyBullets <= 0:
		return fmt.Errorf("config: bullet pools must be positive, got %d/%d", c.Pools.PlayerBullets, c.Pools.EnemyBullets)
	case c.Enemy.Columns <= 0 || c.Enemy.Rows <= 0:
		return fmt.Errorf("config: enemy grid must be positive, got %dx%d", c.Enemy.Columns, c.Enemy.Rows)
	case c.Enemy.MaxFireDelay < c.Enemy.MinFireDelay:
		return fmt.Errorf("config: enemy fire delay range inverted: [%v, %v]", c.Enemy.MinFireDelay, c.Enemy.MaxFireDelay)
	}
	return nil
}
