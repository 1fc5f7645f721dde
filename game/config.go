package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Bounds is the size of the play field. The field spans [0,Width]x[0,Height].
type Bounds struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Validate rejects non-positive field sizes
func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: field bounds %.0fx%.0f must be positive", ErrInvalidConfig, b.Width, b.Height)
	}
	return nil
}

// Center returns the middle of the field
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.Width / 2, Y: b.Height / 2}
}

// Contains reports whether p lies inside the field, edges included
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// LevelConfig describes one level's enemy batch
type LevelConfig struct {
	EnemyCount  int     `yaml:"enemies"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	EnemyHealth int     `yaml:"enemy_health"`
}

// Validate rejects levels that cannot be started
func (l LevelConfig) Validate() error {
	if l.EnemyCount <= 0 {
		return fmt.Errorf("%w: enemy count %d must be positive", ErrInvalidConfig, l.EnemyCount)
	}
	if l.EnemyHealth <= 0 {
		return fmt.Errorf("%w: enemy health %d must be positive", ErrInvalidConfig, l.EnemyHealth)
	}
	if l.EnemySpeed <= 0 {
		return fmt.Errorf("%w: enemy speed %.2f must be positive", ErrInvalidConfig, l.EnemySpeed)
	}
	return nil
}

// PlayerTuning holds the player's fixed stats
type PlayerTuning struct {
	Radius        float64       `yaml:"radius"`
	Health        int           `yaml:"health"`
	Speed         float64       `yaml:"speed"`
	ShootCooldown time.Duration `yaml:"shoot_cooldown"`
}

// EnemyTuning holds the AI thresholds shared by every enemy.
// Distances are in pixels, timers in ticks.
type EnemyTuning struct {
	Radius          float64 `yaml:"radius"`
	HuntRange       float64 `yaml:"hunt_range"`       // closer than this, Hunt switches to Attack
	DisengageRange  float64 `yaml:"disengage_range"`  // farther than this, Attack switches back to Hunt
	FireRange       float64 `yaml:"fire_range"`       // must be closer than this to fire
	RetreatHealth   float64 `yaml:"retreat_health"`   // fraction of max health that triggers Retreat
	RetreatTicks    int     `yaml:"retreat_ticks"`    // Retreat duration
	RetreatSpeed    float64 `yaml:"retreat_speed"`    // speed multiplier while retreating
	InitialCooldown float64 `yaml:"initial_cooldown"` // first shot delay drawn from [0, InitialCooldown)
	CooldownMin     float64 `yaml:"cooldown_min"`     // reload drawn from [CooldownMin, CooldownMin+CooldownSpread)
	CooldownSpread  float64 `yaml:"cooldown_spread"`
	SpawnDistance   float64 `yaml:"spawn_distance"` // minimum spawn distance from the player
	SpawnMargin     float64 `yaml:"spawn_margin"`   // keep spawns this far from the field edges
	SpawnAttempts   int     `yaml:"spawn_attempts"` // rejection sampling budget per enemy
}

// Config holds everything the simulation needs besides per-tick input
type Config struct {
	Bounds            Bounds        `yaml:"bounds"`
	Player            PlayerTuning  `yaml:"player"`
	Enemy             EnemyTuning   `yaml:"enemy"`
	PlayerWeapon      WeaponConfig  `yaml:"player_weapon"`
	EnemyWeapon       WeaponConfig  `yaml:"enemy_weapon"`
	CollisionMargin   float64       `yaml:"collision_margin"`
	ScorePerKill      int           `yaml:"score_per_kill"`
	HealBetweenLevels int           `yaml:"heal_between_levels"`
	Levels            []LevelConfig `yaml:"levels"`
}

// DefaultConfig returns the stock tuning and the five-level campaign
func DefaultConfig() Config {
	return Config{
		Bounds: Bounds{Width: 1024, Height: 768},
		Player: PlayerTuning{
			Radius:        25,
			Health:        100,
			Speed:         3,
			ShootCooldown: 200 * time.Millisecond,
		},
		Enemy: EnemyTuning{
			Radius:          25,
			HuntRange:       80,
			DisengageRange:  120,
			FireRange:       200,
			RetreatHealth:   0.3,
			RetreatTicks:    120,
			RetreatSpeed:    0.8,
			InitialCooldown: 60,
			CooldownMin:     60,
			CooldownSpread:  40,
			SpawnDistance:   150,
			SpawnMargin:     50,
			SpawnAttempts:   100,
		},
		PlayerWeapon:      GetWeaponConfig(WeaponTypeRifle),
		EnemyWeapon:       GetWeaponConfig(WeaponTypeEnemyRifle),
		CollisionMargin:   5,
		ScorePerKill:      100,
		HealBetweenLevels: 25,
		Levels: []LevelConfig{
			{EnemyCount: 2, EnemySpeed: 1.2, EnemyHealth: 50},
			{EnemyCount: 3, EnemySpeed: 1.5, EnemyHealth: 60},
			{EnemyCount: 4, EnemySpeed: 1.8, EnemyHealth: 70},
			{EnemyCount: 5, EnemySpeed: 2.0, EnemyHealth: 80},
			{EnemyCount: 6, EnemySpeed: 2.2, EnemyHealth: 90},
		},
	}
}

// Validate checks the parts of the config the simulation depends on
func (c Config) Validate() error {
	if err := c.Bounds.Validate(); err != nil {
		return err
	}
	if c.Player.Health <= 0 || c.Player.Radius <= 0 {
		return fmt.Errorf("%w: player health and radius must be positive", ErrInvalidConfig)
	}
	if c.Enemy.Radius <= 0 {
		return fmt.Errorf("%w: enemy radius must be positive", ErrInvalidConfig)
	}
	if c.PlayerWeapon.ProjectileSpeed <= 0 || c.EnemyWeapon.ProjectileSpeed <= 0 {
		return fmt.Errorf("%w: projectile speed must be positive", ErrInvalidConfig)
	}
	for i, l := range c.Levels {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}

// LoadConfig reads a YAML config file over DefaultConfig. An empty path returns the defaults.
// Tuning keys missing from the file keep their default values, but a levels list
// replaces the default campaign, so every level entry must set all of its keys.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
