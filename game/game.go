package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// Simulation owns the whole game state and advances it one tick at a time.
//
// It is not safe for concurrent use: the caller drives Tick from a single
// frame loop and must not call it again before the previous result is consumed.
type Simulation struct {
	config Config
	bounds Bounds
	rng    *rand.Rand
	logger *slog.Logger

	player            Player
	enemies           []*Enemy
	playerProjectiles []Projectile
	enemyProjectiles  []Projectile

	nextID EntityID
	score  int
	ticks  uint64

	// clearPending is set by StartLevel and consumed by the tick that reports the level cleared
	clearPending bool
	defeated     bool
}

// Option configures a Simulation
type Option func(*Simulation)

// WithRand sets the random source used for spawning and enemy reloads
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithLogger sets the logger for level lifecycle messages
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSimulation creates a simulation with the player at the field center.
// No enemies exist until StartLevel is called.
func NewSimulation(config Config, opts ...Option) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		config: config,
		bounds: config.Bounds,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		player: NewPlayer(config.Bounds.Center(), config.Player),
		nextID: InvalidEntityID + 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SetBounds resizes the play field. Entities outside the new field are pulled
// back in by their own movement rules on the next tick.
func (s *Simulation) SetBounds(b Bounds) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.bounds = b
	return nil
}

// StartLevel clears both projectile pools and spawns a fresh batch of enemies
// away from the player, all starting in the Hunt state.
func (s *Simulation) StartLevel(level LevelConfig) error {
	if err := level.Validate(); err != nil {
		return err
	}

	s.playerProjectiles = s.playerProjectiles[:0]
	s.enemyProjectiles = s.enemyProjectiles[:0]
	s.enemies = make([]*Enemy, 0, level.EnemyCount)

	tuning := s.config.Enemy
	for i := 0; i < level.EnemyCount; i++ {
		pos, ok := spawnPoint(s.bounds, s.player.Pos, tuning, s.rng)
		if !ok {
			s.logger.Warn("enemy spawn fell back to corner",
				"attempts", tuning.SpawnAttempts,
				"x", pos.X, "y", pos.Y)
		}

		s.enemies = append(s.enemies, &Enemy{
			ID:         s.allocID(),
			Pos:        pos,
			Radius:     tuning.Radius,
			Health:     level.EnemyHealth,
			MaxHealth:  level.EnemyHealth,
			Speed:      level.EnemySpeed,
			State:      AIStateHunt,
			Cooldown:   s.rng.Float64() * tuning.InitialCooldown,
			LastTarget: s.player.Pos,
		})
	}

	s.clearPending = true
	s.logger.Info("level started",
		"enemies", level.EnemyCount,
		"enemy_speed", level.EnemySpeed,
		"enemy_health", level.EnemyHealth)
	return nil
}

// Tick advances the simulation by one step:
// player, then every enemy, then both projectile pools, then removal of the dead.
// now is the session time used for the player's fire rate.
func (s *Simulation) Tick(in Input, now time.Duration) TickResult {
	if s.defeated {
		return TickResult{PlayerDefeated: true, EnemiesRemaining: len(s.enemies)}
	}
	s.ticks++

	var result TickResult

	if shot, fired := UpdatePlayer(&s.player, in, now, s.bounds, s.config.PlayerWeapon); fired {
		s.playerProjectiles = append(s.playerProjectiles, s.launch(shot, s.player.Heading, &result))
	}

	for _, e := range s.enemies {
		if shot, fired := StepEnemy(e, &s.player, in, s.config.Enemy, s.config.EnemyWeapon, s.rng); fired {
			s.enemyProjectiles = append(s.enemyProjectiles, s.launch(shot, shot.Vel.Angle(), &result))
		}
	}

	combat := NewCombatResolver(&s.player, s.enemies, s.config.ScorePerKill, &result)
	s.playerProjectiles = AdvancePlayerProjectiles(s.playerProjectiles, s.enemies, s.bounds, s.config.CollisionMargin, combat)
	s.enemyProjectiles = AdvanceEnemyProjectiles(s.enemyProjectiles, &s.player, s.bounds, s.config.CollisionMargin, combat)
	s.enemies = combat.Sweep(s.enemies)

	s.score += result.ScoreDelta
	result.EnemiesRemaining = len(s.enemies)

	if result.PlayerDefeated {
		s.defeated = true
		s.logger.Info("player defeated", "score", s.score, "tick", s.ticks)
	}
	if s.clearPending && len(s.enemies) == 0 {
		s.clearPending = false
		result.LevelCleared = true
	}
	return result
}

// launch assigns an ID to a freshly fired projectile and records the shot
func (s *Simulation) launch(p Projectile, angle float64, result *TickResult) Projectile {
	p.ID = s.allocID()
	// The muzzle is where the projectile spawned, before this tick's movement
	result.Shots = append(result.Shots, ShotEvent{Owner: p.Owner, Pos: p.Pos, Angle: angle})
	return p
}

func (s *Simulation) allocID() EntityID {
	id := s.nextID
	s.nextID++
	return id
}

// Player returns a copy of the player state
func (s *Simulation) Player() Player {
	return s.player
}

// HealPlayer restores player health, clamped to MaxHealth
func (s *Simulation) HealPlayer(amount int) {
	s.player.Heal(amount)
}

// Enemies returns a copy of the active enemies in update order
func (s *Simulation) Enemies() []Enemy {
	out := make([]Enemy, len(s.enemies))
	for i, e := range s.enemies {
		out[i] = *e
	}
	return out
}

// PlayerProjectiles returns a copy of the player-owned projectile pool
func (s *Simulation) PlayerProjectiles() []Projectile {
	return append([]Projectile(nil), s.playerProjectiles...)
}

// EnemyProjectiles returns a copy of the enemy-owned projectile pool
func (s *Simulation) EnemyProjectiles() []Projectile {
	return append([]Projectile(nil), s.enemyProjectiles...)
}

// Score returns the total score so far
func (s *Simulation) Score() int {
	return s.score
}

// Bounds returns the current field size
func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Config returns the configuration the simulation was built with
func (s *Simulation) Config() Config {
	return s.config
}

// Ticks returns how many ticks have been simulated
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Defeated reports whether the player has been defeated
func (s *Simulation) Defeated() bool {
	return s.defeated
}

func (s *Simulation) String() string {
	return fmt.Sprintf("Simulation{tick=%d score=%d enemies=%d shots=%d/%d}",
		s.ticks, s.score, len(s.enemies), len(s.playerProjectiles), len(s.enemyProjectiles))
}
