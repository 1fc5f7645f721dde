package main

import (
	"log/slog"
	"math/rand"
	"time"

	"arenashooter/game"
)

// phase is the session screen the host is showing
type phase int

const (
	phasePlaying     phase = iota
	phaseLevelBanner       // level cleared, next level starts when the banner expires
	phaseGameOver
	phaseVictory
)

func (p phase) String() string {
	switch p {
	case phasePlaying:
		return "playing"
	case phaseLevelBanner:
		return "level-banner"
	case phaseGameOver:
		return "game-over"
	case phaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// dust represents a single floor speck
type dust struct {
	pos    game.Vec2
	speed  float64
	radius float64
}

// Game is the ebiten host around one simulation session.
type Game struct {
	config   game.Config
	logger   *slog.Logger
	seed     int64      // simulation seed, reused on restart
	rng      *rand.Rand // cosmetic effects only
	sim      *game.Simulation
	campaign *game.Campaign

	phase       phase
	bannerLeft  time.Duration
	bannerLevel int           // level number shown on the banner
	clock       time.Duration // session time handed to Tick
	input       game.Input    // snapshot handed to the last Tick

	screenWidth  int
	screenHeight int

	effects        *ParticleSystem
	shake          *ScreenShake
	dust           []dust
	lastPlayerPos  game.Vec2 // player position last frame, drives dust parallax
	lastUpdateTime time.Time

	debug    bool
	fps      float64
	fpsTimer float64
	started  time.Time
	lastDrop time.Time
	profiler *Profiler // nil unless FPS drop profiling is enabled
}
