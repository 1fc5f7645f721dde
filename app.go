package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"arenashooter/game"
)

const (
	ticksPerSecond = 60
	tickDuration   = time.Second / ticksPerSecond
	maxParticles   = 800
)

// NewGame creates the host and starts the first level
func NewGame(config game.Config, logger *slog.Logger, seed int64) (*Game, error) {
	// Cosmetic source; the simulation is seeded separately in restart
	rng := rand.New(rand.NewSource(seed + 1))
	g := &Game{
		config:         config,
		logger:         logger,
		seed:           seed,
		rng:            rng,
		screenWidth:    int(config.Bounds.Width),
		screenHeight:   int(config.Bounds.Height),
		effects:        NewParticleSystem(maxParticles, rng),
		shake:          NewScreenShake(rng),
		started:        time.Now(),
		lastUpdateTime: time.Now(),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart throws the session away and begins again at level 1.
// The simulation is reseeded, so every session with the same seed plays the same spawns.
func (g *Game) restart() error {
	cfg := g.config
	cfg.Bounds = game.Bounds{Width: float64(g.screenWidth), Height: float64(g.screenHeight)}

	sim, err := game.NewSimulation(cfg,
		game.WithRand(rand.New(rand.NewSource(g.seed))),
		game.WithLogger(g.logger.With("subsystem", "simulation")))
	if err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}
	campaign, err := game.NewCampaign(sim, cfg.Levels)
	if err != nil {
		return fmt.Errorf("failed to start campaign: %w", err)
	}

	g.sim = sim
	g.campaign = campaign
	g.phase = phasePlaying
	g.clock = 0
	g.input = game.Input{}
	g.effects.Clear()
	g.shake.Reset()
	g.lastPlayerPos = sim.Player().Pos
	g.initDust()

	g.logger.Info("session started", "levels", campaign.Levels(), "width", g.screenWidth, "height", g.screenHeight)
	return nil
}

// Update advances the session by one tick
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	g.updateFPS(dt)
	g.handleInput()

	switch g.phase {
	case phaseLevelBanner:
		g.bannerLeft -= tickDuration
		if g.bannerLeft <= 0 {
			if err := g.nextLevel(); err != nil {
				return err
			}
		}
		g.step()
	case phasePlaying:
		g.step()
	}

	g.updateDust(g.sim.Player().Pos)
	g.effects.Update(dt)
	g.shake.Update(dt)
	return nil
}

// step runs one simulation tick with fresh input.
// The field keeps running under the level banner so shots in flight still land.
func (g *Game) step() {
	g.input = readInput()
	result := g.sim.Tick(g.input, g.clock)
	g.clock += tickDuration
	g.applyResult(result)
}

// applyResult turns tick events into effects and phase changes
func (g *Game) applyResult(result game.TickResult) {
	for _, s := range result.Shots {
		c := colorPlayerShot
		if s.Owner == game.OwnerEnemy {
			c = colorEnemyShot
		}
		g.effects.Emit(s.Pos, muzzleFlash(s.Angle, c))
	}

	for _, d := range result.Damage {
		if d.Target.Kind == game.TargetPlayer {
			g.effects.Emit(d.Pos, hitSpark(colorPlayer))
			g.shake.Add(shakeOnPlayerHit)
			continue
		}
		g.effects.Emit(d.Pos, hitSpark(colorPlayerShot))
	}

	for _, d := range result.Deaths {
		g.effects.Emit(d.Pos, explosion())
		g.shake.Add(shakeOnEnemyDeath)
	}

	switch {
	case result.PlayerDefeated:
		if g.phase != phaseGameOver {
			g.phase = phaseGameOver
			g.logger.Info("game over", "level", g.campaign.Level(), "score", g.sim.Score())
		}
	case result.LevelCleared:
		g.levelCleared()
	}
}

func (g *Game) levelCleared() {
	level := g.campaign.Level()
	g.logger.Info("level cleared", "level", level, "score", g.sim.Score(), "ticks", g.sim.Ticks())

	if level >= g.campaign.Levels() {
		// Advance marks the campaign done
		if _, err := g.campaign.Advance(); err != nil {
			g.logger.Error("failed to finish campaign", "error", err)
		}
		g.phase = phaseVictory
		g.logger.Info("victory", "score", g.sim.Score())
		return
	}

	g.phase = phaseLevelBanner
	g.bannerLeft = levelBannerDuration
	g.bannerLevel = level
}

func (g *Game) nextLevel() error {
	more, err := g.campaign.Advance()
	if err != nil {
		return fmt.Errorf("failed to start level %d: %w", g.campaign.Level()+1, err)
	}
	if !more {
		g.phase = phaseVictory
		return nil
	}
	g.phase = phasePlaying
	return nil
}

// updateFPS samples the frame rate and triggers a profile capture on sustained drops
func (g *Game) updateFPS(dt float64) {
	g.fpsTimer += dt
	if g.fpsTimer < fpsSampleWindow {
		return
	}
	g.fpsTimer = 0
	g.fps = ebiten.ActualFPS()

	if g.profiler == nil || g.fps >= fpsDropThreshold {
		return
	}
	if time.Since(g.started) < fpsDropGrace || time.Since(g.lastDrop) < fpsDropCooldown {
		return
	}
	g.lastDrop = time.Now()

	reason := fmt.Sprintf("fps%.0f-enemies%d-shots%d",
		g.fps, len(g.sim.Enemies()), len(g.sim.PlayerProjectiles())+len(g.sim.EnemyProjectiles()))
	g.logger.Warn("frame rate drop", "fps", g.fps, "reason", reason)
	if err := g.profiler.CaptureProfile(reason); err != nil {
		g.logger.Warn("profile capture skipped", "error", err)
	}
}

// Draw renders the field and the overlays
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawField(screen)
	g.drawHUD(screen)
	g.drawOverlay(screen)
	if g.debug {
		g.drawDebug(screen)
	}
}

// Layout follows the window size; the play field is resized with it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth == g.screenWidth && outsideHeight == g.screenHeight {
		return g.screenWidth, g.screenHeight
	}

	bounds := game.Bounds{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if err := g.sim.SetBounds(bounds); err != nil {
		// Minimized windows report a zero size; keep the last field
		return g.screenWidth, g.screenHeight
	}
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	g.initDust()
	g.logger.Debug("field resized", "width", outsideWidth, "height", outsideHeight)
	return g.screenWidth, g.screenHeight
}
