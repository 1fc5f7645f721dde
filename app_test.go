package main

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenashooter/game"
)

func newTestGame(t *testing.T, levels int, seed int64) *Game {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Bounds = game.Bounds{Width: 800, Height: 600}
	cfg.Levels = cfg.Levels[:levels]

	g, err := NewGame(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), seed)
	require.NoError(t, err)
	return g
}

func TestGame_PhaseFlow(t *testing.T) {
	cleared := game.TickResult{LevelCleared: true}
	defeated := game.TickResult{PlayerDefeated: true}

	tests := []struct {
		name       string
		levels     int
		steps      []func(t *testing.T, g *Game)
		wantPhase  phase
		wantLevel  int
		wantBanner int
		wantDone   bool
	}{
		{
			name:      "fresh session plays level 1",
			levels:    2,
			wantPhase: phasePlaying,
			wantLevel: 1,
		},
		{
			name:   "clearing a level shows the banner",
			levels: 2,
			steps: []func(t *testing.T, g *Game){
				func(t *testing.T, g *Game) { g.applyResult(cleared) },
			},
			wantPhase:  phaseLevelBanner,
			wantLevel:  1,
			wantBanner: 1,
		},
		{
			name:   "banner leads into the next level",
			levels: 2,
			steps: []func(t *testing.T, g *Game){
				func(t *testing.T, g *Game) { g.applyResult(cleared) },
				func(t *testing.T, g *Game) { require.NoError(t, g.nextLevel()) },
			},
			wantPhase:  phasePlaying,
			wantLevel:  2,
			wantBanner: 1,
		},
		{
			name:   "clearing the last level wins",
			levels: 2,
			steps: []func(t *testing.T, g *Game){
				func(t *testing.T, g *Game) { g.applyResult(cleared) },
				func(t *testing.T, g *Game) { require.NoError(t, g.nextLevel()) },
				func(t *testing.T, g *Game) { g.applyResult(cleared) },
			},
			wantPhase:  phaseVictory,
			wantLevel:  2,
			wantBanner: 1,
			wantDone:   true,
		},
		{
			name:   "single level campaign skips the banner",
			levels: 1,
			steps: []func(t *testing.T, g *Game){
				func(t *testing.T, g *Game) { g.applyResult(cleared) },
			},
			wantPhase: phaseVictory,
			wantLevel: 1,
			wantDone:  true,
		},
		{
			name:   "defeat ends the session",
			levels: 2,
			steps: []func(t *testing.T, g *Game){
				func(t *testing.T, g *Game) { g.applyResult(defeated) },
			},
			wantPhase: phaseGameOver,
			wantLevel: 1,
		},
		{
			name:   "defeat wins over a cleared field",
			levels: 2,
			steps: []func(t *testing.T, g *Game){
				func(t *testing.T, g *Game) { g.applyResult(game.TickResult{PlayerDefeated: true, LevelCleared: true}) },
			},
			wantPhase: phaseGameOver,
			wantLevel: 1,
		},
		{
			name:   "restart after defeat",
			levels: 2,
			steps: []func(t *testing.T, g *Game){
				func(t *testing.T, g *Game) { g.applyResult(defeated) },
				func(t *testing.T, g *Game) { require.NoError(t, g.restart()) },
			},
			wantPhase: phasePlaying,
			wantLevel: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.levels, 3)
			for _, step := range tt.steps {
				step(t, g)
			}

			assert.Equal(t, tt.wantPhase, g.phase)
			assert.Equal(t, tt.wantLevel, g.campaign.Level())
			assert.Equal(t, tt.wantBanner, g.bannerLevel)
			assert.Equal(t, tt.wantDone, g.campaign.Done())
		})
	}
}

func TestGame_LevelClearedStartsBannerCountdown(t *testing.T) {
	g := newTestGame(t, 2, 3)

	g.applyResult(game.TickResult{LevelCleared: true})

	assert.Equal(t, levelBannerDuration, g.bannerLeft)
}

func TestGame_ApplyResultEmitsEffects(t *testing.T) {
	g := newTestGame(t, 2, 3)

	g.applyResult(game.TickResult{
		Shots:  []game.ShotEvent{{Owner: game.OwnerPlayer}},
		Damage: []game.DamageEvent{{Target: game.Target{Kind: game.TargetPlayer}, Amount: 15}},
		Deaths: []game.DeathEvent{{EnemyID: 1}},
	})

	assert.Equal(t, 6+10+40, g.effects.Len())
	assert.Positive(t, g.shake.intensity)
	assert.Equal(t, phasePlaying, g.phase)
}

func TestGame_EffectsDoNotShiftSpawns(t *testing.T) {
	g := newTestGame(t, 2, 11)
	first := g.sim.Enemies()

	for i := 0; i < 5; i++ {
		g.effects.Emit(game.Vec2{X: 100, Y: 100}, explosion())
		g.shake.Add(shakeOnEnemyDeath)
		g.shake.Update(0.016)
	}
	g.initDust()
	require.NoError(t, g.restart())

	assert.Equal(t, first, g.sim.Enemies(), "the same seed replays the same spawns")

	sim, err := game.NewSimulation(g.sim.Config(), game.WithRand(rand.New(rand.NewSource(11))))
	require.NoError(t, err)
	require.NoError(t, sim.StartLevel(g.config.Levels[0]))
	assert.Equal(t, sim.Enemies(), g.sim.Enemies(), "the seed drives the simulation directly")
}
