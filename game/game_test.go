package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frameTime is the session clock of a 60Hz loop
func frameTime(tick int) time.Duration {
	return time.Duration(tick) * time.Second / 60
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Bounds = testBounds
	return cfg
}

func newTestSimulation(t *testing.T, seed int64) *Simulation {
	t.Helper()
	s, err := NewSimulation(testConfig(), WithRand(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	return s
}

func TestNewSimulation_PlayerAtCenter(t *testing.T) {
	s := newTestSimulation(t, 1)

	p := s.Player()
	assert.Equal(t, Vec2{X: 400, Y: 300}, p.Pos)
	assert.Equal(t, 100, p.Health)
	assert.Empty(t, s.Enemies())
	assert.Zero(t, s.Score())
}

func TestNewSimulation_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Bounds = Bounds{Width: 0, Height: 600}

	_, err := NewSimulation(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = testConfig()
	cfg.Levels[2].EnemyCount = 0
	_, err = NewSimulation(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSimulation_SetBounds(t *testing.T) {
	s := newTestSimulation(t, 1)

	assert.ErrorIs(t, s.SetBounds(Bounds{Width: -1, Height: 10}), ErrInvalidConfig)
	require.NoError(t, s.SetBounds(Bounds{Width: 1280, Height: 720}))
	assert.Equal(t, Bounds{Width: 1280, Height: 720}, s.Bounds())
}

func TestStartLevel_SpawnsAwayFromPlayer(t *testing.T) {
	level := LevelConfig{EnemyCount: 3, EnemySpeed: 1.5, EnemyHealth: 60}

	for seed := int64(1); seed <= 20; seed++ {
		s := newTestSimulation(t, seed)
		require.NoError(t, s.StartLevel(level))

		enemies := s.Enemies()
		require.Len(t, enemies, 3)
		seen := map[EntityID]bool{}
		for _, e := range enemies {
			assert.GreaterOrEqual(t, e.Pos.Dist(s.Player().Pos), 150.0)
			assert.Equal(t, AIStateHunt, e.State)
			assert.Equal(t, 60, e.Health)
			assert.Equal(t, 60, e.MaxHealth)
			assert.Equal(t, 1.5, e.Speed)
			assert.GreaterOrEqual(t, e.Cooldown, 0.0)
			assert.Less(t, e.Cooldown, 60.0)
			assert.NotEqual(t, InvalidEntityID, e.ID)
			assert.False(t, seen[e.ID], "duplicate enemy id %d", e.ID)
			seen[e.ID] = true
		}
	}
}

func TestStartLevel_ClearsProjectiles(t *testing.T) {
	s := newTestSimulation(t, 1)
	s.playerProjectiles = append(s.playerProjectiles, playerShot(s.allocID(), Vec2{X: 10, Y: 10}, Vec2{X: 1}))
	s.enemyProjectiles = append(s.enemyProjectiles, playerShot(s.allocID(), Vec2{X: 10, Y: 10}, Vec2{X: 1}))

	require.NoError(t, s.StartLevel(LevelConfig{EnemyCount: 2, EnemySpeed: 1.2, EnemyHealth: 50}))

	assert.Empty(t, s.PlayerProjectiles())
	assert.Empty(t, s.EnemyProjectiles())
}

func TestStartLevel_RejectsInvalidLevel(t *testing.T) {
	s := newTestSimulation(t, 1)

	err := s.StartLevel(LevelConfig{EnemyCount: 0, EnemySpeed: 1, EnemyHealth: 50})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	err = s.StartLevel(LevelConfig{EnemyCount: 2, EnemySpeed: 1, EnemyHealth: 0})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTick_KillReportsLevelClearedOnce(t *testing.T) {
	s := newTestSimulation(t, 1)
	require.NoError(t, s.StartLevel(LevelConfig{EnemyCount: 1, EnemySpeed: 1, EnemyHealth: 25}))
	s.enemies = []*Enemy{{
		ID:        s.allocID(),
		Pos:       Vec2{X: 460, Y: 300},
		Radius:    25,
		Health:    25,
		MaxHealth: 25,
		Speed:     1,
		State:     AIStateAttack,
		Cooldown:  100,
	}}

	result := s.Tick(Input{AimX: 460, AimY: 300, FireRequested: true}, 0)

	require.Len(t, result.Shots, 1)
	assert.Equal(t, OwnerPlayer, result.Shots[0].Owner)
	require.Len(t, result.Damage, 1)
	require.Len(t, result.Deaths, 1)
	assert.Equal(t, 100, result.ScoreDelta)
	assert.Equal(t, 0, result.EnemiesRemaining)
	assert.True(t, result.LevelCleared)
	assert.Equal(t, 100, s.Score())
	assert.Empty(t, s.PlayerProjectiles())

	next := s.Tick(Input{AimX: 460, AimY: 300}, frameTime(1))
	assert.False(t, next.LevelCleared)
	assert.Empty(t, next.Damage)
}

func TestTick_FrozenFieldIsIdempotent(t *testing.T) {
	s := newTestSimulation(t, 1)
	require.NoError(t, s.StartLevel(LevelConfig{EnemyCount: 2, EnemySpeed: 1, EnemyHealth: 50}))
	s.enemies = s.enemies[:0]

	cleared := 0
	for i := 0; i < 10; i++ {
		result := s.Tick(Input{}, frameTime(i))
		assert.Empty(t, result.Damage)
		assert.Empty(t, result.Shots)
		if result.LevelCleared {
			cleared++
		}
	}
	assert.Equal(t, 1, cleared)
}

func TestTick_EnemyShotHitsPlayerOnce(t *testing.T) {
	s := newTestSimulation(t, 1)
	s.enemies = []*Enemy{{
		ID:        s.allocID(),
		Pos:       Vec2{X: 500, Y: 300},
		Radius:    25,
		Health:    50,
		MaxHealth: 50,
		Speed:     1.2,
		State:     AIStateAttack,
	}}

	var damage []DamageEvent
	shots := 0
	for i := 0; i < 10; i++ {
		result := s.Tick(Input{AimX: 0, AimY: 0}, frameTime(i))
		damage = append(damage, result.Damage...)
		shots += len(result.Shots)
	}

	assert.Equal(t, 1, shots)
	require.Len(t, damage, 1)
	assert.Equal(t, TargetPlayer, damage[0].Target.Kind)
	assert.Equal(t, 15, damage[0].Amount)
	assert.Equal(t, 85, s.Player().Health)
	assert.Empty(t, s.EnemyProjectiles())
}

func TestTick_DefeatFreezesSimulation(t *testing.T) {
	s := newTestSimulation(t, 1)
	s.player.Health = 10
	s.enemyProjectiles = []Projectile{{
		ID:     s.allocID(),
		Pos:    Vec2{X: 365, Y: 300},
		Vel:    Vec2{X: 6, Y: 0},
		Damage: 15,
		Life:   100,
		Owner:  OwnerEnemy,
	}}

	result := s.Tick(Input{}, 0)
	require.True(t, result.PlayerDefeated)
	assert.Equal(t, 0, s.Player().Health)
	assert.True(t, s.Defeated())
	ticks := s.Ticks()

	after := s.Tick(Input{MoveLeft: true, FireRequested: true}, frameTime(30))
	assert.Equal(t, TickResult{PlayerDefeated: true}, after)
	assert.Equal(t, ticks, s.Ticks())
	assert.Equal(t, Vec2{X: 400, Y: 300}, s.Player().Pos)
}

func TestTick_InvariantsHoldUnderRandomPlay(t *testing.T) {
	s := newTestSimulation(t, 7)
	cfg := s.Config()
	require.NoError(t, s.StartLevel(LevelConfig{EnemyCount: 6, EnemySpeed: 2.2, EnemyHealth: 90}))
	inputs := rand.New(rand.NewSource(99))

	deaths := 0
	lastLife := map[EntityID]int{}
	for i := 0; i < 3000 && !s.Defeated(); i++ {
		in := Input{
			MoveUp:        inputs.Intn(4) == 0,
			MoveDown:      inputs.Intn(4) == 0,
			MoveLeft:      inputs.Intn(4) == 0,
			MoveRight:     inputs.Intn(4) == 0,
			AimX:          inputs.Float64() * testBounds.Width,
			AimY:          inputs.Float64() * testBounds.Height,
			FireRequested: inputs.Intn(2) == 0,
		}
		result := s.Tick(in, frameTime(i))
		deaths += len(result.Deaths)

		p := s.Player()
		require.GreaterOrEqual(t, p.Health, 0)
		require.LessOrEqual(t, p.Health, p.MaxHealth)
		require.GreaterOrEqual(t, p.Pos.X, p.Radius)
		require.LessOrEqual(t, p.Pos.X, testBounds.Width-p.Radius)

		enemies := s.Enemies()
		require.Equal(t, len(enemies), result.EnemiesRemaining)
		ids := map[EntityID]bool{}
		for _, e := range enemies {
			require.Greater(t, e.Health, 0, "dead enemies are swept in the same tick")
			require.LessOrEqual(t, e.Health, e.MaxHealth)
			require.False(t, ids[e.ID])
			ids[e.ID] = true
		}

		life := map[EntityID]int{}
		for _, pr := range append(s.PlayerProjectiles(), s.EnemyProjectiles()...) {
			require.False(t, ids[pr.ID], "duplicate id %d", pr.ID)
			ids[pr.ID] = true
			require.Greater(t, pr.Life, 0)
			require.True(t, testBounds.Contains(pr.Pos))
			if prev, ok := lastLife[pr.ID]; ok {
				require.Equal(t, prev-1, pr.Life, "life drops by one per tick")
			}
			life[pr.ID] = pr.Life
		}
		lastLife = life
	}

	assert.Equal(t, deaths*cfg.ScorePerKill, s.Score())
}
