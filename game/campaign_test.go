package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCampaign_RequiresLevels(t *testing.T) {
	_, err := NewCampaign(newTestSimulation(t, 1), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCampaign_AdvanceHealsAndEndsInVictory(t *testing.T) {
	s := newTestSimulation(t, 3)
	levels := s.Config().Levels
	c, err := NewCampaign(s, levels)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Level())
	assert.Equal(t, 5, c.Levels())
	assert.Len(t, s.Enemies(), 2)

	s.player.Health = 50
	more, err := c.Advance()
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, 2, c.Level())
	assert.Len(t, s.Enemies(), 3)
	assert.Equal(t, 75, s.Player().Health)

	s.player.Health = 90
	more, err = c.Advance()
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, 100, s.Player().Health, "healing never exceeds max health")

	for c.Level() < c.Levels() {
		more, err = c.Advance()
		require.NoError(t, err)
		assert.True(t, more)
	}
	assert.Len(t, s.Enemies(), 6)
	assert.False(t, c.Done())

	more, err = c.Advance()
	require.NoError(t, err)
	assert.False(t, more)
	assert.True(t, c.Done())

	more, err = c.Advance()
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, 5, c.Level())
}

func TestCampaign_AdvanceFailureKeepsCurrentLevel(t *testing.T) {
	s := newTestSimulation(t, 5)
	levels := []LevelConfig{
		{EnemyCount: 1, EnemySpeed: 1, EnemyHealth: 40},
		{EnemyCount: 0, EnemySpeed: 1, EnemyHealth: 40},
	}
	c, err := NewCampaign(s, levels)
	require.NoError(t, err)
	s.player.Health = 50

	more, err := c.Advance()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.False(t, more)

	assert.Equal(t, 1, c.Level())
	assert.False(t, c.Done())
	assert.Len(t, s.Enemies(), 1, "level 1 enemies stay in play")
	assert.Equal(t, 50, s.Player().Health, "no heal without a new level")
}
