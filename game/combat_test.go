package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enemyHit(id EntityID, amount int) Hit {
	return Hit{Target: Target{Kind: TargetEnemy, ID: id}, Amount: amount}
}

func TestCombatResolver_KillsAfterThreeHits(t *testing.T) {
	player := testPlayer(400, 300)
	e := testEnemy(100, 100, AIStateAttack)
	var result TickResult
	combat := NewCombatResolver(&player, []*Enemy{e}, 100, &result)

	combat.ApplyDamage(enemyHit(e.ID, 25))
	assert.Equal(t, 35, e.Health)
	assert.Empty(t, result.Deaths)

	combat.ApplyDamage(enemyHit(e.ID, 25))
	assert.Equal(t, 10, e.Health)
	assert.Empty(t, result.Deaths)

	combat.ApplyDamage(enemyHit(e.ID, 25))
	assert.Equal(t, 0, e.Health, "health clamps at zero")
	require.Len(t, result.Deaths, 1)
	assert.Equal(t, e.ID, result.Deaths[0].EnemyID)
	assert.Equal(t, 100, result.ScoreDelta)
	assert.Len(t, result.Damage, 3)

	enemies := combat.Sweep([]*Enemy{e})
	assert.Empty(t, enemies)
}

func TestCombatResolver_IgnoresDeadAndUnknownEnemies(t *testing.T) {
	player := testPlayer(400, 300)
	e := testEnemy(100, 100, AIStateAttack)
	e.Health = 0
	var result TickResult
	combat := NewCombatResolver(&player, []*Enemy{e}, 100, &result)

	combat.ApplyDamage(enemyHit(e.ID, 25))
	combat.ApplyDamage(enemyHit(99, 25))

	assert.Empty(t, result.Damage)
	assert.Empty(t, result.Deaths)
	assert.Zero(t, result.ScoreDelta)
}

func TestCombatResolver_DefeatsPlayer(t *testing.T) {
	player := testPlayer(400, 300)
	player.Health = 10
	var result TickResult
	combat := NewCombatResolver(&player, nil, 100, &result)

	combat.ApplyDamage(Hit{Target: Target{Kind: TargetPlayer}, Amount: 15})
	assert.Equal(t, 0, player.Health)
	assert.True(t, result.PlayerDefeated)

	combat.ApplyDamage(Hit{Target: Target{Kind: TargetPlayer}, Amount: 15})
	assert.Len(t, result.Damage, 1, "a defeated player takes no further damage")
}

func TestCombatResolver_SweepKeepsOrder(t *testing.T) {
	player := testPlayer(400, 300)
	a := testEnemy(0, 0, AIStateHunt)
	a.ID = 1
	b := testEnemy(0, 0, AIStateHunt)
	b.ID = 2
	b.Health = 0
	c := testEnemy(0, 0, AIStateHunt)
	c.ID = 3
	var result TickResult
	combat := NewCombatResolver(&player, []*Enemy{a, b, c}, 100, &result)

	enemies := []*Enemy{a, b, c}
	alive := combat.Sweep(enemies)

	require.Len(t, alive, 2)
	assert.Equal(t, EntityID(1), alive[0].ID)
	assert.Equal(t, EntityID(3), alive[1].ID)
	assert.Nil(t, enemies[2], "dropped tail slots are cleared")
}

func TestPlayer_Heal(t *testing.T) {
	p := testPlayer(0, 0)
	p.Health = 50

	p.Heal(25)
	assert.Equal(t, 75, p.Health)

	p.Heal(100)
	assert.Equal(t, 100, p.Health)
}
