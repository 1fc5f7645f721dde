package game

// CombatResolver applies hits to the player and enemies and tallies the outcome
// of a single tick. A fresh resolver is used for every tick.
type CombatResolver struct {
	player       *Player
	enemies      map[EntityID]*Enemy
	scorePerKill int

	result *TickResult
}

// NewCombatResolver creates a resolver writing its events into result
func NewCombatResolver(player *Player, enemies []*Enemy, scorePerKill int, result *TickResult) *CombatResolver {
	byID := make(map[EntityID]*Enemy, len(enemies))
	for _, e := range enemies {
		byID[e.ID] = e
	}
	return &CombatResolver{
		player:       player,
		enemies:      byID,
		scorePerKill: scorePerKill,
		result:       result,
	}
}

// ApplyDamage subtracts a hit from its target, clamping health at zero
func (c *CombatResolver) ApplyDamage(h Hit) {
	switch h.Target.Kind {
	case TargetPlayer:
		// A defeated player takes no further damage
		if !c.player.Alive() {
			return
		}
		c.player.Health = clampHealth(c.player.Health-h.Amount, c.player.MaxHealth)
		c.record(h)
		if !c.player.Alive() {
			c.result.PlayerDefeated = true
		}

	case TargetEnemy:
		enemy, ok := c.enemies[h.Target.ID]
		if !ok || !enemy.Alive() {
			return
		}
		enemy.Health = clampHealth(enemy.Health-h.Amount, enemy.MaxHealth)
		c.record(h)
		if !enemy.Alive() {
			c.result.Deaths = append(c.result.Deaths, DeathEvent{EnemyID: enemy.ID, Pos: enemy.Pos})
			c.result.ScoreDelta += c.scorePerKill
		}
	}
}

func (c *CombatResolver) record(h Hit) {
	c.result.Damage = append(c.result.Damage, DamageEvent{Target: h.Target, Amount: h.Amount, Pos: h.Pos})
}

// Sweep removes dead enemies from the active set, preserving order
func (c *CombatResolver) Sweep(enemies []*Enemy) []*Enemy {
	alive := enemies[:0]
	for _, e := range enemies {
		if e.Alive() {
			alive = append(alive, e)
		} else {
			delete(c.enemies, e.ID)
		}
	}
	// Drop references held past the new length
	for i := len(alive); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return alive
}
