package game

import (
	"fmt"
	"math/rand"
)

// AIState represents the current AI behavior state of an enemy
type AIState int

const (
	AIStateHunt    AIState = iota // Close in on the player
	AIStateAttack                 // Hold position and shoot
	AIStateRetreat                // Back off while badly hurt
)

func (s AIState) String() string {
	switch s {
	case AIStateHunt:
		return "hunt"
	case AIStateAttack:
		return "attack"
	case AIStateRetreat:
		return "retreat"
	default:
		return fmt.Sprintf("AIState(%d)", int(s))
	}
}

// StepEnemy advances one enemy's state machine by one tick.
// The player is read but never mutated. It returns a new projectile (without ID)
// and true when the enemy fired this tick.
func StepEnemy(e *Enemy, player *Player, in Input, tuning EnemyTuning, weapon WeaponConfig, rng *rand.Rand) (Projectile, bool) {
	toPlayer := player.Pos.Sub(e.Pos)
	dist := toPlayer.Len()
	// Zero distance yields a zero direction instead of NaN
	dir := toPlayer.Normalized()

	e.LastTarget = player.Pos

	switch e.State {
	case AIStateHunt:
		if dist > tuning.HuntRange {
			e.Pos = e.Pos.Add(dir.Scale(e.Speed))
			e.Moving = true
		} else {
			e.State = AIStateAttack
			e.Moving = false
		}

	case AIStateAttack:
		if dist > tuning.DisengageRange {
			e.State = AIStateHunt
		} else if float64(e.Health) < float64(e.MaxHealth)*tuning.RetreatHealth {
			e.State = AIStateRetreat
			e.RetreatTimer = tuning.RetreatTicks
		}

	case AIStateRetreat:
		e.Pos = e.Pos.Sub(dir.Scale(e.Speed * tuning.RetreatSpeed))
		e.Moving = true
		e.RetreatTimer--
		if e.RetreatTimer <= 0 {
			e.State = AIStateHunt
		}

	default:
		// Unknown states restart the machine
		e.State = AIStateHunt
	}

	// Shooting uses the distance measured before moving and the state after the transition
	if e.Cooldown <= 0 && dist < tuning.FireRange && e.State != AIStateRetreat {
		aim := PredictAim(e.Pos, player, in, weapon.ProjectileSpeed)
		e.Cooldown = tuning.CooldownMin + rng.Float64()*tuning.CooldownSpread
		return weapon.Fire(e.Pos, e.Pos.AngleTo(aim), OwnerEnemy), true
	}

	e.Cooldown--
	return Projectile{}, false
}
