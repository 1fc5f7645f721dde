package game

import "time"

// EntityID is a unique identifier for enemies and projectiles.
// IDs are allocated by the owning Simulation and never reused within it,
// so no pool can hold two elements with the same identity.
type EntityID uint64

// InvalidEntityID marks an unset reference. The player always uses it.
const InvalidEntityID EntityID = 0

// Owner tags who fired a projectile
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Player is the single avatar controlled by input snapshots
type Player struct {
	Pos       Vec2
	Radius    float64
	Health    int
	MaxHealth int
	Speed     float64 // pixels per tick along each pressed axis

	// Heading is the weapon angle in radians, pointing at the aim position
	Heading float64
	Moving  bool

	// Fire rate limiting, in session time
	LastShot      time.Duration
	HasShot       bool
	ShootCooldown time.Duration
}

// NewPlayer creates a player at pos with full health
func NewPlayer(pos Vec2, t PlayerTuning) Player {
	return Player{
		Pos:           pos,
		Radius:        t.Radius,
		Health:        t.Health,
		MaxHealth:     t.Health,
		Speed:         t.Speed,
		ShootCooldown: t.ShootCooldown,
	}
}

// Alive reports whether the player still has health left
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Heal restores up to amount health, never above MaxHealth
func (p *Player) Heal(amount int) {
	p.Health = clampHealth(p.Health+amount, p.MaxHealth)
}

// Enemy is an AI-controlled opponent
type Enemy struct {
	ID        EntityID
	Pos       Vec2
	Radius    float64
	Health    int
	MaxHealth int
	Speed     float64

	State        AIState
	RetreatTimer int     // ticks left in Retreat
	Cooldown     float64 // ticks until the next shot; may go negative

	Moving     bool
	LastTarget Vec2 // player position seen on the last AI step
}

// Alive reports whether the enemy still has health left
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Projectile is a bullet in flight
type Projectile struct {
	ID     EntityID
	Pos    Vec2
	Vel    Vec2 // pixels per tick
	Damage int
	Life   int // ticks left; removed at 0
	Owner  Owner
}

func clampHealth(h, maxHealth int) int {
	if h < 0 {
		return 0
	}
	if h > maxHealth {
		return maxHealth
	}
	return h
}
