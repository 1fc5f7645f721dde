package game

// TargetKind identifies what a damage event hit
type TargetKind int

const (
	TargetPlayer TargetKind = iota
	TargetEnemy
)

func (k TargetKind) String() string {
	if k == TargetPlayer {
		return "player"
	}
	return "enemy"
}

// Target references the entity a hit landed on. ID is InvalidEntityID for the player.
type Target struct {
	Kind TargetKind
	ID   EntityID
}

// Hit is a projectile impact waiting to be applied
type Hit struct {
	Target Target
	Amount int
	Pos    Vec2 // impact point
}

// DamageSink receives hits as soon as the projectile engine detects them
type DamageSink interface {
	ApplyDamage(h Hit)
}

// DamageEvent reports damage applied during a tick
type DamageEvent struct {
	Target Target
	Amount int
	Pos    Vec2
}

// DeathEvent reports an enemy removed during a tick
type DeathEvent struct {
	EnemyID EntityID
	Pos     Vec2
}

// ShotEvent reports a projectile fired during a tick
type ShotEvent struct {
	Owner Owner
	Pos   Vec2 // muzzle position
	Angle float64
}

// TickResult is everything the presentation layer needs to know about one tick.
// It is built fresh every tick and owns its slices.
type TickResult struct {
	Damage []DamageEvent
	Deaths []DeathEvent
	Shots  []ShotEvent

	ScoreDelta       int
	EnemiesRemaining int

	// PlayerDefeated is set once the player's health has reached zero
	PlayerDefeated bool

	// LevelCleared is set exactly once per level, on the tick the last enemy dies
	LevelCleared bool
}
