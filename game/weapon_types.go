package game

import "time"

// WeaponType defines different types of weapons
type WeaponType int

const (
	WeaponTypeRifle      WeaponType = iota // Player rifle: fast, heavy rounds
	WeaponTypeEnemyRifle                   // Enemy rifle: slower, lighter rounds
)

// WeaponConfig holds configuration for each weapon type.
// Speeds are pixels per tick, lifetimes are ticks.
type WeaponConfig struct {
	Type            WeaponType `yaml:"-"`
	Damage          int        `yaml:"damage"`
	ProjectileSpeed float64    `yaml:"projectile_speed"`
	Lifetime        int        `yaml:"lifetime"`
	MuzzleOffset    float64    `yaml:"muzzle_offset"` // Distance from the shooter's center to the spawn point
}

// GetWeaponConfig returns configuration for a weapon type
func GetWeaponConfig(weaponType WeaponType) WeaponConfig {
	switch weaponType {
	case WeaponTypeRifle:
		return WeaponConfig{
			Type:            WeaponTypeRifle,
			Damage:          25,
			ProjectileSpeed: 12,
			Lifetime:        100,
			MuzzleOffset:    30,
		}
	case WeaponTypeEnemyRifle:
		return WeaponConfig{
			Type:            WeaponTypeEnemyRifle,
			Damage:          15,
			ProjectileSpeed: 6,
			Lifetime:        100,
			MuzzleOffset:    30,
		}
	default:
		return GetWeaponConfig(WeaponTypeRifle)
	}
}

// Fire builds a projectile leaving origin along angle. The caller assigns the ID.
func (wc WeaponConfig) Fire(origin Vec2, angle float64, owner Owner) Projectile {
	return Projectile{
		Pos:    origin.Add(FromAngle(angle, wc.MuzzleOffset)),
		Vel:    FromAngle(angle, wc.ProjectileSpeed),
		Damage: wc.Damage,
		Life:   wc.Lifetime,
		Owner:  owner,
	}
}

// CanShoot checks if a weapon is ready to fire based on time since last shot.
// A weapon that has never been fired can fire immediately.
func CanShoot(sinceLastShot, cooldown time.Duration, hasBeenFired bool) bool {
	if !hasBeenFired {
		return true
	}
	return sinceLastShot >= cooldown
}
