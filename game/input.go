package game

import "time"

// Input is an immutable capture of player intent for one tick
type Input struct {
	MoveUp, MoveDown, MoveLeft, MoveRight bool

	// Aim position in field coordinates (usually the cursor)
	AimX, AimY float64

	FireRequested bool
}

// Aim returns the aim position as a vector
func (in Input) Aim() Vec2 {
	return Vec2{X: in.AimX, Y: in.AimY}
}

// AnyMovement reports whether any movement key is held
func (in Input) AnyMovement() bool {
	return in.MoveUp || in.MoveDown || in.MoveLeft || in.MoveRight
}

// MoveAxes returns the per-axis movement direction implied by the keys.
// Each axis is -1, 0 or 1. When both keys of an axis are held, left and up win.
func (in Input) MoveAxes() Vec2 {
	var dir Vec2
	switch {
	case in.MoveLeft:
		dir.X = -1
	case in.MoveRight:
		dir.X = 1
	}
	switch {
	case in.MoveUp:
		dir.Y = -1
	case in.MoveDown:
		dir.Y = 1
	}
	return dir
}

// UpdatePlayer applies one tick of input to the player.
// It returns a new projectile (without ID) and true when the player fired.
func UpdatePlayer(p *Player, in Input, now time.Duration, bounds Bounds, weapon WeaponConfig) (Projectile, bool) {
	// Each held key moves along its own axis: opposite keys cancel out
	// and diagonals are not normalized
	if in.MoveUp {
		p.Pos.Y -= p.Speed
	}
	if in.MoveDown {
		p.Pos.Y += p.Speed
	}
	if in.MoveLeft {
		p.Pos.X -= p.Speed
	}
	if in.MoveRight {
		p.Pos.X += p.Speed
	}
	p.Moving = in.AnyMovement()

	// Keep the player fully inside the field
	p.Pos.X = clamp(p.Pos.X, p.Radius, bounds.Width-p.Radius)
	p.Pos.Y = clamp(p.Pos.Y, p.Radius, bounds.Height-p.Radius)

	p.Heading = p.Pos.AngleTo(in.Aim())

	if !in.FireRequested || !CanShoot(now-p.LastShot, p.ShootCooldown, p.HasShot) {
		return Projectile{}, false
	}

	p.LastShot = now
	p.HasShot = true
	return weapon.Fire(p.Pos, p.Heading, OwnerPlayer), true
}
