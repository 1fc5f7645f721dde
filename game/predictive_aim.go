package game

// PredictAim returns where a shooter at origin should aim to hit the player.
//
// The player's velocity is estimated from the movement keys held this tick:
// each held axis contributes Speed in that direction, so only axis-aligned
// keyboard movement is led. Lead time is the straight-line distance divided
// by projectileSpeed.
func PredictAim(origin Vec2, player *Player, in Input, projectileSpeed float64) Vec2 {
	if projectileSpeed <= 0 {
		return player.Pos
	}

	timeToTarget := origin.Dist(player.Pos) / projectileSpeed
	velocity := in.MoveAxes().Scale(player.Speed)
	return player.Pos.Add(velocity.Scale(timeToTarget))
}
