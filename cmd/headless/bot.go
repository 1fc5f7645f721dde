package main

import (
	"math"

	"arenashooter/game"
)

// Distances the bot tries to keep from the nearest enemy
const (
	botMinRange = 130.0
	botMaxRange = 260.0
)

// botInput plays one tick: it keeps the nearest enemy at range and shoots at it.
// With no enemies left it drifts back to the field center.
func botInput(sim *game.Simulation) game.Input {
	player := sim.Player()
	in := game.Input{AimX: player.Pos.X, AimY: player.Pos.Y}

	target, ok := nearestEnemy(player.Pos, sim.Enemies())
	if !ok {
		steer(&in, sim.Bounds().Center().Sub(player.Pos), 10)
		return in
	}

	in.AimX, in.AimY = target.Pos.X, target.Pos.Y
	in.FireRequested = true

	toTarget := target.Pos.Sub(player.Pos)
	switch dist := toTarget.Len(); {
	case dist < botMinRange:
		steer(&in, toTarget.Scale(-1), 0)
	case dist > botMaxRange:
		steer(&in, toTarget, 0)
	}
	return in
}

// steer presses the keys pointing along dir, ignoring axes shorter than deadzone
func steer(in *game.Input, dir game.Vec2, deadzone float64) {
	if math.Abs(dir.X) > deadzone {
		in.MoveLeft = dir.X < 0
		in.MoveRight = dir.X > 0
	}
	if math.Abs(dir.Y) > deadzone {
		in.MoveUp = dir.Y < 0
		in.MoveDown = dir.Y > 0
	}
}

func nearestEnemy(from game.Vec2, enemies []game.Enemy) (game.Enemy, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, e := range enemies {
		if d := from.Dist(e.Pos); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return game.Enemy{}, false
	}
	return enemies[best], true
}
