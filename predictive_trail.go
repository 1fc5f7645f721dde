package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"arenashooter/game"
)

// predictShotPath steps a projectile forward the way the projectile engine will,
// stopping when it would expire or leave the field
func predictShotPath(shot game.Projectile, bounds game.Bounds) []game.Vec2 {
	positions := make([]game.Vec2, 0, aimPreviewSteps+1)
	positions = append(positions, shot.Pos)

	for i := 0; i < aimPreviewSteps; i++ {
		for j := 0; j < aimPreviewStride; j++ {
			shot.Pos = shot.Pos.Add(shot.Vel)
			shot.Life--
		}
		if shot.Life <= 0 || !bounds.Contains(shot.Pos) {
			break
		}
		positions = append(positions, shot.Pos)
	}
	return positions
}

// drawTrail draws a polyline whose opacity fades from start to end
func drawTrail(screen *ebiten.Image, positions []game.Vec2, offset game.Vec2, trailColor color.NRGBA) {
	if len(positions) <= 1 {
		return
	}
	for i := 0; i < len(positions)-1; i++ {
		progress := float64(i) / float64(len(positions)-1)
		faded := trailColor
		faded.A = uint8(float64(trailColor.A) * (1.0 - progress*0.8))
		drawLine(screen, positions[i].Add(offset), positions[i+1].Add(offset), 1.5, faded)
	}
}

// drawCrosshair marks a point with a small cross
func drawCrosshair(screen *ebiten.Image, at game.Vec2, clr color.Color) {
	drawLine(screen, at.Add(game.Vec2{X: -crosshairSize}), at.Add(game.Vec2{X: crosshairSize}), 1, clr)
	drawLine(screen, at.Add(game.Vec2{Y: -crosshairSize}), at.Add(game.Vec2{Y: crosshairSize}), 1, clr)
}

// drawAimPreviews shows where each enemy would lead its next shot and
// where the player's next shot would travel
func (g *Game) drawAimPreviews(screen *ebiten.Image, offset game.Vec2) {
	cfg := g.sim.Config()
	player := g.sim.Player()
	if !player.Alive() {
		return
	}

	for _, e := range g.sim.Enemies() {
		if e.State == game.AIStateRetreat {
			continue
		}
		aim := game.PredictAim(e.Pos, &player, g.input, cfg.EnemyWeapon.ProjectileSpeed)
		drawTrail(screen, []game.Vec2{e.Pos, aim}, offset, colorAimPreview)
		drawCrosshair(screen, aim.Add(offset), colorAimPreview)
	}

	shot := cfg.PlayerWeapon.Fire(player.Pos, player.Heading, game.OwnerPlayer)
	drawTrail(screen, predictShotPath(shot, g.sim.Bounds()), offset, colorShotPreview)
}
