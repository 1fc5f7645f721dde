package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arenashooter/game"
)

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// drawCircle draws a filled circle centered at c
func drawCircle(dst *ebiten.Image, c game.Vec2, radius float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(radius), clr, true)
}

// drawRect draws a filled rectangle
func drawRect(dst *ebiten.Image, x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// drawLine draws a line segment of the given width
func drawLine(dst *ebiten.Image, a, b game.Vec2, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
}

// enemyColor tints enemies by AI state
func enemyColor(state game.AIState) color.NRGBA {
	switch state {
	case game.AIStateAttack:
		return colorEnemyAttack
	case game.AIStateRetreat:
		return colorEnemyRetreat
	default:
		return colorEnemyHunt
	}
}

// drawField draws everything inside the play field, displaced by the screen shake
func (g *Game) drawField(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	offset := g.shake.Offset()

	g.drawDust(screen, offset)

	for _, e := range g.sim.Enemies() {
		g.drawEnemy(screen, &e, offset)
	}

	player := g.sim.Player()
	if player.Alive() {
		g.drawPlayer(screen, &player, offset)
	}

	for _, p := range g.sim.PlayerProjectiles() {
		drawCircle(screen, p.Pos.Add(offset), projectileRadius, colorPlayerShot)
	}
	for _, p := range g.sim.EnemyProjectiles() {
		drawCircle(screen, p.Pos.Add(offset), projectileRadius, colorEnemyShot)
	}

	g.effects.Draw(screen, offset)

	if g.debug {
		g.drawAimPreviews(screen, offset)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, p *game.Player, offset game.Vec2) {
	center := p.Pos.Add(offset)
	drawCircle(screen, center, p.Radius, colorPlayer)
	drawLine(screen, center, center.Add(game.FromAngle(p.Heading, barrelLength)), barrelWidth, colorPlayerBarrel)
	drawHealthBar(screen, center, p.Health, p.MaxHealth)
}

func (g *Game) drawEnemy(screen *ebiten.Image, e *game.Enemy, offset game.Vec2) {
	center := e.Pos.Add(offset)
	drawCircle(screen, center, e.Radius, enemyColor(e.State))
	// Barrel tracks the last seen player position
	barrel := game.FromAngle(e.Pos.AngleTo(e.LastTarget), barrelLength)
	drawLine(screen, center, center.Add(barrel), barrelWidth, colorEnemyBarrel)
	drawHealthBar(screen, center, e.Health, e.MaxHealth)
}

// drawHealthBar draws a bar above a body, proportional to the remaining health
func drawHealthBar(screen *ebiten.Image, center game.Vec2, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	x := center.X - healthBarWidth/2
	y := center.Y - healthBarOffsetY
	frac := clamp(float64(health)/float64(maxHealth), 0, 1)

	drawRect(screen, x, y, healthBarWidth, healthBarHeight, colorHealthBack)
	drawRect(screen, x, y, healthBarWidth*frac, healthBarHeight, colorHealthFront)
}
