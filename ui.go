package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"arenashooter/game"
)

// drawText uses the classic text.Draw signature with the built-in bitmap face.
// y is the baseline.
func drawText(img *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(img, s, basicfont.Face7x13, x, y, col)
}

// drawCenteredText draws s horizontally centered on the screen
func (g *Game) drawCenteredText(screen *ebiten.Image, s string, y int, col color.Color) {
	x := (g.screenWidth - len(s)*glyphWidth) / 2
	drawText(screen, s, x, y, col)
}

// drawHUD draws score, level and health in the top left corner
func (g *Game) drawHUD(screen *ebiten.Image) {
	player := g.sim.Player()
	lines := []string{
		fmt.Sprintf("Score: %d", g.sim.Score()),
		fmt.Sprintf("Level: %d/%d", g.campaign.Level(), g.campaign.Levels()),
		fmt.Sprintf("Health: %d/%d", player.Health, player.MaxHealth),
		fmt.Sprintf("Enemies: %d", len(g.sim.Enemies())),
	}
	for i, line := range lines {
		drawText(screen, line, hudMargin, hudMargin+(i+1)*hudLineHeight, colorHUD)
	}
}

// drawOverlay draws the level banner and the end screens
func (g *Game) drawOverlay(screen *ebiten.Image) {
	var title, subtitle string
	var titleColor color.Color

	switch g.phase {
	case phaseLevelBanner:
		title = fmt.Sprintf("LEVEL %d COMPLETE", g.bannerLevel)
		subtitle = fmt.Sprintf("Level %d starting...", g.bannerLevel+1)
		titleColor = colorBanner
	case phaseGameOver:
		title = "GAME OVER"
		subtitle = fmt.Sprintf("Final score: %d  -  press R to restart", g.sim.Score())
		titleColor = colorGameOver
	case phaseVictory:
		title = "VICTORY!"
		subtitle = fmt.Sprintf("All %d levels cleared with %d points  -  press R to play again", g.campaign.Levels(), g.sim.Score())
		titleColor = colorVictory
	default:
		return
	}

	mid := g.screenHeight / 2
	drawRect(screen, 0, float64(mid-40), float64(g.screenWidth), 80, colorBannerShade)
	g.drawCenteredText(screen, title, mid-8, titleColor)
	g.drawCenteredText(screen, subtitle, mid+18, colorHUD)
}

// drawDebug draws the F1 overlay with loop and simulation counters
func (g *Game) drawDebug(screen *ebiten.Image) {
	counts := map[game.AIState]int{}
	for _, e := range g.sim.Enemies() {
		counts[e.State]++
	}

	player := g.sim.Player()
	lines := []string{
		fmt.Sprintf("FPS: %0.1f  TPS: %0.1f", g.fps, ebiten.ActualTPS()),
		fmt.Sprintf("Tick: %d  Clock: %v", g.sim.Ticks(), g.clock.Truncate(tickDuration)),
		fmt.Sprintf("Phase: %s", g.phase),
		fmt.Sprintf("Player: (%.0f, %.0f) heading %.2f", player.Pos.X, player.Pos.Y, player.Heading),
		fmt.Sprintf("AI: hunt %d  attack %d  retreat %d",
			counts[game.AIStateHunt], counts[game.AIStateAttack], counts[game.AIStateRetreat]),
		fmt.Sprintf("Shots: %d player / %d enemy", len(g.sim.PlayerProjectiles()), len(g.sim.EnemyProjectiles())),
		fmt.Sprintf("Particles: %d", g.effects.Len()),
	}
	if g.profiler != nil && g.profiler.IsProfiling() {
		lines = append(lines, "Profiling...")
	}

	drawRect(screen, debugOverlayLeft-4, debugOverlayTop-4, debugOverlayWidth, float64(len(lines)*16+8), colorDebugBackdrop)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, debugOverlayLeft, debugOverlayTop+i*16)
	}
}
