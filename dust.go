package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"arenashooter/game"
)

// initDust scatters floor specks over the current screen
func (g *Game) initDust() {
	g.dust = g.dust[:0]
	for i := 0; i < dustCount; i++ {
		g.dust = append(g.dust, dust{
			pos: game.Vec2{
				X: g.rng.Float64() * float64(g.screenWidth),
				Y: g.rng.Float64() * float64(g.screenHeight),
			},
			speed:  dustBaseSpeed * (0.5 + g.rng.Float64()),
			radius: 0.8 + g.rng.Float64()*1.4,
		})
	}
}

// updateDust shifts dust against the player's movement for a parallax effect
func (g *Game) updateDust(player game.Vec2) {
	delta := player.Sub(g.lastPlayerPos)
	g.lastPlayerPos = player

	w := float64(g.screenWidth)
	h := float64(g.screenHeight)
	if w <= 0 || h <= 0 {
		return
	}
	for i := range g.dust {
		d := &g.dust[i]
		d.pos = d.pos.Sub(delta.Scale(d.speed))
		// Wrap around the screen so the floor never runs out
		d.pos.X = wrap(d.pos.X, w)
		d.pos.Y = wrap(d.pos.Y, h)
	}
}

func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// drawDust draws the floor specks
func (g *Game) drawDust(screen *ebiten.Image, offset game.Vec2) {
	for _, d := range g.dust {
		drawCircle(screen, d.pos.Add(offset), d.radius, colorDust)
	}
}
