package main

import (
	"image/color"
	"time"
)

// Presentation constants
const (
	levelBannerDuration = 2 * time.Second
	maxFrameDelta       = 0.1 // seconds, clamps long frame hitches
	fpsSampleWindow     = 0.5 // seconds between FPS recalculations
	fpsDropThreshold    = 55.0
	fpsDropGrace        = 3 * time.Second
	fpsDropCooldown     = 30 * time.Second
	dustCount           = 90
	dustBaseSpeed       = 0.35 // fraction of player movement applied to dust
	windowedSizeRatio   = 0.9
)

// Body geometry
const (
	barrelLength      = 30.0
	barrelWidth       = 6.0
	healthBarWidth    = 40.0
	healthBarHeight   = 5.0
	healthBarOffsetY  = 38.0
	projectileRadius  = 4.0
	aimPreviewSteps   = 24
	aimPreviewStride  = 2 // ticks between preview points
	crosshairSize     = 8.0
	hudMargin         = 16
	hudLineHeight     = 18
	glyphWidth        = 7 // basicfont.Face7x13 advance
	debugOverlayLeft  = 8
	debugOverlayTop   = 100
	debugOverlayWidth = 260
)

// Shake tuning
const (
	shakeOnPlayerHit  = 6.0
	shakeOnEnemyDeath = 3.0
	maxShakeIntensity = 14.0
	shakeDecayPerSec  = 30.0
	maxShakesPerFrame = 2
)

// Color constants
var (
	colorBackground    = color.NRGBA{R: 18, G: 22, B: 30, A: 255}
	colorDust          = color.NRGBA{R: 60, G: 66, B: 80, A: 255}
	colorPlayer        = color.NRGBA{R: 80, G: 170, B: 255, A: 255}
	colorPlayerBarrel  = color.NRGBA{R: 200, G: 230, B: 255, A: 255}
	colorEnemyHunt     = color.NRGBA{R: 230, G: 90, B: 70, A: 255}
	colorEnemyAttack   = color.NRGBA{R: 255, G: 40, B: 40, A: 255}
	colorEnemyRetreat  = color.NRGBA{R: 240, G: 170, B: 60, A: 255}
	colorEnemyBarrel   = color.NRGBA{R: 255, G: 200, B: 190, A: 255}
	colorPlayerShot    = color.NRGBA{R: 255, G: 240, B: 120, A: 255}
	colorEnemyShot     = color.NRGBA{R: 255, G: 110, B: 200, A: 255}
	colorHealthBack    = color.NRGBA{R: 60, G: 20, B: 20, A: 220}
	colorHealthFront   = color.NRGBA{R: 60, G: 220, B: 90, A: 255}
	colorHUD           = color.NRGBA{R: 230, G: 235, B: 245, A: 255}
	colorBannerShade   = color.NRGBA{R: 0, G: 0, B: 0, A: 160}
	colorBanner        = color.NRGBA{R: 255, G: 230, B: 120, A: 255}
	colorGameOver      = color.NRGBA{R: 255, G: 90, B: 90, A: 255}
	colorVictory       = color.NRGBA{R: 120, G: 255, B: 160, A: 255}
	colorAimPreview    = color.NRGBA{R: 255, G: 110, B: 200, A: 200}
	colorShotPreview   = color.NRGBA{R: 255, G: 240, B: 120, A: 160}
	colorDebugBackdrop = color.NRGBA{R: 10, G: 16, B: 32, A: 200}
)
