package main

import (
	"math/rand"

	"arenashooter/game"
)

// ScreenShake offsets the whole field for a short time after heavy hits
type ScreenShake struct {
	intensity      float64 // current max offset in pixels
	addedThisFrame int
	offset         game.Vec2
	rng            *rand.Rand
}

// NewScreenShake creates an idle shake
func NewScreenShake(rng *rand.Rand) *ScreenShake {
	return &ScreenShake{rng: rng}
}

// Add starts or strengthens the shake. Repeated shakes in one frame are rate limited
// and the combined intensity is capped.
func (s *ScreenShake) Add(intensity float64) {
	if s.addedThisFrame >= maxShakesPerFrame {
		return
	}
	s.addedThisFrame++

	if s.intensity <= 0 {
		s.intensity = intensity
	} else {
		s.intensity += intensity * 0.5
	}
	if s.intensity > maxShakeIntensity {
		s.intensity = maxShakeIntensity
	}
}

// Update decays the shake and picks this frame's offset
func (s *ScreenShake) Update(dt float64) {
	s.addedThisFrame = 0
	if s.intensity <= 0 {
		s.offset = game.Vec2{}
		return
	}

	s.offset = game.Vec2{
		X: (s.rng.Float64()*2 - 1) * s.intensity,
		Y: (s.rng.Float64()*2 - 1) * s.intensity,
	}
	s.intensity -= shakeDecayPerSec * dt
	if s.intensity < 0 {
		s.intensity = 0
	}
}

// Offset returns the displacement to apply when drawing the field
func (s *ScreenShake) Offset() game.Vec2 {
	return s.offset
}

// Reset stops any shake in progress
func (s *ScreenShake) Reset() {
	s.intensity = 0
	s.offset = game.Vec2{}
}
