package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arenashooter/game"
)

// Particle represents a single particle in a particle system
type Particle struct {
	pos      game.Vec2 // field position
	vel      game.Vec2 // pixels per second
	age      float64   // age in seconds
	lifetime float64   // total lifetime in seconds
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// Burst describes a one-shot emission
type Burst struct {
	Count          int
	Angle          float64 // emission direction
	Spread         float64 // half-angle around Angle; Pi emits in every direction
	SpeedMin       float64 // pixels per second
	SpeedMax       float64
	LifetimeMin    float64 // seconds
	LifetimeMax    float64
	SizeMin        float64
	SizeMax        float64
	Color          color.NRGBA
	ColorVariation color.NRGBA
}

// ParticleSystem holds every live particle for the session.
// Particles are cosmetic: they are driven by tick events and never feed back into the simulation.
type ParticleSystem struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system capped at maxParticles
func NewParticleSystem(maxParticles int, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles:    make([]Particle, 0, maxParticles),
		maxParticles: maxParticles,
		rng:          rng,
	}
}

// Emit spawns a burst at pos. Particles beyond the cap are dropped.
func (ps *ParticleSystem) Emit(pos game.Vec2, b Burst) {
	for i := 0; i < b.Count && len(ps.particles) < ps.maxParticles; i++ {
		angle := b.Angle + (ps.rng.Float64()-0.5)*b.Spread*2
		speed := ps.between(b.SpeedMin, b.SpeedMax)

		ps.particles = append(ps.particles, Particle{
			pos:      pos,
			vel:      game.FromAngle(angle, speed),
			lifetime: ps.between(b.LifetimeMin, b.LifetimeMax),
			color:    ps.vary(b.Color, b.ColorVariation),
			size:     ps.between(b.SizeMin, b.SizeMax),
		})
	}
}

func (ps *ParticleSystem) between(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

func (ps *ParticleSystem) vary(base, variation color.NRGBA) color.NRGBA {
	jitter := func(c, v uint8) uint8 {
		return uint8(clamp(float64(c)+ps.rng.Float64()*float64(v)*2-float64(v), 0, 255))
	}
	return color.NRGBA{
		R: jitter(base.R, variation.R),
		G: jitter(base.G, variation.G),
		B: jitter(base.B, variation.B),
		A: base.A,
	}
}

// Update ages and moves particles, dropping the dead ones
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		p.pos = p.pos.Add(p.vel.Scale(dt))
		if p.IsAlive() {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Clear removes every particle
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Draw renders all particles, fading them out over their lifetime
func (ps *ParticleSystem) Draw(screen *ebiten.Image, offset game.Vec2) {
	for _, p := range ps.particles {
		fade := clamp(1.0-p.age/p.lifetime, 0, 1)
		c := p.color
		c.A = uint8(float64(c.A) * fade)
		vector.DrawFilledCircle(screen,
			float32(p.pos.X+offset.X), float32(p.pos.Y+offset.Y),
			float32(p.size*(0.5+0.5*fade)), c, true)
	}
}

// muzzleFlash is a short cone of sparks along the shot direction
func muzzleFlash(angle float64, base color.NRGBA) Burst {
	return Burst{
		Count:          6,
		Angle:          angle,
		Spread:         math.Pi / 8,
		SpeedMin:       80,
		SpeedMax:       180,
		LifetimeMin:    0.05,
		LifetimeMax:    0.15,
		SizeMin:        1.5,
		SizeMax:        3,
		Color:          base,
		ColorVariation: color.NRGBA{R: 20, G: 30, B: 30},
	}
}

// hitSpark is a small radial spray where a projectile landed
func hitSpark(base color.NRGBA) Burst {
	return Burst{
		Count:          10,
		Spread:         math.Pi,
		SpeedMin:       60,
		SpeedMax:       200,
		LifetimeMin:    0.15,
		LifetimeMax:    0.35,
		SizeMin:        1.5,
		SizeMax:        3,
		Color:          base,
		ColorVariation: color.NRGBA{R: 30, G: 30, B: 30},
	}
}

// explosion is the burst left behind by a destroyed enemy
func explosion() Burst {
	return Burst{
		Count:          40,
		Spread:         math.Pi,
		SpeedMin:       40,
		SpeedMax:       260,
		LifetimeMin:    0.3,
		LifetimeMax:    0.9,
		SizeMin:        2,
		SizeMax:        5,
		Color:          color.NRGBA{R: 255, G: 150, B: 50, A: 255},
		ColorVariation: color.NRGBA{R: 0, G: 80, B: 40},
	}
}
