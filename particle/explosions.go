package particle

import (
	"image/color"
	"math"

	"meteorstorm/geom"
)

// ParticlesPerExplosion sizes the explosion pool per concurrent explosion
const ParticlesPerExplosion = 25

// DefaultExplosionSettings returns the explosion constants for up to maxExplosions
// simultaneous explosions
func DefaultExplosionSettings(maxExplosions int) Settings {
	return Settings{
		Capacity:  maxExplosions * ParticlesPerExplosion,
		MinSpawn:  20,
		MaxSpawn:  25,
		Texture:   "explosion",
		Blend:     BlendAdditive,
		DrawOrder: AdditiveBlendDrawOrder,
	}
}

type explosionBehavior struct {
	settings Settings
}

func (b explosionBehavior) Settings() Settings {
	return b.settings
}

func (b explosionBehavior) InitializeParticle(p *Particle, where geom.Vector2, rng Rand) bool {
	if !where.IsFinite() {
		return false
	}

	velocity := RandomDirection(rng).Scale(RandomFloat(rng, 40, 200))
	lifetime := RandomFloat(rng, 0.5, 1.0)

	spawn := DefaultSpawn(where, velocity, velocity.Scale(-1/lifetime))
	spawn.Lifetime = lifetime
	spawn.Rotation = RandomFloat(rng, 0, 2*math.Pi)
	spawn.AngularVelocity = RandomFloat(rng, -math.Pi/4, math.Pi/4)
	p.Initialize(spawn)
	return true
}

// UpdateParticle fades the particle in and out and grows it over its lifetime
func (b explosionBehavior) UpdateParticle(p *Particle, dt float64) {
	u := p.NormalizedLifetime()
	p.Color = color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(255 * ExplosionAlpha(u)))}
	p.Scale = ExplosionScale(u)
}

// ExplosionAlpha is the parabolic fade 4u(1-u): transparent at both ends, opaque at u=0.5
func ExplosionAlpha(u float64) float64 {
	return 4 * u * (1 - u)
}

// ExplosionScale grows linearly from 0.1 to 0.35 over the lifetime
func ExplosionScale(u float64) float64 {
	return 0.1 + 0.25*u
}

// Explosions is a pool of short-lived additive bursts placed on demand
type Explosions struct {
	*System
}

// NewExplosions creates the explosion pool
func NewExplosions(settings Settings, rng Rand) (*Explosions, error) {
	system, err := NewSystem(explosionBehavior{settings: settings}, rng)
	if err != nil {
		return nil, err
	}
	return &Explosions{System: system}, nil
}

// Place emits one explosion at where. Returns the number of particles placed;
// zero for an invalid placement or a full pool.
func (e *Explosions) Place(where geom.Vector2) int {
	if !where.IsFinite() {
		return 0
	}
	return e.Spawn(where)
}
