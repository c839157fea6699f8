package particle

import (
	"math"

	"meteorstorm/geom"
)

const (
	// asteroidTextureWidth is the sprite width the hitbox radius is derived from
	asteroidTextureWidth = 89.0
	asteroidSpeed        = 100.0
	asteroidLifetime     = 6.0
)

// DefaultAsteroidSettings returns the asteroid constants: 5-10 asteroids per
// wave, one wave per second, 50 slots
func DefaultAsteroidSettings() Settings {
	return Settings{
		Capacity:      50,
		MinSpawn:      5,
		MaxSpawn:      10,
		SpawnInterval: 1.0,
		Texture:       "meteorBrown_big3",
		Blend:         BlendAlpha,
		DrawOrder:     AlphaBlendDrawOrder,
	}
}

type asteroidBehavior struct {
	settings Settings
}

func (b asteroidBehavior) Settings() Settings {
	return b.settings
}

func (b asteroidBehavior) InitializeParticle(p *Particle, where geom.Vector2, rng Rand) bool {
	scale := RandomFloat(rng, 0.3, 0.4)

	spawn := DefaultSpawn(where, geom.UnitY.Scale(asteroidSpeed), geom.Zero)
	spawn.Scale = scale
	spawn.Lifetime = asteroidLifetime
	spawn.Rotation = RandomFloat(rng, 0, 2*math.Pi)
	spawn.AngularVelocity = RandomFloat(rng, -math.Pi/4, math.Pi/4)

	p.Initialize(spawn)
	p.SetHitBox(asteroidTextureWidth * scale / 2)
	return true
}

func (b asteroidBehavior) UpdateParticle(p *Particle, dt float64) {
	p.Rotation += p.AngularVelocity * dt
	p.HitBox.Center = p.Position
}

// AsteroidField rains asteroids from a source region. Asteroids push each
// other apart and can be struck by the player.
type AsteroidField struct {
	*System
	emitter *Emitter
}

// NewAsteroidField creates an asteroid field emitting from source
func NewAsteroidField(settings Settings, source geom.Rect, rng Rand) (*AsteroidField, error) {
	system, err := NewSystem(asteroidBehavior{settings: settings}, rng)
	if err != nil {
		return nil, err
	}
	system.EnableCollisions(NewResolver())

	return &AsteroidField{
		System:  system,
		emitter: NewEmitter(system, source),
	}, nil
}

// Update advances the asteroids, resolves overlaps, then emits the next wave when due
func (a *AsteroidField) Update(dt float64) {
	a.System.Update(dt)
	a.emitter.Update(dt)
}

// SetActive turns asteroid emission on or off
func (a *AsteroidField) SetActive(active bool) {
	a.emitter.SetActive(active)
}

// IsActive reports whether new asteroids are being emitted
func (a *AsteroidField) IsActive() bool {
	return a.emitter.IsActive()
}

// Waves returns the number of asteroid waves emitted, used as the score
func (a *AsteroidField) Waves() int {
	return a.emitter.Waves()
}

// Reset clears the field and the wave count
func (a *AsteroidField) Reset() {
	a.System.Reset()
	a.emitter.Reset()
}
