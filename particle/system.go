package particle

import (
	"errors"
	"fmt"

	"meteorstorm/geom"
)

var (
	ErrNilBehavior       = errors.New("particle: nil behavior")
	ErrNilRand           = errors.New("particle: nil random source")
	ErrInvalidCapacity   = errors.New("particle: capacity must be positive")
	ErrInvalidSpawnRange = errors.New("particle: spawn range must satisfy 0 <= min <= max")
)

// BlendMode tells the renderer how to composite a system's particles
type BlendMode int

const (
	BlendAlpha BlendMode = iota
	BlendAdditive
)

// Draw orders used by the presentation layer
const (
	AlphaBlendDrawOrder    = 100
	AdditiveBlendDrawOrder = 200
)

// Settings is the fixed configuration of a particle system, supplied at
// construction and immutable afterwards
type Settings struct {
	// Capacity is the pool size
	Capacity int

	// MinSpawn and MaxSpawn bound the number of particles per spawn call (inclusive)
	MinSpawn int
	MaxSpawn int

	// SpawnInterval is the emitter cadence in seconds; 0 means every frame
	SpawnInterval float64

	// Texture identifies the sprite; opaque to the core
	Texture string

	// Blend and DrawOrder are consumed only by the renderer
	Blend     BlendMode
	DrawOrder int
}

// Validate checks the settings for values the pool cannot work with
func (s Settings) Validate() error {
	if s.Capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, s.Capacity)
	}
	if s.MinSpawn < 0 || s.MinSpawn > s.MaxSpawn {
		return fmt.Errorf("%w: got [%d, %d]", ErrInvalidSpawnRange, s.MinSpawn, s.MaxSpawn)
	}
	if s.SpawnInterval < 0 {
		return fmt.Errorf("particle: spawn interval must not be negative: got %v", s.SpawnInterval)
	}
	return nil
}

// Behavior customizes a particle system without touching pool mechanics
type Behavior interface {
	// Settings returns the system constants
	Settings() Settings

	// InitializeParticle sets up a free slot at where. Returning false leaves
	// the slot free (invalid placement).
	InitializeParticle(p *Particle, where geom.Vector2, rng Rand) bool

	// UpdateParticle runs after the engine has integrated kinematics for this tick
	UpdateParticle(p *Particle, dt float64)
}

// System owns a fixed-capacity particle pool driven by a Behavior
type System struct {
	behavior  Behavior
	settings  Settings
	rng       Rand
	particles []Particle

	resolver *Resolver
}

// NewSystem creates a particle system and preallocates its pool
func NewSystem(behavior Behavior, rng Rand) (*System, error) {
	if behavior == nil {
		return nil, ErrNilBehavior
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	settings := behavior.Settings()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &System{
		behavior:  behavior,
		settings:  settings,
		rng:       rng,
		particles: make([]Particle, settings.Capacity),
	}, nil
}

// EnableCollisions makes Update run the overlap resolver after each tick
func (s *System) EnableCollisions(r Resolver) {
	s.resolver = &r
}

// Spawn emits a random number of particles at where.
// Particles that do not fit in the pool are dropped silently.
// Returns the number actually spawned.
func (s *System) Spawn(where geom.Vector2) int {
	count := RandomCount(s.rng, s.settings.MinSpawn, s.settings.MaxSpawn)
	spawned := 0
	for i := 0; i < count; i++ {
		if s.spawnOne(where) {
			spawned++
		}
	}
	return spawned
}

// SpawnInRegion emits a random number of particles, each at a random point in region
func (s *System) SpawnInRegion(region geom.Rect) int {
	count := RandomCount(s.rng, s.settings.MinSpawn, s.settings.MaxSpawn)
	spawned := 0
	for i := 0; i < count; i++ {
		if s.spawnOne(region.RandomPoint(s.rng)) {
			spawned++
		}
	}
	return spawned
}

// spawnOne initializes the first free slot
func (s *System) spawnOne(where geom.Vector2) bool {
	index := s.freeSlot()
	if index < 0 {
		return false
	}
	return s.behavior.InitializeParticle(&s.particles[index], where, s.rng)
}

// freeSlot scans for an inactive slot, -1 when the pool is full
func (s *System) freeSlot() int {
	for i := range s.particles {
		if !s.particles[i].Active {
			return i
		}
	}
	return -1
}

// Update advances every active particle by dt seconds and retires expired ones
func (s *System) Update(dt float64) {
	for i := range s.particles {
		p := &s.particles[i]
		if !p.Active {
			continue
		}

		p.Velocity = p.Velocity.Add(p.Acceleration.Scale(dt))
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.TimeSinceStart += dt

		s.behavior.UpdateParticle(p, dt)

		if p.TimeSinceStart >= p.Lifetime {
			p.Active = false
		}
	}

	if s.resolver != nil {
		s.ResolveCollisions()
	}
}

// Particles exposes the pool in index order. Callers must not retain it across ticks.
func (s *System) Particles() []Particle {
	return s.particles
}

// Visible calls fn for each active, non-dead particle in index order
func (s *System) Visible(fn func(p *Particle)) {
	for i := range s.particles {
		if s.particles[i].Visible() {
			fn(&s.particles[i])
		}
	}
}

// ActiveCount returns the number of occupied slots
func (s *System) ActiveCount() int {
	count := 0
	for i := range s.particles {
		if s.particles[i].Active {
			count++
		}
	}
	return count
}

// Capacity returns the fixed pool size
func (s *System) Capacity() int {
	return len(s.particles)
}

// Settings returns the system constants
func (s *System) Settings() Settings {
	return s.settings
}

// Reset frees every slot
func (s *System) Reset() {
	for i := range s.particles {
		s.particles[i] = Particle{}
	}
}
