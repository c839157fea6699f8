package particle

import (
	"image/color"

	"meteorstorm/geom"
)

// White is the default particle tint
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Particle is a single slot in a particle pool.
// Slots are preallocated once and reused; they are never freed individually.
type Particle struct {
	// Kinematics in pixels, pixels/s and pixels/s^2
	Position     geom.Vector2
	Velocity     geom.Vector2
	Acceleration geom.Vector2

	// Rotation in radians and angular velocity in radians/s
	Rotation        float64
	AngularVelocity float64

	// Visual state consumed by the renderer
	Color color.NRGBA
	Scale float64

	// Lifetime in seconds and time elapsed since spawn
	Lifetime       float64
	TimeSinceStart float64

	// Active is true from spawn until expiry; inactive slots are free for reuse
	Active bool

	// Dead marks a particle killed by a collision outcome. It stays Active until
	// its lifetime runs out but is no longer drawn or collided with.
	Dead bool

	// HitBox tracks Position for particles that take part in collisions
	HitBox     geom.BoundingCircle
	Collidable bool
}

// Spawn holds the initial state applied by Initialize
type Spawn struct {
	Position        geom.Vector2
	Velocity        geom.Vector2
	Acceleration    geom.Vector2
	Color           color.NRGBA
	Scale           float64
	Lifetime        float64
	Rotation        float64
	AngularVelocity float64
}

// DefaultSpawn returns spawn parameters with a white tint, unit scale and a one second lifetime
func DefaultSpawn(position, velocity, acceleration geom.Vector2) Spawn {
	return Spawn{
		Position:     position,
		Velocity:     velocity,
		Acceleration: acceleration,
		Color:        White,
		Scale:        1,
		Lifetime:     1,
	}
}

// Initialize resets every field of the slot and marks it active
func (p *Particle) Initialize(s Spawn) {
	*p = Particle{
		Position:        s.Position,
		Velocity:        s.Velocity,
		Acceleration:    s.Acceleration,
		Rotation:        s.Rotation,
		AngularVelocity: s.AngularVelocity,
		Color:           s.Color,
		Scale:           s.Scale,
		Lifetime:        s.Lifetime,
		Active:          true,
	}
}

// SetHitBox attaches a circular hitbox centred on the particle
func (p *Particle) SetHitBox(radius float64) {
	p.HitBox = geom.NewBoundingCircle(p.Position, radius)
	p.Collidable = true
}

// Visible reports whether the particle should be drawn
func (p *Particle) Visible() bool {
	return p.Active && !p.Dead
}

// CanCollide reports whether the particle takes part in collision checks
func (p *Particle) CanCollide() bool {
	return p.Active && !p.Dead && p.Collidable
}

// NormalizedLifetime returns TimeSinceStart/Lifetime clamped to [0,1]
func (p *Particle) NormalizedLifetime() float64 {
	if p.Lifetime <= 0 {
		return 1
	}
	return max(0, min(1, p.TimeSinceStart/p.Lifetime))
}
