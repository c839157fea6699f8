package player

import (
	"math"

	"meteorstorm/geom"
)

// Config holds the ship's starting state and dimensions
type Config struct {
	// Start is the spawn position in pixels
	Start geom.Vector2

	// Health points at spawn
	Health int

	// Speed in pixels per second
	Speed float64

	// HalfWidth and HalfHeight are half the sprite extents after scaling;
	// the hitbox triangle spans them
	HalfWidth  float64
	HalfHeight float64

	// Bounds clamps the ship position when non-empty
	Bounds geom.Rect
}

// DefaultConfig matches the 98x75 ship sprite drawn at half scale
func DefaultConfig() Config {
	return Config{
		Start:      geom.Vec(400, 300),
		Health:     300,
		Speed:      75,
		HalfWidth:  24.5,
		HalfHeight: 18.5,
	}
}

// Ship is the player's craft. Its triangular hitbox is recomputed from the
// pose every time the ship moves.
type Ship struct {
	Position geom.Vector2
	Angle    float64
	Health   int
	Dead     bool

	config Config
	hitbox geom.BoundingTriangle
}

// NewShip creates a ship at the configured start position
func NewShip(config Config) *Ship {
	s := &Ship{config: config}
	s.Reset()
	return s
}

// Reset restores the spawn state
func (s *Ship) Reset() {
	s.Position = s.config.Start
	s.Angle = 0
	s.Health = s.config.Health
	s.Dead = false
	s.updateHitbox()
}

// Move steers the ship along direction for dt seconds. Direction is normalized
// so diagonals are not faster. The ship faces its travel direction while
// moving and points up when idle.
func (s *Ship) Move(direction geom.Vector2, dt float64) {
	unit, moving := direction.Normalize()
	if moving {
		s.Position = s.Position.Add(unit.Scale(s.config.Speed * dt))
		s.clamp()
		if unit.Y < 0 || unit.X != 0 {
			s.Angle = math.Atan2(unit.Y, unit.X) + math.Pi/2
		} else {
			s.Angle = 0
		}
	} else {
		s.Angle = 0
	}
	s.updateHitbox()
}

// clamp keeps the ship inside the configured bounds
func (s *Ship) clamp() {
	b := s.config.Bounds
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	s.Position.X = max(b.X, min(b.X+b.Width, s.Position.X))
	s.Position.Y = max(b.Y, min(b.Y+b.Height, s.Position.Y))
}

// updateHitbox rebuilds the nose/left/right triangle around the current pose
func (s *Ship) updateHitbox() {
	pos := s.Position
	top := geom.Vec(pos.X, pos.Y-s.config.HalfHeight)
	left := geom.Vec(pos.X-s.config.HalfWidth, pos.Y+s.config.HalfHeight)
	right := geom.Vec(pos.X+s.config.HalfWidth, pos.Y+s.config.HalfHeight)

	s.hitbox = geom.NewBoundingTriangle(
		top.RotateAround(pos, s.Angle),
		left.RotateAround(pos, s.Angle),
		right.RotateAround(pos, s.Angle),
	)
}

// Hitbox returns the current triangular hitbox
func (s *Ship) Hitbox() geom.BoundingTriangle {
	return s.hitbox
}

// TakeDamage subtracts damage from health. Returns true when this hit killed the ship.
func (s *Ship) TakeDamage(damage int) bool {
	if s.Dead {
		return false
	}
	s.Health -= damage
	if s.Health <= 0 {
		s.Dead = true
		return true
	}
	return false
}

// Config returns the ship configuration
func (s *Ship) Config() Config {
	return s.config
}
