package particle

import "meteorstorm/geom"

// Hit describes a particle that struck the player
type Hit struct {
	// Index is the pool slot of the struck particle
	Index int

	// Position is the particle's last position, used to place effects
	Position geom.Vector2

	// Particle is a copy of the slot taken before it was marked dead
	Particle Particle
}

// CheckPlayerCollision scans the pool in index order for the first live
// collidable particle touching the player's triangle. That particle is marked
// dead so it cannot be reported again. At most one hit is reported per call.
func (s *System) CheckPlayerCollision(player geom.BoundingTriangle) (Hit, bool) {
	for i := range s.particles {
		p := &s.particles[i]
		if !p.CanCollide() {
			continue
		}
		if !geom.TriangleCollidesCircle(player, p.HitBox) {
			continue
		}

		hit := Hit{Index: i, Position: p.Position, Particle: *p}
		p.Dead = true
		return hit, true
	}
	return Hit{}, false
}
