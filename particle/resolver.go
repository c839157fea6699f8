package particle

import (
	"math"

	"meteorstorm/geom"
)

const (
	// DefaultMaxIterations bounds the push-apart loop for a single pair
	DefaultMaxIterations = 15

	// DefaultMaxPasses bounds the number of sweeps over all pairs per tick
	DefaultMaxPasses = 100

	// Separation is the gap left between resolved hitboxes. Touching circles
	// count as colliding, so resolution has to clear them by a hair.
	Separation = 1e-4
)

// fallbackAxis separates a lone pair whose centers coincide exactly
var fallbackAxis = geom.UnitX

// goldenAngle spreads the headings of particles fanned out from a shared center
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Resolver separates overlapping particles by iterative position correction.
// When a cap is hit residual overlap is left in place.
type Resolver struct {
	MaxIterations int
	MaxPasses     int
}

// NewResolver returns a resolver with the default caps
func NewResolver() Resolver {
	return Resolver{MaxIterations: DefaultMaxIterations, MaxPasses: DefaultMaxPasses}
}

// ResolveOverlap pushes p1 and p2 apart along the axis from p2 to p1, half the
// overlap each, until their hitboxes no longer collide or the iteration cap is
// reached. Coincident centers are split along +X. Returns the number of
// iterations performed.
func (r Resolver) ResolveOverlap(p1, p2 *Particle) int {
	p1.HitBox.Center = p1.Position
	p2.HitBox.Center = p2.Position

	direction, ok := p1.Position.Sub(p2.Position).Normalize()
	if !ok {
		direction = fallbackAxis
	}

	iterations := 0
	for geom.CirclesCollide(p1.HitBox, p2.HitBox) && iterations < r.MaxIterations {
		overlap := p1.HitBox.Radius + p2.HitBox.Radius - p1.Position.Distance(p2.Position)
		push := direction.Scale((overlap + Separation) / 2)
		p1.Position = p1.Position.Add(push)
		p2.Position = p2.Position.Sub(push)

		p1.HitBox.Center = p1.Position
		p2.HitBox.Center = p2.Position
		iterations++
	}
	return iterations
}

// ResolveCollisions separates every colliding pair of collidable particles.
// Particles stacked on the exact same center are first fanned out around the
// lowest slot at golden-angle headings, then the i<j sweep repeats until a
// pass moves nothing or MaxPasses is reached. Returns the number of pair
// resolutions that moved particles, summed over all passes.
func (s *System) ResolveCollisions() int {
	r := NewResolver()
	if s.resolver != nil {
		r = *s.resolver
	}

	s.fanOutStacked()

	resolved := 0
	for pass := 0; pass < r.MaxPasses; pass++ {
		n := s.resolvePass(r)
		if n == 0 {
			break
		}
		resolved += n
	}
	return resolved
}

// resolvePass runs one sweep over all unordered pairs
func (s *System) resolvePass(r Resolver) int {
	resolved := 0
	for i := range s.particles {
		if !s.particles[i].CanCollide() {
			continue
		}
		for j := i + 1; j < len(s.particles); j++ {
			if !s.particles[j].CanCollide() {
				continue
			}
			if !geom.CirclesCollide(s.particles[i].HitBox, s.particles[j].HitBox) {
				continue
			}
			if r.ResolveOverlap(&s.particles[i], &s.particles[j]) > 0 {
				resolved++
			}
		}
	}
	return resolved
}

// fanOutStacked moves each collidable particle whose center equals that of a
// lower slot to just outside it, at a heading derived from its own slot
func (s *System) fanOutStacked() {
	for j := range s.particles {
		p := &s.particles[j]
		if !p.CanCollide() {
			continue
		}
		for i := 0; i < j; i++ {
			anchor := &s.particles[i]
			if !anchor.CanCollide() || anchor.Position != p.Position {
				continue
			}

			heading := float64(j) * goldenAngle
			offset := geom.Vec(math.Cos(heading), math.Sin(heading)).
				Scale(anchor.HitBox.Radius + p.HitBox.Radius + Separation)
			p.Position = anchor.Position.Add(offset)
			p.HitBox.Center = p.Position
			break
		}
	}
}
