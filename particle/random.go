package particle

import (
	"math"

	"meteorstorm/geom"
)

// Rand is the random source used for spawn counts, velocities and rotations.
// *math/rand.Rand satisfies it; tests inject a seeded one.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// RandomFloat returns a uniform value in [lo, hi)
func RandomFloat(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandomDirection returns a unit vector with a uniform random heading
func RandomDirection(rng Rand) geom.Vector2 {
	angle := rng.Float64() * 2 * math.Pi
	return geom.Vec(math.Cos(angle), math.Sin(angle))
}

// RandomCount returns a uniform integer in [lo, hi]
func RandomCount(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
