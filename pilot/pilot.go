// Package pilot steers the ship without a human at the keyboard, for headless
// runs and attract-mode demos.
package pilot

import (
	"fmt"
	"math"

	"meteorstorm/geom"
	"meteorstorm/particle"
	"meteorstorm/world"
)

// Behavior selects a steering pattern
type Behavior int

const (
	BehaviorIdle Behavior = iota
	BehaviorWander
	BehaviorDodge
)

// ParseBehavior maps a flag value to a behavior
func ParseBehavior(name string) (Behavior, error) {
	switch name {
	case "idle":
		return BehaviorIdle, nil
	case "wander":
		return BehaviorWander, nil
	case "dodge":
		return BehaviorDodge, nil
	}
	return 0, fmt.Errorf("unknown pilot behavior %q", name)
}

const (
	// lookahead is how far above the ship asteroids are treated as threats
	lookahead = 200.0
	// lane pads the ship's half width when deciding whether a threat is in line
	lane = 10.0
	// homeTolerance stops the return-to-start drift from jittering
	homeTolerance = 2.0
)

// Pilot produces one steering input per frame
type Pilot struct {
	Behavior    Behavior
	patternTime float64
}

// New creates a pilot with the given behavior
func New(b Behavior) *Pilot {
	return &Pilot{Behavior: b}
}

// Steer returns the input for the next frame
func (p *Pilot) Steer(w *world.World, dt float64) world.Input {
	switch p.Behavior {
	case BehaviorWander:
		// Slow circle around the current position
		p.patternTime += dt
		return world.Input{Move: geom.Vec(math.Cos(p.patternTime), math.Sin(p.patternTime))}
	case BehaviorDodge:
		return world.Input{Move: dodge(w)}
	}
	return world.Input{}
}

// dodge sidesteps the nearest asteroid falling toward the ship, and drifts
// back to the start column when the sky above is clear
func dodge(w *world.World) geom.Vector2 {
	ship := w.Ship
	cfg := ship.Config()

	nearest := math.Inf(1)
	var threat *particle.Particle
	w.Asteroids.Visible(func(a *particle.Particle) {
		if !a.CanCollide() {
			return
		}
		dy := ship.Position.Y - a.Position.Y
		dx := math.Abs(a.Position.X - ship.Position.X)
		if dy < -cfg.HalfHeight || dy > lookahead || dx > a.HitBox.Radius+cfg.HalfWidth+lane {
			return
		}
		if dy < nearest {
			nearest = dy
			threat = a
		}
	})

	if threat != nil {
		if threat.Position.X > ship.Position.X {
			return geom.Vec(-1, 0)
		}
		return geom.Vec(1, 0)
	}

	home := cfg.Start.X - ship.Position.X
	if math.Abs(home) <= homeTolerance {
		return geom.Zero
	}
	return geom.Vec(math.Copysign(1, home), 0)
}
