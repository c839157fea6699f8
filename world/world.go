package world

import (
	"fmt"

	"meteorstorm/geom"
	"meteorstorm/particle"
	"meteorstorm/player"
)

// Phase is the gameplay state machine position
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseZooming
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseZooming:
		return "zooming"
	case PhaseLost:
		return "lost"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Input is the player's intent for one frame
type Input struct {
	// Move is the steering direction; its length is ignored
	Move geom.Vector2
}

// EventKind identifies what happened to the player during a step
type EventKind int

const (
	// EventPlayerHit fires when an asteroid strikes the ship
	EventPlayerHit EventKind = iota
	// EventPlayerDied fires once the hit zoom on the killing blow has finished
	EventPlayerDied
)

// Event is a notable gameplay occurrence for the presentation layer
type Event struct {
	Kind     EventKind
	Position geom.Vector2
	Health   int
	Score    int
}

// World owns every particle system and the ship, and steps them in order
type World struct {
	Stars      *particle.Starfield
	Asteroids  *particle.AsteroidField
	Explosions *particle.Explosions
	Ship       *player.Ship

	config Config
	phase  Phase
	paused bool

	zoomTimer  float64
	zoomScale  float64
	zoomOrigin geom.Vector2

	events []Event
}

// New builds a world from a validated config, drawing randomness from rng
func New(config Config, rng particle.Rand) (*World, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, particle.ErrNilRand
	}

	source := config.SpawnRegion.Rect()

	stars, err := particle.NewStarfield(config.StarSettings(), source, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create starfield: %w", err)
	}
	asteroids, err := particle.NewAsteroidField(config.AsteroidSettings(), source, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create asteroid field: %w", err)
	}
	explosions, err := particle.NewExplosions(config.ExplosionSettings(), rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create explosions: %w", err)
	}

	return &World{
		Stars:      stars,
		Asteroids:  asteroids,
		Explosions: explosions,
		Ship:       player.NewShip(config.ShipConfig()),
		config:     config,
		zoomScale:  1,
	}, nil
}

// Step advances the world by dt seconds. The returned events are only valid
// until the next call.
func (w *World) Step(dt float64, in Input) []Event {
	w.events = w.events[:0]
	if w.paused {
		return w.events
	}

	switch w.phase {
	case PhasePlaying:
		w.stepPlaying(dt, in)
	case PhaseZooming:
		w.stepZoom(dt)
	case PhaseLost:
	}
	return w.events
}

func (w *World) stepPlaying(dt float64, in Input) {
	w.Ship.Move(in.Move, dt)

	w.Stars.Update(dt)
	w.Asteroids.Update(dt)
	w.Explosions.Update(dt)

	hit, ok := w.Asteroids.CheckPlayerCollision(w.Ship.Hitbox())
	if !ok {
		return
	}

	w.Ship.TakeDamage(w.config.DamagePerHit)
	w.Explosions.Place(hit.Position)
	w.events = append(w.events, Event{
		Kind:     EventPlayerHit,
		Position: hit.Position,
		Health:   w.Ship.Health,
	})

	w.phase = PhaseZooming
	w.zoomTimer = 0
	w.zoomScale = 1
	w.zoomOrigin = hit.Position
}

// stepZoom holds everything but the explosions still while the camera closes in
func (w *World) stepZoom(dt float64) {
	w.zoomTimer += dt
	w.Explosions.Update(dt)

	progress := 1.0
	if w.config.ZoomDuration > 0 {
		progress = min(1, w.zoomTimer/w.config.ZoomDuration)
	}
	w.zoomScale = geom.Lerp(1, w.config.MaxZoom, progress)

	if progress < 1 {
		return
	}

	w.zoomTimer = 0
	w.zoomScale = 1
	if !w.Ship.Dead {
		w.phase = PhasePlaying
		return
	}

	w.phase = PhaseLost
	w.Asteroids.SetActive(false)
	w.events = append(w.events, Event{
		Kind:     EventPlayerDied,
		Position: w.Ship.Position,
		Score:    w.Score(),
	})
}

// Restart resets every system and the ship to their starting state
func (w *World) Restart() {
	w.Stars.Reset()
	w.Asteroids.Reset()
	w.Explosions.Reset()
	w.Ship.Reset()

	w.phase = PhasePlaying
	w.paused = false
	w.zoomTimer = 0
	w.zoomScale = 1
	w.zoomOrigin = geom.Zero
	w.events = w.events[:0]
}

// TogglePause freezes or resumes the simulation. Returns the new paused state.
func (w *World) TogglePause() bool {
	w.paused = !w.paused
	return w.paused
}

// Paused reports whether stepping is suspended
func (w *World) Paused() bool {
	return w.paused
}

// Phase returns the current game phase
func (w *World) Phase() Phase {
	return w.phase
}

// Score is the number of asteroid waves survived
func (w *World) Score() int {
	return w.Asteroids.Waves()
}

// Zoom returns the camera zoom origin and scale; the scale is 1 outside a hit zoom
func (w *World) Zoom() (geom.Vector2, float64) {
	return w.zoomOrigin, w.zoomScale
}

// Config returns the configuration the world was created with
func (w *World) Config() Config {
	return w.config
}
