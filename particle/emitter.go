package particle

import "meteorstorm/geom"

// Emitter spawns into a system from a source region on a fixed cadence
type Emitter struct {
	system   *System
	source   geom.Rect
	interval float64
	timer    float64
	active   bool
	waves    int
}

// NewEmitter creates an active emitter using the system's spawn interval
func NewEmitter(system *System, source geom.Rect) *Emitter {
	return &Emitter{
		system:   system,
		source:   source,
		interval: system.Settings().SpawnInterval,
		active:   true,
	}
}

// Update advances the spawn timer and emits a wave when it elapses.
// With a zero interval a wave is emitted every call. Returns true when a wave was emitted.
func (e *Emitter) Update(dt float64) bool {
	if !e.active {
		return false
	}

	e.timer += dt
	if e.timer < e.interval {
		return false
	}

	e.system.SpawnInRegion(e.source)
	e.timer = 0
	e.waves++
	return true
}

// SetActive turns emission on or off; existing particles keep moving
func (e *Emitter) SetActive(active bool) {
	e.active = active
	if !active {
		e.timer = 0
	}
}

// IsActive reports whether the emitter is emitting
func (e *Emitter) IsActive() bool {
	return e.active
}

// Waves returns how many waves have been emitted since the last reset
func (e *Emitter) Waves() int {
	return e.waves
}

// Source returns the emission region
func (e *Emitter) Source() geom.Rect {
	return e.source
}

// Reset clears the timer and wave count
func (e *Emitter) Reset() {
	e.timer = 0
	e.waves = 0
	e.active = true
}
