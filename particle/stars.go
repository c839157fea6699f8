package particle

import "meteorstorm/geom"

// DefaultStarSettings returns the starfield constants
func DefaultStarSettings() Settings {
	return Settings{
		Capacity:  5000,
		MinSpawn:  10,
		MaxSpawn:  20,
		Texture:   "particle",
		Blend:     BlendAlpha,
		DrawOrder: AlphaBlendDrawOrder,
	}
}

type starBehavior struct {
	settings Settings
}

func (b starBehavior) Settings() Settings {
	return b.settings
}

func (b starBehavior) InitializeParticle(p *Particle, where geom.Vector2, rng Rand) bool {
	spawn := DefaultSpawn(where, geom.UnitY.Scale(140), geom.Zero)
	spawn.Scale = RandomFloat(rng, 0.1, 0.4)
	spawn.Lifetime = 4
	p.Initialize(spawn)
	return true
}

func (starBehavior) UpdateParticle(*Particle, float64) {}

// Starfield is the scrolling background. Stars never collide.
type Starfield struct {
	*System
	emitter *Emitter
}

// NewStarfield creates a starfield emitting from source every frame
func NewStarfield(settings Settings, source geom.Rect, rng Rand) (*Starfield, error) {
	system, err := NewSystem(starBehavior{settings: settings}, rng)
	if err != nil {
		return nil, err
	}
	return &Starfield{
		System:  system,
		emitter: NewEmitter(system, source),
	}, nil
}

// Update advances the stars and emits new ones
func (s *Starfield) Update(dt float64) {
	s.System.Update(dt)
	s.emitter.Update(dt)
}

// SetActive turns star emission on or off
func (s *Starfield) SetActive(active bool) {
	s.emitter.SetActive(active)
}

// Reset clears the starfield
func (s *Starfield) Reset() {
	s.System.Reset()
	s.emitter.Reset()
}
