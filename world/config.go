package world

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"meteorstorm/geom"
	"meteorstorm/particle"
	"meteorstorm/player"
)

var ErrInvalidConfig = errors.New("world: invalid config")

// SystemConfig overrides the tunable part of a particle system's settings
type SystemConfig struct {
	Capacity      int     `toml:"capacity"`
	MinSpawn      int     `toml:"min_spawn"`
	MaxSpawn      int     `toml:"max_spawn"`
	SpawnInterval float64 `toml:"spawn_interval"`
}

// apply copies the overrides onto base, keeping texture and blend metadata
func (c SystemConfig) apply(base particle.Settings) particle.Settings {
	base.Capacity = c.Capacity
	base.MinSpawn = c.MinSpawn
	base.MaxSpawn = c.MaxSpawn
	base.SpawnInterval = c.SpawnInterval
	return base
}

func systemConfigFrom(s particle.Settings) SystemConfig {
	return SystemConfig{
		Capacity:      s.Capacity,
		MinSpawn:      s.MinSpawn,
		MaxSpawn:      s.MaxSpawn,
		SpawnInterval: s.SpawnInterval,
	}
}

// RegionConfig is a rectangle in screen pixels
type RegionConfig struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Rect converts the region to geometry
func (r RegionConfig) Rect() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// PlayerConfig holds the ship tuning exposed to config files
type PlayerConfig struct {
	StartX     float64 `toml:"start_x"`
	StartY     float64 `toml:"start_y"`
	Health     int     `toml:"health"`
	Speed      float64 `toml:"speed"`
	HalfWidth  float64 `toml:"half_width"`
	HalfHeight float64 `toml:"half_height"`
	// ClampToScreen keeps the ship on screen
	ClampToScreen bool `toml:"clamp_to_screen"`
}

// Config holds the simulation configuration
type Config struct {
	// ScreenWidth is the logical screen width in pixels
	ScreenWidth int `toml:"screen_width"`

	// ScreenHeight is the logical screen height in pixels
	ScreenHeight int `toml:"screen_height"`

	// Seed feeds the random source; 0 lets the runner pick one
	Seed int64 `toml:"seed"`

	// DamagePerHit is subtracted from the ship's health on each asteroid strike
	DamagePerHit int `toml:"damage_per_hit"`

	// ZoomDuration is how long the simulation pauses on a hit, in seconds
	ZoomDuration float64 `toml:"zoom_duration"`

	// MaxZoom is the zoom scale reached at the end of the hit zoom
	MaxZoom float64 `toml:"max_zoom"`

	// MaxExplosions sizes the explosion pool
	MaxExplosions int `toml:"max_explosions"`

	// SpawnRegion is where stars and asteroids enter the screen
	SpawnRegion RegionConfig `toml:"spawn_region"`

	Asteroids SystemConfig `toml:"asteroids"`
	Stars     SystemConfig `toml:"stars"`
	Player    PlayerConfig `toml:"player"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	ship := player.DefaultConfig()
	return Config{
		ScreenWidth:   800,
		ScreenHeight:  600,
		DamagePerHit:  100,
		ZoomDuration:  0.5,
		MaxZoom:       2.0,
		MaxExplosions: 20,
		SpawnRegion:   RegionConfig{X: 0, Y: -20, Width: 800, Height: 10},
		Asteroids:     systemConfigFrom(particle.DefaultAsteroidSettings()),
		Stars:         systemConfigFrom(particle.DefaultStarSettings()),
		Player: PlayerConfig{
			StartX:     ship.Start.X,
			StartY:     ship.Start.Y,
			Health:     ship.Health,
			Speed:      ship.Speed,
			HalfWidth:  ship.HalfWidth,
			HalfHeight: ship.HalfHeight,
		},
	}
}

// LoadConfig reads a TOML file over the defaults. Keys missing from the file
// keep their default values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown keys %v in %s", ErrInvalidConfig, undecoded, path)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.DamagePerHit < 0 {
		return fmt.Errorf("%w: negative damage per hit %d", ErrInvalidConfig, c.DamagePerHit)
	}
	if c.ZoomDuration < 0 || c.MaxZoom <= 0 {
		return fmt.Errorf("%w: zoom duration %v, max zoom %v", ErrInvalidConfig, c.ZoomDuration, c.MaxZoom)
	}
	if c.Player.Health <= 0 || c.Player.Speed < 0 {
		return fmt.Errorf("%w: player health %d, speed %v", ErrInvalidConfig, c.Player.Health, c.Player.Speed)
	}
	if err := c.AsteroidSettings().Validate(); err != nil {
		return fmt.Errorf("asteroids: %w", err)
	}
	if err := c.StarSettings().Validate(); err != nil {
		return fmt.Errorf("stars: %w", err)
	}
	if err := c.ExplosionSettings().Validate(); err != nil {
		return fmt.Errorf("explosions: %w", err)
	}
	return nil
}

// AsteroidSettings returns the asteroid system settings with overrides applied
func (c Config) AsteroidSettings() particle.Settings {
	return c.Asteroids.apply(particle.DefaultAsteroidSettings())
}

// StarSettings returns the starfield settings with overrides applied
func (c Config) StarSettings() particle.Settings {
	return c.Stars.apply(particle.DefaultStarSettings())
}

// ExplosionSettings returns the explosion pool settings
func (c Config) ExplosionSettings() particle.Settings {
	return particle.DefaultExplosionSettings(c.MaxExplosions)
}

// ShipConfig converts the player section to ship configuration
func (c Config) ShipConfig() player.Config {
	ship := player.Config{
		Start:      geom.Vec(c.Player.StartX, c.Player.StartY),
		Health:     c.Player.Health,
		Speed:      c.Player.Speed,
		HalfWidth:  c.Player.HalfWidth,
		HalfHeight: c.Player.HalfHeight,
	}
	if c.Player.ClampToScreen {
		ship.Bounds = geom.Rect{Width: float64(c.ScreenWidth), Height: float64(c.ScreenHeight)}
	}
	return ship
}
