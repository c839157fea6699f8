package game

import "meteorstorm/world"

// Config holds the presentation settings around the simulation config
type Config struct {
	// World is the simulation configuration
	World world.Config

	// Title is the window title
	Title string

	// AssetsDir holds optional PNG sprites named after particle textures;
	// missing sprites are replaced by generated placeholders
	AssetsDir string

	// Volume is the linear sound effect volume, 0 mutes
	Volume float64

	// ProfileDir receives CPU profiles and traces captured on slow frames;
	// empty disables capture
	ProfileDir string

	// SlowFPS is the frame rate below which a profile is captured
	SlowFPS float64

	// ShowHitboxes draws collision shapes on top of the sprites
	ShowHitboxes bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		World:   world.DefaultConfig(),
		Title:   "Meteor Storm",
		Volume:  0.5,
		SlowFPS: 45,
	}
}
