package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"meteorstorm/particle"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meteorstorm.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
seed = 42
damage_per_hit = 50

[asteroids]
max_spawn = 12

[player]
health = 500
clamp_to_screen = true
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Seed != 42 || config.DamagePerHit != 50 {
		t.Errorf("Expected seed 42 and damage 50, got %d and %d", config.Seed, config.DamagePerHit)
	}
	if config.Asteroids.MaxSpawn != 12 || config.Asteroids.MinSpawn != 5 {
		t.Errorf("Expected spawn range [5, 12], got [%d, %d]", config.Asteroids.MinSpawn, config.Asteroids.MaxSpawn)
	}
	if config.Player.Health != 500 || config.Player.Speed != 75 {
		t.Errorf("Expected health 500 with default speed, got %d and %v", config.Player.Health, config.Player.Speed)
	}
	if config.ScreenWidth != 800 || config.ZoomDuration != 0.5 {
		t.Errorf("Expected untouched keys to keep their defaults")
	}

	ship := config.ShipConfig()
	if ship.Bounds.Width != 800 || ship.Bounds.Height != 600 {
		t.Errorf("Expected screen bounds on the ship, got %+v", ship.Bounds)
	}
	if got := config.AsteroidSettings(); got.Texture != "meteorBrown_big3" || got.MaxSpawn != 12 {
		t.Errorf("Expected overrides applied over asteroid defaults, got %+v", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"Unknown key", "bogus = 1\n", ErrInvalidConfig},
		{"Negative damage", "damage_per_hit = -1\n", ErrInvalidConfig},
		{"Bad spawn range", "[stars]\nmin_spawn = 30\n", particle.ErrInvalidSpawnRange},
		{"No explosions", "max_explosions = 0\n", particle.ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "seed = \n")); err == nil {
		t.Errorf("Expected an error for malformed TOML")
	}
}
