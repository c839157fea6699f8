package main

import (
	"math/rand"
	"testing"

	"meteorstorm/pilot"
	"meteorstorm/world"
)

func TestRunRespectsFrameBudget(t *testing.T) {
	w, err := world.New(world.DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}

	// Asteroids need over three seconds to fall to the ship
	r := run(w, pilot.New(pilot.BehaviorIdle), 120, 1.0/60)

	if r.Frames != 120 || r.Lost || r.Hits != 0 {
		t.Errorf("Expected 120 quiet frames, got %+v", r)
	}
	if r.Score < 1 {
		t.Errorf("Expected at least one wave in two seconds, got %d", r.Score)
	}
	if r.PeakStars == 0 {
		t.Errorf("Expected stars to be tracked")
	}
}

func TestRunStopsWhenLost(t *testing.T) {
	config := world.DefaultConfig()
	config.DamagePerHit = config.Player.Health
	w, err := world.New(config, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}
	w.Asteroids.Spawn(w.Ship.Position)

	r := run(w, pilot.New(pilot.BehaviorIdle), 1000, 1.0/60)

	if !r.Lost || r.Hits != 1 {
		t.Fatalf("Expected one fatal hit, got %+v", r)
	}
	if r.Frames >= 100 {
		t.Errorf("Expected the run to end after the hit zoom, got %d frames", r.Frames)
	}
	if r.PeakExplosions < 20 {
		t.Errorf("Expected the explosion to be tracked, got %d", r.PeakExplosions)
	}
}
