package main

import (
	"flag"
	"log"
	"math/rand"
	"runtime"
	"time"

	"meteorstorm/pilot"
	"meteorstorm/world"
)

func main() {
	configPath := flag.String("config", "", "TOML file overriding the default tuning")
	seed := flag.Int64("seed", 1, "random seed (0 uses the config seed)")
	frames := flag.Int("frames", 60*60, "maximum number of frames to simulate")
	tps := flag.Int("tps", 60, "simulated ticks per second")
	behavior := flag.String("pilot", "dodge", "autopilot behavior: idle, wander or dodge")
	flag.Parse()

	config := world.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = world.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if *tps <= 0 {
		log.Fatalf("tps must be positive, got %d", *tps)
	}

	b, err := pilot.ParseBehavior(*behavior)
	if err != nil {
		log.Fatalf("Invalid -pilot: %v", err)
	}

	w, err := world.New(config, rand.New(rand.NewSource(config.Seed)))
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}

	log.Printf("Simulating up to %d frames at %d TPS, seed %d, pilot %s, GOMAXPROCS=%d",
		*frames, *tps, config.Seed, *behavior, runtime.GOMAXPROCS(0))

	result := run(w, pilot.New(b), *frames, 1/float64(*tps))

	log.Printf("Finished after %d frames (%.1f s simulated) in %v",
		result.Frames, float64(result.Frames)/float64(*tps), result.Elapsed)
	log.Printf("Hits: %d, lost: %v, score: %d waves", result.Hits, result.Lost, result.Score)
	log.Printf("Peak particles: stars=%d asteroids=%d explosions=%d",
		result.PeakStars, result.PeakAsteroids, result.PeakExplosions)
}

// Result summarizes a headless run
type Result struct {
	Frames  int
	Hits    int
	Lost    bool
	Score   int
	Elapsed time.Duration

	PeakStars      int
	PeakAsteroids  int
	PeakExplosions int
}

// run steps the world until the ship is lost or the frame budget runs out
func run(w *world.World, p *pilot.Pilot, frames int, dt float64) Result {
	var r Result
	start := time.Now()

	for r.Frames < frames && !r.Lost {
		events := w.Step(dt, p.Steer(w, dt))
		r.Frames++

		for _, e := range events {
			switch e.Kind {
			case world.EventPlayerHit:
				r.Hits++
				log.Printf("Frame %d: hit at (%.0f, %.0f), health %d", r.Frames, e.Position.X, e.Position.Y, e.Health)
			case world.EventPlayerDied:
				r.Lost = true
			}
		}

		r.PeakStars = max(r.PeakStars, w.Stars.ActiveCount())
		r.PeakAsteroids = max(r.PeakAsteroids, w.Asteroids.ActiveCount())
		r.PeakExplosions = max(r.PeakExplosions, w.Explosions.ActiveCount())
	}

	r.Score = w.Score()
	r.Elapsed = time.Since(start)
	return r
}
