package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"meteorstorm/audio"
	"meteorstorm/particle"
	"meteorstorm/perf"
	"meteorstorm/world"
)

// Game adapts the world to ebiten's Update/Draw loop
type Game struct {
	world    *world.World
	renderer *Renderer
	camera   *Camera
	input    InputProvider
	sounds   *audio.SoundManager
	config   Config

	// pauseAlpha fades the pause overlay in and out
	pauseAlpha float64

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64
	lastUpdateTime   time.Time
	gameStartTime    time.Time

	// Performance profiling, nil when disabled
	profiler *perf.Profiler
}

// NewGame creates a game drawing randomness from rng
func NewGame(config Config, rng particle.Rand) (*Game, error) {
	w, err := world.New(config.World, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	camera := NewCamera(float64(config.World.ScreenWidth), float64(config.World.ScreenHeight))
	renderer := NewRenderer(camera, w, config.AssetsDir)
	if config.ShowHitboxes {
		renderer.ToggleHitboxes()
	}

	g := &Game{
		world:          w,
		renderer:       renderer,
		camera:         camera,
		input:          KeyboardInput{},
		sounds:         audio.NewSoundManager(config.Volume),
		config:         config,
		fps:            60.0,
		lastUpdateTime: time.Now(),
		gameStartTime:  time.Now(),
	}

	if config.ProfileDir != "" {
		g.profiler, err = perf.NewProfiler(config.ProfileDir)
		if err != nil {
			return nil, err
		}
	}

	if config.Volume > 0 {
		if err := g.sounds.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		}
	}

	return g, nil
}

// Close releases the audio device
func (g *Game) Close() {
	g.sounds.Cleanup()
}

// Update advances the game by one tick
func (g *Game) Update() error {
	switch pollCommand() {
	case CommandPause:
		if g.world.Phase() != world.PhaseLost {
			g.world.TogglePause()
			g.sounds.SetMusicPaused(g.world.Paused())
		}
	case CommandRestart:
		g.world.Restart()
		g.sounds.SetMusicPaused(false)
		log.Printf("Restarted")
	case CommandToggleHitboxes:
		g.renderer.ToggleHitboxes()
	}

	dt := 1.0 / float64(ebiten.TPS())
	events := g.world.Step(dt, world.Input{Move: g.input.Movement()})
	g.sounds.HandleEvents(events)
	for _, e := range events {
		if e.Kind == world.EventPlayerDied {
			log.Printf("Game over: survived %d waves", e.Score)
		}
	}

	if g.world.Paused() {
		g.pauseAlpha = min(g.pauseAlpha+1.0/32, 1)
	} else {
		g.pauseAlpha = max(g.pauseAlpha-1.0/32, 0)
	}

	g.updateFPS()
	return nil
}

// updateFPS measures the wall-clock frame rate every half second and captures
// a profile when it drops below the configured threshold
func (g *Game) updateFPS() {
	now := time.Now()
	g.fpsUpdateTimer += now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	g.fpsUpdateCounter++

	if g.fpsUpdateTimer < 0.5 {
		return
	}
	g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0

	// Skip the first seconds after launch while assets warm up
	if g.profiler == nil || g.fps >= g.config.SlowFPS || time.Since(g.gameStartTime) < 3*time.Second {
		return
	}

	frame := perf.SlowFrameOf(g.world, g.fps)
	if g.profiler.Capture(frame) {
		log.Printf("FPS drop detected (%s), capturing CPU profile", frame)
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.world)
	g.renderer.RenderHUD(screen, g.world, g.pauseAlpha, g.fps)
}

// Layout returns the game's logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.World.ScreenWidth, g.config.World.ScreenHeight
}
