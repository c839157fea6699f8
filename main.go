package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"meteorstorm/game"
	"meteorstorm/world"
)

func main() {
	configPath := flag.String("config", "", "TOML file overriding the default tuning")
	seed := flag.Int64("seed", 0, "random seed (0 uses the config seed, then the clock)")
	assets := flag.String("assets", "assets", "directory with PNG sprites")
	volume := flag.Float64("volume", 0.5, "sound effect volume, 0 mutes")
	profileDir := flag.String("profile-dir", "", "capture CPU profiles here when the frame rate drops")
	hitboxes := flag.Bool("hitboxes", false, "draw collision shapes")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		wc, err := world.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config.World = wc
	}
	config.AssetsDir = *assets
	config.Volume = *volume
	config.ProfileDir = *profileDir
	config.ShowHitboxes = *hitboxes

	s := *seed
	if s == 0 {
		s = config.World.Seed
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("Starting with seed %d", s)

	g, err := game.NewGame(config, rand.New(rand.NewSource(s)))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(config.World.ScreenWidth, config.World.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
