package game

import (
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const shipTexture = "playerShip3_blue"

// loadTextures loads each named sprite from dir, falling back to a generated
// placeholder when the file is missing or dir is empty
func loadTextures(dir string, names ...string) map[string]*ebiten.Image {
	textures := make(map[string]*ebiten.Image, len(names))
	for _, name := range names {
		if dir != "" {
			path := filepath.Join(dir, name+".png")
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err == nil {
				textures[name] = img
				continue
			}
			log.Printf("Using placeholder for %s: %v", name, err)
		}
		if img := placeholderTexture(name); img != nil {
			textures[name] = img
		}
	}
	return textures
}

// placeholderTexture draws a stand-in sprite with the dimensions of the real one.
// Returns nil for names without a placeholder.
func placeholderTexture(name string) *ebiten.Image {
	switch name {
	case "meteorBrown_big3":
		img := ebiten.NewImage(89, 82)
		vector.DrawFilledCircle(img, 44.5, 41, 40, color.RGBA{120, 90, 60, 255}, true)
		vector.DrawFilledCircle(img, 30, 30, 8, color.RGBA{90, 65, 45, 255}, true)
		vector.DrawFilledCircle(img, 58, 52, 11, color.RGBA{90, 65, 45, 255}, true)
		return img

	case "explosion":
		img := ebiten.NewImage(64, 64)
		vector.DrawFilledCircle(img, 32, 32, 30, color.RGBA{160, 40, 0, 255}, true)
		vector.DrawFilledCircle(img, 32, 32, 20, color.RGBA{255, 120, 0, 255}, true)
		vector.DrawFilledCircle(img, 32, 32, 10, color.RGBA{255, 230, 120, 255}, true)
		return img

	case "particle":
		img := ebiten.NewImage(16, 16)
		vector.DrawFilledCircle(img, 8, 8, 7, color.White, true)
		return img

	case shipTexture:
		img := ebiten.NewImage(98, 75)
		blue := color.RGBA{100, 150, 255, 255}
		vector.StrokeLine(img, 49, 2, 2, 73, 4, blue, true)
		vector.StrokeLine(img, 2, 73, 96, 73, 4, blue, true)
		vector.StrokeLine(img, 96, 73, 49, 2, 4, blue, true)
		vector.DrawFilledCircle(img, 49, 45, 10, blue, true)
		return img
	}
	return nil
}
