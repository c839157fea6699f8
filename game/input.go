package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"meteorstorm/geom"
)

// InputProvider supplies the player's steering for a frame
type InputProvider interface {
	// Movement returns the desired direction; length is ignored
	Movement() geom.Vector2
}

// KeyboardInput steers with the arrow keys or WASD
type KeyboardInput struct{}

// Movement returns movement based on arrow keys or WASD
func (KeyboardInput) Movement() geom.Vector2 {
	var move geom.Vector2

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		move.Y++
	}

	return move
}

// Command is a one-shot key action
type Command int

const (
	CommandNone Command = iota
	CommandPause
	CommandRestart
	CommandToggleHitboxes
)

// pollCommand returns the command whose key went down this tick
func pollCommand() Command {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyP):
		return CommandPause
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return CommandRestart
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		return CommandToggleHitboxes
	}
	return CommandNone
}
