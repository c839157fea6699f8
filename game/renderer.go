package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"meteorstorm/geom"
	"meteorstorm/particle"
	"meteorstorm/world"
)

// Camera scales the scene around an origin point. With Zoom 1 it is the identity.
type Camera struct {
	X, Y   float64 // Zoom origin in world coordinates
	Zoom   float64
	Width  float64 // Viewport width
	Height float64 // Viewport height
}

// NewCamera creates an identity camera
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Zoom:   1.0,
		Width:  width,
		Height: height,
	}
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + c.X
	sy := (wy-c.Y)*c.Zoom + c.Y
	return sx, sy
}

// Apply appends the camera transform to geo
func (c *Camera) Apply(geo *ebiten.GeoM) {
	geo.Translate(-c.X, -c.Y)
	geo.Scale(c.Zoom, c.Zoom)
	geo.Translate(c.X, c.Y)
}

// Renderer draws the world
type Renderer struct {
	camera       *Camera
	textures     map[string]*ebiten.Image
	face         *text.GoXFace
	showHitboxes bool
}

// NewRenderer creates a renderer with textures for every particle system in w
func NewRenderer(camera *Camera, w *world.World, assetsDir string) *Renderer {
	return &Renderer{
		camera: camera,
		textures: loadTextures(assetsDir,
			w.Stars.Settings().Texture,
			w.Asteroids.Settings().Texture,
			w.Explosions.Settings().Texture,
			shipTexture,
		),
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// ToggleHitboxes switches the collision overlay
func (r *Renderer) ToggleHitboxes() {
	r.showHitboxes = !r.showHitboxes
}

// Render draws the scene. Stars, asteroids and the ship follow the hit zoom;
// explosions are drawn unzoomed on top.
func (r *Renderer) Render(screen *ebiten.Image, w *world.World) {
	origin, scale := w.Zoom()
	r.camera.X, r.camera.Y = origin.X, origin.Y
	r.camera.Zoom = scale

	r.renderSystem(screen, w.Stars.System, true)
	r.renderSystem(screen, w.Asteroids.System, true)
	r.renderShip(screen, w)
	r.renderSystem(screen, w.Explosions.System, false)

	if r.showHitboxes {
		r.renderHitboxes(screen, w)
	}
}

// renderSystem draws every visible particle of a system with its texture
func (r *Renderer) renderSystem(screen *ebiten.Image, s *particle.System, zoomed bool) {
	settings := s.Settings()
	img, ok := r.textures[settings.Texture]
	if !ok {
		return
	}

	bounds := img.Bounds()
	halfW, halfH := float64(bounds.Dx())/2, float64(bounds.Dy())/2

	s.Visible(func(p *particle.Particle) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-halfW, -halfH)
		op.GeoM.Scale(p.Scale, p.Scale)
		op.GeoM.Rotate(p.Rotation)
		op.GeoM.Translate(p.Position.X, p.Position.Y)
		if zoomed {
			r.camera.Apply(&op.GeoM)
		}
		op.ColorScale.ScaleWithColor(p.Color)
		if settings.Blend == particle.BlendAdditive {
			op.Blend = ebiten.BlendLighter
		}
		screen.DrawImage(img, op)
	})
}

func (r *Renderer) renderShip(screen *ebiten.Image, w *world.World) {
	img, ok := r.textures[shipTexture]
	if !ok {
		return
	}

	ship := w.Ship
	cfg := ship.Config()
	bounds := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(2*cfg.HalfWidth/float64(bounds.Dx()), 2*cfg.HalfHeight/float64(bounds.Dy()))
	op.GeoM.Rotate(ship.Angle)
	op.GeoM.Translate(ship.Position.X, ship.Position.Y)
	r.camera.Apply(&op.GeoM)
	if ship.Dead {
		op.ColorScale.ScaleAlpha(0.4)
	}
	screen.DrawImage(img, op)
}

// renderHitboxes outlines the ship triangle and asteroid circles
func (r *Renderer) renderHitboxes(screen *ebiten.Image, w *world.World) {
	green := color.RGBA{0, 255, 0, 255}
	red := color.RGBA{255, 0, 0, 255}

	hb := w.Ship.Hitbox()
	r.strokeEdge(screen, hb.Point1, hb.Point2, green)
	r.strokeEdge(screen, hb.Point2, hb.Point3, green)
	r.strokeEdge(screen, hb.Point3, hb.Point1, green)

	w.Asteroids.Visible(func(p *particle.Particle) {
		if !p.CanCollide() {
			return
		}
		sx, sy := r.camera.WorldToScreen(p.HitBox.Center.X, p.HitBox.Center.Y)
		radius := p.HitBox.Radius * r.camera.Zoom
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), 1, red, true)
	})

	msg := fmt.Sprintf("stars %d  asteroids %d  explosions %d",
		w.Stars.ActiveCount(), w.Asteroids.ActiveCount(), w.Explosions.ActiveCount())
	ebitenutil.DebugPrintAt(screen, msg, 10, int(r.camera.Height)-20)
}

func (r *Renderer) strokeEdge(screen *ebiten.Image, a, b geom.Vector2, clr color.Color) {
	ax, ay := r.camera.WorldToScreen(a.X, a.Y)
	bx, by := r.camera.WorldToScreen(b.X, b.Y)
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, clr, true)
}

// RenderHUD draws health, score and the pause or loss overlays
func (r *Renderer) RenderHUD(screen *ebiten.Image, w *world.World, pauseAlpha, fps float64) {
	r.drawText(screen, fmt.Sprintf("Health: %d", max(0, w.Ship.Health)), 10, 10, color.White)
	r.drawText(screen, fmt.Sprintf("Waves: %d", w.Score()), 10, 28, color.White)
	r.drawText(screen, fmt.Sprintf("FPS: %.0f", fps), r.camera.Width-80, 10, color.Gray{Y: 160})

	if pauseAlpha > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(r.camera.Width), float32(r.camera.Height),
			color.NRGBA{0, 0, 0, uint8(160 * pauseAlpha)}, false)
	}
	if w.Paused() {
		r.drawCentered(screen, "PAUSED", r.camera.Height/2-10, color.White)
		r.drawCentered(screen, "Esc to resume, R to restart", r.camera.Height/2+10, color.Gray{Y: 180})
		return
	}

	if w.Phase() == world.PhaseLost {
		r.drawCentered(screen, "YOU LOSE", r.camera.Height/2-20, color.RGBA{255, 80, 80, 255})
		r.drawCentered(screen, fmt.Sprintf("You survived %d waves", w.Score()), r.camera.Height/2, color.White)
		r.drawCentered(screen, "Press R to play again", r.camera.Height/2+20, color.Gray{Y: 180})
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}

func (r *Renderer) drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	width, _ := text.Measure(s, r.face, 0)
	r.drawText(screen, s, (r.camera.Width-width)/2, y, clr)
}
