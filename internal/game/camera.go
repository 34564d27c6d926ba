package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"driftshore/internal/render"
)

// FreeCamera is a keyboard-panned world camera. It tracks the view
// center in world pixels; the viewport rectangle derives from it plus
// the screen size at draw time.
type FreeCamera struct {
	X, Y  float64
	Speed float64 // world pixels per tick
}

func NewFreeCamera(speed float64) *FreeCamera {
	if speed <= 0 {
		speed = 6
	}
	return &FreeCamera{Speed: speed}
}

// Move pans the camera by the given step, scaled by its speed.
func (c *FreeCamera) Move(dx, dy float64) {
	c.X += dx * c.Speed
	c.Y += dy * c.Speed
}

// SetPosition recenters the camera.
func (c *FreeCamera) SetPosition(x, y float64) {
	c.X = x
	c.Y = y
}

// GetPosition returns the camera's current center.
func (c *FreeCamera) GetPosition() (float64, float64) {
	return c.X, c.Y
}

// HandleInput applies one tick of keyboard panning. Holding Shift pans
// at four times the base speed.
func (c *FreeCamera) HandleInput() {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += 1
	}
	if dx == 0 && dy == 0 {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		dx *= 4
		dy *= 4
	}
	c.Move(dx, dy)
}

// Viewport builds the frame camera for the given screen size, centered
// on the free camera's position.
func (c *FreeCamera) Viewport(screenWidth, screenHeight int) render.Camera {
	return render.Camera{
		X:      c.X,
		Y:      c.Y,
		Width:  float64(screenWidth),
		Height: float64(screenHeight),
	}
}
