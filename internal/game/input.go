package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// keyTracker reports rising edges for the debug toggle keys.
type keyTracker struct {
	prev map[ebiten.Key]bool
}

func newKeyTracker() *keyTracker {
	return &keyTracker{prev: make(map[ebiten.Key]bool)}
}

// JustPressed returns true on the tick the key transitions to pressed.
func (k *keyTracker) JustPressed(key ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(key)
	edge := pressed && !k.prev[key]
	k.prev[key] = pressed
	return edge
}

// handleInput processes one tick of keyboard state: camera panning plus
// the overlay toggles.
func (g *Game) handleInput() {
	g.camera.HandleInput()

	if g.keys.JustPressed(ebiten.KeyF1) {
		g.showHUD = !g.showHUD
	}
	if g.keys.JustPressed(ebiten.KeyF2) {
		g.interiorDebug = !g.interiorDebug
	}
	if g.keys.JustPressed(ebiten.KeyF3) {
		g.showGrid = !g.showGrid
	}
}
