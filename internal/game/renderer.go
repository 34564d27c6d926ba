package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"driftshore/internal/entity"
	"driftshore/internal/render"
	"driftshore/internal/world"
)

// categoryColors gives each entity category a flat placeholder color.
// Anything not listed falls back to magenta, which makes unmapped
// categories obvious on screen.
var categoryColors = map[entity.Category]color.RGBA{
	entity.CategoryPlayer:       {240, 220, 120, 255},
	entity.CategoryWildAnimal:   {180, 120, 70, 255},
	entity.CategoryDrone:        {140, 160, 180, 255},
	entity.CategoryTree:         {40, 110, 40, 255},
	entity.CategoryStone:        {130, 130, 130, 255},
	entity.CategoryHemp:         {90, 150, 60, 255},
	entity.CategoryMushroom:     {200, 170, 140, 255},
	entity.CategoryCorn:         {220, 200, 70, 255},
	entity.CategoryPumpkin:      {220, 130, 40, 255},
	entity.CategoryBasaltColumn: {70, 70, 80, 255},
	entity.CategoryFumarole:     {120, 90, 90, 255},
	entity.CategoryTidePoolRock: {100, 120, 130, 255},
	entity.CategoryFoundation:   {110, 95, 75, 255},
	entity.CategoryWall:         {150, 130, 100, 255},
	entity.CategoryDoor:         {170, 120, 60, 255},
	entity.CategoryShelter:      {160, 140, 110, 255},
	entity.CategoryCampfire:     {230, 120, 40, 255},
	entity.CategoryFurnace:      {90, 80, 80, 255},
	entity.CategoryBarbecue:     {120, 90, 70, 255},
	entity.CategoryStorageBox:   {140, 110, 70, 255},
	entity.CategoryDroppedItem:  {200, 200, 220, 255},
	entity.CategoryLamppost:     {210, 190, 120, 255},
	entity.CategoryBeacon:       {90, 170, 220, 255},
	entity.CategoryFishTrap:     {80, 110, 120, 255},
	entity.CategoryGrassDecal:   {60, 130, 50, 255},
}

var fallbackColor = color.RGBA{255, 0, 255, 255}

func colorFor(cat entity.Category) color.RGBA {
	if c, ok := categoryColors[cat]; ok {
		return c
	}
	return fallbackColor
}

// drawTerrain paints the visible tile rect from the cache, one flat
// rect per tile, colored from the tile registry.
func (g *Game) drawTerrain(screen *ebiten.Image, cam render.Camera, tiles []world.VisibleTile) {
	size := g.cfg.GetTileSize()
	ox, oy := cam.Origin()
	for _, tile := range tiles {
		rgb := world.TileColor(tile.Type)
		// Variants darken slightly so chunk seams stay visible in debug.
		shade := 1.0 - float64(tile.Variant%4)*0.03
		c := color.RGBA{
			R: uint8(float64(rgb[0]) * shade),
			G: uint8(float64(rgb[1]) * shade),
			B: uint8(float64(rgb[2]) * shade),
			A: 255,
		}
		sx := float32(float64(tile.TileX)*size - ox)
		sy := float32(float64(tile.TileY)*size - oy)
		vector.DrawFilledRect(screen, sx, sy, float32(size), float32(size), c, false)

		if g.showGrid {
			vector.StrokeRect(screen, sx, sy, float32(size), float32(size), 1, color.RGBA{0, 0, 0, 40}, false)
		}
	}
}

// drawItems paints the sorted frame output back to front. Placeholder
// rendering: each item is a rect anchored at its position, split halves
// drawn as the matching half of the body, submerged actors dimmed.
func (g *Game) drawItems(screen *ebiten.Image, cam render.Camera, items []render.PaintItem) {
	const bodyW, bodyH = 24.0, 48.0

	ox, oy := cam.Origin()
	for i := range items {
		item := &items[i]
		c := colorFor(item.Category)
		if item.Submerged {
			c.A = 110
		}

		x := float32(item.X - ox - bodyW/2)
		y := float32(item.Y - oy - bodyH/2)
		w, h := float32(bodyW), float32(bodyH)

		switch item.Part {
		case render.PartBottom:
			y += h / 2
			h /= 2
		case render.PartTop:
			h /= 2
		}
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	}
}

// drawInteriors tints the cells of enclosed clusters. Open clusters get
// a faint outline only, so coverage gaps are easy to spot.
func (g *Game) drawInteriors(screen *ebiten.Image, cam render.Camera) {
	cell := float64(g.cfg.Building.CellSize)
	enclosedTint := color.RGBA{40, 40, 90, 90}
	openTint := color.RGBA{120, 40, 40, 50}

	ox, oy := cam.Origin()
	for _, cluster := range g.clusters.Clusters() {
		tint := openTint
		if cluster.Enclosed {
			tint = enclosedTint
		}
		for _, ck := range cluster.Cells {
			sx := float32(float64(ck.X)*cell - ox)
			sy := float32(float64(ck.Y)*cell - oy)
			vector.DrawFilledRect(screen, sx, sy, float32(cell), float32(cell), tint, false)
		}
	}
}
