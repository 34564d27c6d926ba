package render

import "driftshore/internal/entity"

// EntitySplitter decides how an actor's silhouette is represented for a
// frame: one item when fully dry or fully submerged, two independently
// keyed halves when swimming at the surface.
type EntitySplitter struct {
	topOffset float64
}

// NewEntitySplitter creates a splitter whose top half sorts topOffset
// above the base key.
func NewEntitySplitter(topOffset float64) *EntitySplitter {
	return &EntitySplitter{topOffset: topOffset}
}

// Emit appends the paint items for one actor to dst and returns the
// extended slice. baseKey is the actor's ordinary depth key; onWater is
// the terrain-resolved submersion fact for this frame.
//
// Both halves of a swimmer carry the same position snapshot. The halves
// are keyed, not positioned, apart: if they ever referenced different
// positions the actor would visibly tear on screen.
func (s *EntitySplitter) Emit(dst []PaintItem, rec *entity.Record, baseKey float64, onWater bool) []PaintItem {
	if !onWater {
		return append(dst, PaintItem{
			Category: rec.Category,
			Entity:   rec,
			Depth:    baseKey,
			Part:     PartWhole,
			X:        rec.X,
			Y:        rec.Y,
		})
	}

	if rec.Snorkeling {
		// Fully submerged: a single underwater silhouette, no split.
		return append(dst, PaintItem{
			Category:  rec.Category,
			Entity:    rec,
			Depth:     baseKey,
			Part:      PartWhole,
			Submerged: true,
			X:         rec.X,
			Y:         rec.Y,
		})
	}

	// Swimming at the surface: bottom half interacts with ground-level
	// obstacles, top half with surface-level ones.
	dst = append(dst, PaintItem{
		Category: rec.Category,
		Entity:   rec,
		Depth:    baseKey,
		Part:     PartBottom,
		X:        rec.X,
		Y:        rec.Y,
	})
	return append(dst, PaintItem{
		Category: rec.Category,
		Entity:   rec,
		Depth:    baseKey + s.topOffset,
		Part:     PartTop,
		X:        rec.X,
		Y:        rec.Y,
	})
}
