package render

import (
	"log"
	"math"

	"driftshore/internal/config"
	"driftshore/internal/entity"
)

// Camera is the per-frame view input: world position of the view center
// and the canvas size in pixels.
type Camera struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the camera's world-space rectangle.
func (c Camera) Rect() RectF {
	return RectF{
		X0: c.X - c.Width/2,
		Y0: c.Y - c.Height/2,
		X1: c.X + c.Width/2,
		Y1: c.Y + c.Height/2,
	}
}

// Origin returns the world position of the view rectangle's top-left
// corner, which is what a screen-space painter subtracts.
func (c Camera) Origin() (float64, float64) {
	return c.X - c.Width/2, c.Y - c.Height/2
}

// RectF is an axis-aligned rectangle in world-pixel space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Expand grows the rectangle by pad on every side.
func (r RectF) Expand(pad float64) RectF {
	return RectF{X0: r.X0 - pad, Y0: r.Y0 - pad, X1: r.X1 + pad, Y1: r.Y1 + pad}
}

// IntersectsCircle reports whether a circle at (cx,cy) with radius rad
// touches the rectangle.
func (r RectF) IntersectsCircle(cx, cy, rad float64) bool {
	nearX := math.Max(r.X0, math.Min(cx, r.X1))
	nearY := math.Max(r.Y0, math.Min(cy, r.Y1))
	dx := cx - nearX
	dy := cy - nearY
	return dx*dx+dy*dy <= rad*rad
}

// ViewportCuller reduces raw entity collections to the padded-viewport
// visible subset per category. Culling is a pure function of (camera,
// collections); the only state kept across frames is the once-per-id
// malformed-position log guard.
type ViewportCuller struct {
	cfg *config.Config

	badReported map[string]struct{}
}

// NewViewportCuller creates a culler using the configured paddings.
func NewViewportCuller(cfg *config.Config) *ViewportCuller {
	return &ViewportCuller{
		cfg:         cfg,
		badReported: make(map[string]struct{}),
	}
}

// Cull writes each category's visible subset into dst (allocating
// collections as needed, clearing stale entries) and returns dst. An
// entity is visible when its footprint circle intersects the camera
// rectangle expanded by its category's padding.
func (vc *ViewportCuller) Cull(dst map[entity.Category]entity.Collection, snap *entity.Snapshot, cam Camera) map[entity.Category]entity.Collection {
	if dst == nil {
		dst = make(map[entity.Category]entity.Collection)
	}
	for cat, coll := range dst {
		if _, present := snap.Collections[cat]; !present {
			delete(dst, cat)
			continue
		}
		for id := range coll {
			delete(coll, id)
		}
	}

	view := cam.Rect()
	for cat, coll := range snap.Collections {
		padded := view.Expand(vc.cfg.GetCategoryPadding(cat.String()))
		out, ok := dst[cat]
		if !ok {
			out = make(entity.Collection, len(coll))
			dst[cat] = out
		}
		for id, rec := range coll {
			if rec == nil {
				continue
			}
			if !isFinite(rec.X) || !isFinite(rec.Y) {
				vc.reportBadPosition(id, rec)
				continue
			}
			if padded.IntersectsCircle(rec.X, rec.Y, rec.FootprintRadius) {
				out[id] = rec
			}
		}
	}
	return dst
}

// VisibleTileRect returns the inclusive tile-coordinate rectangle covered
// by the camera plus the configured tile buffer.
func (vc *ViewportCuller) VisibleTileRect(cam Camera) (minTX, minTY, maxTX, maxTY int) {
	tileSize := vc.cfg.GetTileSize()
	if tileSize <= 0 {
		return 0, 0, -1, -1
	}
	buffer := vc.cfg.Viewport.TileBuffer
	view := cam.Rect()
	minTX = int(math.Floor(view.X0/tileSize)) - buffer
	minTY = int(math.Floor(view.Y0/tileSize)) - buffer
	maxTX = int(math.Floor(view.X1/tileSize)) + buffer
	maxTY = int(math.Floor(view.Y1/tileSize)) + buffer
	return minTX, minTY, maxTX, maxTY
}

func (vc *ViewportCuller) reportBadPosition(id string, rec *entity.Record) {
	if _, seen := vc.badReported[id]; seen {
		return
	}
	vc.badReported[id] = struct{}{}
	log.Printf("Warning: excluding entity %q (%s) with non-finite position (%v, %v)",
		id, rec.Category, rec.X, rec.Y)
}

// BadPositionCount returns how many distinct ids have been excluded for
// malformed positions this session.
func (vc *ViewportCuller) BadPositionCount() int {
	return len(vc.badReported)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
