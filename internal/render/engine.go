package render

import (
	"sort"

	"driftshore/internal/config"
	"driftshore/internal/entity"
	"driftshore/internal/world"
)

// Engine is the per-frame visibility and depth-compositing pipeline:
// cull -> split -> sort. It owns reusable scratch buffers so a steady
// frame does no per-item allocation; ResetFrame recycles them explicitly.
//
// The engine reads a stable snapshot captured at frame start and never
// mutates entity state. Nothing in here can abort a frame: every fault
// degrades to omitting or neutrally keying one item.
type Engine struct {
	culler   *ViewportCuller
	sorter   *DepthSortEngine
	splitter *EntitySplitter
	tiles    *world.ChunkTileCache

	// Frame-scoped scratch, reused across frames.
	visible map[entity.Category]entity.Collection
	items   []PaintItem
	order   []entity.Category
}

// NewEngine wires the pipeline stages from loaded config and the shared
// terrain cache.
func NewEngine(cfg *config.Config, tiles *world.ChunkTileCache) *Engine {
	rules := DepthRulesFromConfig(cfg)
	return &Engine{
		culler:   NewViewportCuller(cfg),
		sorter:   NewDepthSortEngine(rules),
		splitter: NewEntitySplitter(rules.SwimTopOffset),
		tiles:    tiles,
		visible:  make(map[entity.Category]entity.Collection),
		items:    make([]PaintItem, 0, 512),
		order:    entity.AllCategories(),
	}
}

// ResetFrame recycles the engine's scratch buffers. BuildFrame calls it
// at the top of every frame; exposing it keeps the scratch lifecycle
// explicit for hosts that skip frames.
func (e *Engine) ResetFrame() {
	e.items = e.items[:0]
}

// BuildFrame runs the full pipeline for one frame and returns the paint
// sequence, ordered back to front. The returned slice is valid until the
// next BuildFrame call.
func (e *Engine) BuildFrame(snap *entity.Snapshot, cam Camera) []PaintItem {
	e.ResetFrame()

	e.visible = e.culler.Cull(e.visible, snap, cam)

	// Walk categories in declaration order. The sort fixes the final
	// order; this only keeps the pre-sort item sequence deterministic.
	for _, cat := range e.order {
		coll, ok := e.visible[cat]
		if !ok {
			continue
		}
		for _, rec := range coll {
			e.items = e.appendItems(e.items, rec)
		}
	}
	// Categories outside the closed set still get painted (at key 0).
	for cat, coll := range e.visible {
		if cat.Known() {
			continue
		}
		for _, rec := range coll {
			e.items = e.appendItems(e.items, rec)
		}
	}

	items := e.items
	sort.Slice(items, func(i, j int) bool {
		return e.sorter.Less(&items[i], &items[j])
	})
	e.items = items
	return items
}

// appendItems emits the paint items for one visible record. Characters
// route through the splitter with the terrain-resolved water fact; every
// other category is a single whole item.
func (e *Engine) appendItems(dst []PaintItem, rec *entity.Record) []PaintItem {
	key := e.sorter.DepthKey(rec)
	if rec.Category == entity.CategoryPlayer {
		return e.splitter.Emit(dst, rec, key, e.onWater(rec))
	}
	return append(dst, PaintItem{
		Category: rec.Category,
		Entity:   rec,
		Depth:    key,
		Part:     PartWhole,
		X:        rec.X,
		Y:        rec.Y,
	})
}

// onWater resolves an actor's submersion state for the frame. The synced
// flag wins when set; otherwise the terrain cache decides, so a record
// that predates its chunk still classifies correctly once terrain lands.
func (e *Engine) onWater(rec *entity.Record) bool {
	if rec.OnWater {
		return true
	}
	if e.tiles == nil {
		return false
	}
	return e.tiles.IsWaterAt(rec.X, rec.Y)
}

// VisibleEntities exposes the current frame's pre-sort visible maps for
// the interaction/targeting system. Valid until the next BuildFrame.
func (e *Engine) VisibleEntities() map[entity.Category]entity.Collection {
	return e.visible
}

// VisibleTiles returns the decoded terrain tiles covering the camera,
// with the configured buffer margin.
func (e *Engine) VisibleTiles(cam Camera) []world.VisibleTile {
	if e.tiles == nil {
		return nil
	}
	minTX, minTY, maxTX, maxTY := e.culler.VisibleTileRect(cam)
	return e.tiles.QueryRect(minTX, minTY, maxTX, maxTY)
}

// Culler exposes the viewport culler, mainly for diagnostics.
func (e *Engine) Culler() *ViewportCuller {
	return e.culler
}

// Sorter exposes the depth engine, mainly for diagnostics.
func (e *Engine) Sorter() *DepthSortEngine {
	return e.sorter
}
