// Package game hosts the frame loop: it owns the entity snapshot and
// terrain cache, drains queued sync mutations between frames, and runs
// the visibility pipeline once per draw.
package game

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"driftshore/internal/building"
	"driftshore/internal/config"
	"driftshore/internal/entity"
	"driftshore/internal/netsync"
	"driftshore/internal/render"
	"driftshore/internal/world"
)

// Game is the ebiten shell around the frame pipeline. It also acts as
// the sync applier: all mutations land here, on the game loop's
// goroutine, strictly between frame builds.
type Game struct {
	cfg *config.Config

	tiles    *world.ChunkTileCache
	snapshot *entity.Snapshot
	clusters *building.Resolver
	engine   *render.Engine

	sync       *netsync.Client // nil when running offline
	syncCancel context.CancelFunc

	camera *FreeCamera
	keys   *keyTracker
	stats  *FrameStats

	// Structural entities changed since the last enclosure rebuild.
	structuralDirty bool

	showHUD       bool
	interiorDebug bool
	showGrid      bool
}

// NewGame assembles the shell from loaded config.
func NewGame(cfg *config.Config) *Game {
	tiles := world.NewChunkTileCache(cfg.GetTileSize(), cfg.GetChunkSize())
	g := &Game{
		cfg:      cfg,
		tiles:    tiles,
		snapshot: entity.NewSnapshot(),
		clusters: building.NewResolver(cfg.Building.EnclosureThreshold),
		engine:   render.NewEngine(cfg, tiles),
		camera:   NewFreeCamera(6),
		keys:     newKeyTracker(),
		stats:    NewFrameStats(),
		showHUD:  true,
	}
	return g
}

// StartSync connects the game to a sync server. The read loop runs on
// its own goroutine; its mutations stay queued until the next Update.
func (g *Game) StartSync(client *netsync.Client) {
	ctx, cancel := context.WithCancel(context.Background())
	g.sync = client
	g.syncCancel = cancel
	go client.Run(ctx)
}

// StopSync tears the sync connection down.
func (g *Game) StopSync() {
	if g.syncCancel != nil {
		g.syncCancel()
		g.syncCancel = nil
	}
	g.sync = nil
}

// Update drains pending sync mutations and processes input. This is the
// only place game state mutates, which is what lets Draw treat the
// snapshot as frozen.
func (g *Game) Update() error {
	g.drainPending()
	g.handleInput()
	return nil
}

// drainPending applies queued sync mutations and rebuilds enclosure
// state if any structural cell changed.
func (g *Game) drainPending() {
	if g.sync != nil {
		g.stats.RecordDrain(g.sync.Drain(g))
	}
	if g.structuralDirty {
		g.clusters.SyncFromSnapshot(g.snapshot)
		g.structuralDirty = false
	}
}

// Draw runs the frame pipeline and paints the result back to front.
func (g *Game) Draw(screen *ebiten.Image) {
	timer := g.stats.StartFrame()

	bounds := screen.Bounds()
	cam := g.camera.Viewport(bounds.Dx(), bounds.Dy())
	visibleTiles := g.engine.VisibleTiles(cam)
	items := g.engine.BuildFrame(g.snapshot, cam)

	g.drawTerrain(screen, cam, visibleTiles)
	if g.interiorDebug {
		g.drawInteriors(screen, cam)
	}
	g.drawItems(screen, cam, items)

	timer.EndFrame()
	g.stats.RecordFrameLoad(len(items), len(visibleTiles))

	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}

// Camera exposes the free camera for startup positioning.
func (g *Game) Camera() *FreeCamera { return g.camera }

// Stats exposes the frame statistics.
func (g *Game) Stats() *FrameStats { return g.stats }

// Snapshot exposes the live entity snapshot. Callers must only touch it
// between frames.
func (g *Game) Snapshot() *entity.Snapshot { return g.snapshot }

// Tiles exposes the terrain cache.
func (g *Game) Tiles() *world.ChunkTileCache { return g.tiles }

// Clusters exposes the building enclosure resolver.
func (g *Game) Clusters() *building.Resolver { return g.clusters }

// Engine exposes the frame pipeline.
func (g *Game) Engine() *render.Engine { return g.engine }

// ---- netsync.Applier ----

func (g *Game) UpsertChunk(chunk *world.TileChunk) {
	g.tiles.Upsert(chunk)
}

func (g *Game) RemoveChunk(chunkX, chunkY int) {
	g.tiles.Remove(chunkX, chunkY)
}

func (g *Game) UpsertEntity(rec *entity.Record) {
	g.snapshot.Put(rec)
	if isStructural(rec.Category) {
		g.structuralDirty = true
	}
}

func (g *Game) RemoveEntity(category entity.Category, id string) {
	g.snapshot.Delete(category, id)
	if isStructural(category) {
		g.structuralDirty = true
	}
}

// isStructural reports whether a category participates in enclosure
// resolution.
func isStructural(c entity.Category) bool {
	switch c {
	case entity.CategoryFoundation, entity.CategoryWall, entity.CategoryDoor:
		return true
	}
	return false
}
