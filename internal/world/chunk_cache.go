package world

import (
	"log"
	"math"
)

// ChunkKey identifies a chunk by its coordinates in chunk space.
type ChunkKey struct {
	X, Y int
}

// TileChunk is a fixed-size square block of terrain tiles, the unit of
// terrain streaming. TileTypes and Variants are flat row-major arrays of
// ChunkSize*ChunkSize bytes each.
type TileChunk struct {
	ChunkX    int
	ChunkY    int
	ChunkSize int
	TileTypes []byte
	Variants  []byte
}

// VisibleTile is one decoded tile at a world tile coordinate. It is a
// derived value recomputed every frame and never persisted.
type VisibleTile struct {
	TileX   int
	TileY   int
	Type    TileType
	Variant byte
}

// ChunkTileCache stores terrain chunks and answers point and rectangle
// queries over tiles. Chunks are replaced wholesale on update; tiles are
// never edited in place, so a query sees either the old chunk or the new
// one, never a mix.
type ChunkTileCache struct {
	chunks    map[ChunkKey]*TileChunk
	chunkSize int     // tiles per chunk edge, uniform across the world
	tileSize  float64 // pixels per tile edge

	rejected map[ChunkKey]struct{} // malformed chunks already logged
}

// NewChunkTileCache creates an empty cache for chunks of chunkSize tiles
// per edge, with tiles of tileSize pixels.
func NewChunkTileCache(tileSize float64, chunkSize int) *ChunkTileCache {
	return &ChunkTileCache{
		chunks:    make(map[ChunkKey]*TileChunk),
		chunkSize: chunkSize,
		tileSize:  tileSize,
		rejected:  make(map[ChunkKey]struct{}),
	}
}

// Upsert replaces any existing entry for the chunk's coordinates. Chunks
// whose size doesn't match the world's or whose arrays don't match
// ChunkSize squared are ignored and logged once per coordinate.
func (c *ChunkTileCache) Upsert(chunk *TileChunk) {
	if chunk == nil {
		return
	}
	key := ChunkKey{chunk.ChunkX, chunk.ChunkY}
	want := c.chunkSize * c.chunkSize
	if chunk.ChunkSize != c.chunkSize || len(chunk.TileTypes) != want || len(chunk.Variants) != want {
		if _, seen := c.rejected[key]; !seen {
			c.rejected[key] = struct{}{}
			log.Printf("Warning: rejecting malformed chunk (%d,%d): size=%d tiles=%d variants=%d want size=%d",
				chunk.ChunkX, chunk.ChunkY, chunk.ChunkSize, len(chunk.TileTypes), len(chunk.Variants), c.chunkSize)
		}
		return
	}
	c.chunks[key] = chunk
}

// Remove deletes the chunk at the given chunk coordinates. Queries over
// its area return nothing until a new chunk is inserted.
func (c *ChunkTileCache) Remove(chunkX, chunkY int) {
	delete(c.chunks, ChunkKey{chunkX, chunkY})
}

// Len returns the number of cached chunks.
func (c *ChunkTileCache) Len() int {
	return len(c.chunks)
}

// TileAt resolves a single world tile coordinate. The third return is
// false when the owning chunk is absent or the local index is out of
// bounds; missing terrain is a soft miss, never an error.
func (c *ChunkTileCache) TileAt(tileX, tileY int) (TileType, byte, bool) {
	if c.chunkSize <= 0 {
		return 0, 0, false
	}
	cx := floorDiv(tileX, c.chunkSize)
	cy := floorDiv(tileY, c.chunkSize)
	chunk, ok := c.chunks[ChunkKey{cx, cy}]
	if !ok {
		return 0, 0, false
	}
	localX := tileX - cx*c.chunkSize
	localY := tileY - cy*c.chunkSize
	idx := localY*c.chunkSize + localX
	if idx < 0 || idx >= len(chunk.TileTypes) {
		return 0, 0, false
	}
	return TileType(chunk.TileTypes[idx]), chunk.Variants[idx], true
}

// QueryRect decodes every present tile in the inclusive tile-coordinate
// rectangle. Tiles in absent chunks are simply omitted.
func (c *ChunkTileCache) QueryRect(minTileX, minTileY, maxTileX, maxTileY int) []VisibleTile {
	if len(c.chunks) == 0 || minTileX > maxTileX || minTileY > maxTileY {
		return nil
	}
	tiles := make([]VisibleTile, 0, (maxTileX-minTileX+1)*(maxTileY-minTileY+1))
	for ty := minTileY; ty <= maxTileY; ty++ {
		for tx := minTileX; tx <= maxTileX; tx++ {
			tileType, variant, ok := c.TileAt(tx, ty)
			if !ok {
				continue
			}
			tiles = append(tiles, VisibleTile{TileX: tx, TileY: ty, Type: tileType, Variant: variant})
		}
	}
	return tiles
}

// IsWaterAt reports whether the world-pixel position sits on a water
// tile. Unknown terrain counts as dry so a missing chunk never splits a
// walking character.
func (c *ChunkTileCache) IsWaterAt(worldX, worldY float64) bool {
	if c.tileSize <= 0 {
		return false
	}
	tileX := int(math.Floor(worldX / c.tileSize))
	tileY := int(math.Floor(worldY / c.tileSize))
	tileType, _, ok := c.TileAt(tileX, tileY)
	if !ok {
		return false
	}
	return IsWaterTile(tileType)
}

// TileSize returns the pixel edge length of one tile.
func (c *ChunkTileCache) TileSize() float64 {
	return c.tileSize
}

// floorDiv divides rounding toward negative infinity, so tile -1 maps to
// chunk -1 rather than chunk 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
