package world

import "testing"

func makeUniformChunk(cx, cy, size int, tileType TileType) *TileChunk {
	n := size * size
	tiles := make([]byte, n)
	variants := make([]byte, n)
	for i := range tiles {
		tiles[i] = byte(tileType)
	}
	return &TileChunk{ChunkX: cx, ChunkY: cy, ChunkSize: size, TileTypes: tiles, Variants: variants}
}

func TestChunkRoundTrip(t *testing.T) {
	cache := NewChunkTileCache(48, 16)

	// Chunk (2,3) covers world tiles x in [32,47], y in [48,63]
	cache.Upsert(makeUniformChunk(2, 3, 16, TileGrass))

	tileType, variant, ok := cache.TileAt(37, 53)
	if !ok {
		t.Fatalf("Expected tile (37,53) to be present")
	}
	if tileType != TileGrass {
		t.Errorf("Expected TileGrass, got %v", tileType)
	}
	if variant != 0 {
		t.Errorf("Expected variant 0, got %d", variant)
	}

	tiles := cache.QueryRect(37, 53, 37, 53)
	if len(tiles) != 1 {
		t.Fatalf("Expected exactly one tile, got %d", len(tiles))
	}
	if tiles[0].TileX != 37 || tiles[0].TileY != 53 {
		t.Errorf("Expected tile coords (37,53), got (%d,%d)", tiles[0].TileX, tiles[0].TileY)
	}
}

func TestChunkFlatIndexDecoding(t *testing.T) {
	cache := NewChunkTileCache(48, 4)

	// Distinct value per tile so the flat index mapping is checked exactly.
	chunk := makeUniformChunk(0, 0, 4, TileGrass)
	for i := range chunk.TileTypes {
		chunk.TileTypes[i] = byte(i % 13)
		chunk.Variants[i] = byte(i)
	}
	cache.Upsert(chunk)

	for ty := 0; ty < 4; ty++ {
		for tx := 0; tx < 4; tx++ {
			idx := ty*4 + tx
			tileType, variant, ok := cache.TileAt(tx, ty)
			if !ok {
				t.Fatalf("Expected tile (%d,%d) present", tx, ty)
			}
			if byte(tileType) != byte(idx%13) {
				t.Errorf("Tile (%d,%d): expected type %d, got %d", tx, ty, idx%13, tileType)
			}
			if variant != byte(idx) {
				t.Errorf("Tile (%d,%d): expected variant %d, got %d", tx, ty, idx, variant)
			}
		}
	}
}

func TestChunkRemove(t *testing.T) {
	cache := NewChunkTileCache(48, 16)
	cache.Upsert(makeUniformChunk(2, 3, 16, TileGrass))

	cache.Remove(2, 3)

	if _, _, ok := cache.TileAt(37, 53); ok {
		t.Errorf("Expected no tile after chunk removal")
	}
	if tiles := cache.QueryRect(32, 48, 47, 63); len(tiles) != 0 {
		t.Errorf("Expected empty query over removed chunk, got %d tiles", len(tiles))
	}
}

func TestChunkUpsertReplacesWholesale(t *testing.T) {
	cache := NewChunkTileCache(48, 8)
	cache.Upsert(makeUniformChunk(0, 0, 8, TileGrass))
	cache.Upsert(makeUniformChunk(0, 0, 8, TileSea))

	tileType, _, ok := cache.TileAt(3, 3)
	if !ok || tileType != TileSea {
		t.Errorf("Expected replacement chunk's TileSea, got %v (ok=%v)", tileType, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("Expected a single cached chunk, got %d", cache.Len())
	}
}

func TestMalformedChunkRejected(t *testing.T) {
	cache := NewChunkTileCache(48, 16)

	bad := makeUniformChunk(0, 0, 16, TileGrass)
	bad.TileTypes = bad.TileTypes[:100] // length != 256

	cache.Upsert(bad)
	if cache.Len() != 0 {
		t.Errorf("Expected malformed chunk to be rejected")
	}

	wrongSize := makeUniformChunk(0, 0, 8, TileGrass)
	cache.Upsert(wrongSize)
	if cache.Len() != 0 {
		t.Errorf("Expected chunk with mismatched size to be rejected")
	}
}

func TestNegativeChunkCoordinates(t *testing.T) {
	cache := NewChunkTileCache(48, 16)

	// Chunk (-1,-1) covers tiles x,y in [-16,-1]
	cache.Upsert(makeUniformChunk(-1, -1, 16, TileSand))

	tileType, _, ok := cache.TileAt(-1, -1)
	if !ok || tileType != TileSand {
		t.Errorf("Expected TileSand at (-1,-1), got %v (ok=%v)", tileType, ok)
	}
	if _, _, ok := cache.TileAt(0, 0); ok {
		t.Errorf("Expected tile (0,0) to be absent")
	}
}

func TestIsWaterAt(t *testing.T) {
	cache := NewChunkTileCache(48, 4)

	chunk := makeUniformChunk(0, 0, 4, TileGrass)
	// Tile (2,1) is sea
	chunk.TileTypes[1*4+2] = byte(TileSea)
	cache.Upsert(chunk)

	testCases := []struct {
		name   string
		wx, wy float64
		water  bool
	}{
		{"grass tile", 24, 24, false},
		{"sea tile center", 2*48 + 24, 1*48 + 24, true},
		{"sea tile corner", 2 * 48, 1 * 48, true},
		{"missing chunk is dry", 4 * 48 * 10, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cache.IsWaterAt(tc.wx, tc.wy); got != tc.water {
				t.Errorf("IsWaterAt(%v,%v) = %v, want %v", tc.wx, tc.wy, got, tc.water)
			}
		})
	}
}
