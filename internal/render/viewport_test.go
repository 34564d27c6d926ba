package render

import (
	"math"
	"testing"

	"driftshore/internal/config"
	"driftshore/internal/entity"
)

func testConfig() *config.Config {
	return &config.Config{
		World: config.WorldConfig{TileSize: 48, ChunkSize: 16},
		Viewport: config.ViewportConfig{
			DefaultPadding: 96,
			TileBuffer:     2,
			CategoryPadding: map[string]float64{
				"tree": 192,
			},
		},
		Depth: config.DepthConfig{
			FeetOffset:       24,
			SwimTopOffset:    48,
			ShelterOffset:    64,
			FoundationOffset: 96,
			WallEdgeNorth:    -48,
			WallEdgeSouth:    48,
			WallEdgeDiagonal: 24,
		},
		Building: config.BuildingConfig{CellSize: 48, EnclosureThreshold: 1.0},
	}
}

func TestCullInsideAndOutside(t *testing.T) {
	vc := NewViewportCuller(testConfig())
	cam := Camera{X: 0, Y: 0, Width: 800, Height: 600}

	snap := entity.NewSnapshot()
	snap.Put(&entity.Record{ID: "center", Category: entity.CategoryStone, X: 0, Y: 0})
	snap.Put(&entity.Record{ID: "inside-pad", Category: entity.CategoryStone, X: 400 + 50, Y: 0})
	snap.Put(&entity.Record{ID: "outside", Category: entity.CategoryStone, X: 400 + 96 + 1, Y: 0})

	visible := vc.Cull(nil, snap, cam)

	stones := visible[entity.CategoryStone]
	if _, ok := stones["center"]; !ok {
		t.Errorf("Expected center entity visible")
	}
	if _, ok := stones["inside-pad"]; !ok {
		t.Errorf("Expected entity within padding visible")
	}
	if _, ok := stones["outside"]; ok {
		t.Errorf("Expected entity beyond padding culled")
	}
}

func TestCullFootprintRadius(t *testing.T) {
	vc := NewViewportCuller(testConfig())
	cam := Camera{X: 0, Y: 0, Width: 800, Height: 600}

	snap := entity.NewSnapshot()
	// Anchor beyond the padded edge, but the footprint circle reaches in.
	snap.Put(&entity.Record{ID: "wide", Category: entity.CategoryStone, X: 400 + 96 + 30, Y: 0, FootprintRadius: 40})
	snap.Put(&entity.Record{ID: "narrow", Category: entity.CategoryStone, X: 400 + 96 + 30, Y: 0, FootprintRadius: 10})

	visible := vc.Cull(nil, snap, cam)
	stones := visible[entity.CategoryStone]
	if _, ok := stones["wide"]; !ok {
		t.Errorf("Expected wide-footprint entity visible (no pop-in)")
	}
	if _, ok := stones["narrow"]; ok {
		t.Errorf("Expected narrow-footprint entity culled")
	}
}

func TestCullCategoryPaddingOverride(t *testing.T) {
	vc := NewViewportCuller(testConfig())
	cam := Camera{X: 0, Y: 0, Width: 800, Height: 600}

	snap := entity.NewSnapshot()
	// 150px past the edge: beyond default padding, inside tree padding.
	snap.Put(&entity.Record{ID: "t1", Category: entity.CategoryTree, X: 400 + 150, Y: 0})
	snap.Put(&entity.Record{ID: "s1", Category: entity.CategoryStone, X: 400 + 150, Y: 0})

	visible := vc.Cull(nil, snap, cam)
	if _, ok := visible[entity.CategoryTree]["t1"]; !ok {
		t.Errorf("Expected tree visible under its larger padding")
	}
	if _, ok := visible[entity.CategoryStone]["s1"]; ok {
		t.Errorf("Expected stone culled under default padding")
	}
}

func TestCullExcludesNonFinitePositions(t *testing.T) {
	vc := NewViewportCuller(testConfig())
	cam := Camera{X: 0, Y: 0, Width: 800, Height: 600}

	snap := entity.NewSnapshot()
	snap.Put(&entity.Record{ID: "nan", Category: entity.CategoryStone, X: 0, Y: math.NaN()})
	snap.Put(&entity.Record{ID: "inf", Category: entity.CategoryStone, X: math.Inf(1), Y: 0})
	snap.Put(&entity.Record{ID: "ok", Category: entity.CategoryStone, X: 0, Y: 0})

	var visible map[entity.Category]entity.Collection
	// Repeated culls must report each bad id exactly once.
	for i := 0; i < 3; i++ {
		visible = vc.Cull(visible, snap, cam)
	}

	stones := visible[entity.CategoryStone]
	if len(stones) != 1 {
		t.Fatalf("Expected only the finite entity visible, got %d", len(stones))
	}
	if _, ok := stones["ok"]; !ok {
		t.Errorf("Expected finite entity to stay visible")
	}
	if vc.BadPositionCount() != 2 {
		t.Errorf("Expected 2 distinct bad ids recorded, got %d", vc.BadPositionCount())
	}
}

func TestCullIsDeterministic(t *testing.T) {
	vc := NewViewportCuller(testConfig())
	cam := Camera{X: 123, Y: -456, Width: 640, Height: 480}

	snap := entity.NewSnapshot()
	for i := 0; i < 50; i++ {
		snap.Put(&entity.Record{
			ID:       string(rune('a' + i%26)),
			Category: entity.CategoryTree,
			X:        float64(i * 37),
			Y:        float64(i * 13),
		})
	}

	first := vc.Cull(nil, snap, cam)
	second := vc.Cull(nil, snap, cam)

	if len(first[entity.CategoryTree]) != len(second[entity.CategoryTree]) {
		t.Fatalf("Visible set size changed between identical culls")
	}
	for id := range first[entity.CategoryTree] {
		if _, ok := second[entity.CategoryTree][id]; !ok {
			t.Errorf("Entity %q present in first cull but not second", id)
		}
	}
}

func TestVisibleTileRect(t *testing.T) {
	vc := NewViewportCuller(testConfig())
	// 480x480 view centered at (240,240): tiles 0..9 plus 2 buffer tiles.
	cam := Camera{X: 240, Y: 240, Width: 480, Height: 480}

	minTX, minTY, maxTX, maxTY := vc.VisibleTileRect(cam)
	if minTX != -2 || minTY != -2 || maxTX != 12 || maxTY != 12 {
		t.Errorf("Expected tile rect (-2,-2)..(12,12), got (%d,%d)..(%d,%d)", minTX, minTY, maxTX, maxTY)
	}
}
