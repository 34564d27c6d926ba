package render

import (
	"testing"

	"driftshore/internal/entity"
)

func testRules() DepthRules {
	return DepthRules{
		CellSize:         48,
		FeetOffset:       24,
		SwimTopOffset:    48,
		ShelterOffset:    64,
		FoundationOffset: 96,
		WallEdgeNorth:    -48,
		WallEdgeSouth:    48,
		WallEdgeDiagonal: 24,
	}
}

func TestDepthKeyPerCategory(t *testing.T) {
	d := NewDepthSortEngine(testRules())

	testCases := []struct {
		name string
		rec  entity.Record
		want float64
	}{
		{
			name: "ground prop uses raw anchor Y",
			rec:  entity.Record{Category: entity.CategoryCampfire, Y: 500},
			want: 500,
		},
		{
			name: "character adds feet offset",
			rec:  entity.Record{Category: entity.CategoryPlayer, Y: 500},
			want: 524,
		},
		{
			name: "animal adds feet offset",
			rec:  entity.Record{Category: entity.CategoryWildAnimal, Y: 100},
			want: 124,
		},
		{
			name: "shelter subtracts its offset",
			rec:  entity.Record{Category: entity.CategoryShelter, Y: 500},
			want: 436,
		},
		{
			// Cell row 10: bottom edge at y=528
			name: "north wall sorts with the row above",
			rec:  entity.Record{Category: entity.CategoryWall, CellY: 10, Edge: entity.EdgeNorth},
			want: 528 - 48,
		},
		{
			name: "south wall sorts one row below",
			rec:  entity.Record{Category: entity.CategoryWall, CellY: 10, Edge: entity.EdgeSouth},
			want: 528 + 48,
		},
		{
			name: "east wall sorts with its own row",
			rec:  entity.Record{Category: entity.CategoryWall, CellY: 10, Edge: entity.EdgeEast},
			want: 528,
		},
		{
			name: "diagonal wall splits the difference",
			rec:  entity.Record{Category: entity.CategoryDoor, CellY: 10, Edge: entity.EdgeDiagNWSE},
			want: 528 + 24,
		},
		{
			name: "foundation sorts behind its row",
			rec:  entity.Record{Category: entity.CategoryFoundation, CellY: 10},
			want: 528 - 96,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := tc.rec
			if got := d.DepthKey(&rec); got != tc.want {
				t.Errorf("DepthKey = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWallEdgeRelativeOrdering(t *testing.T) {
	d := NewDepthSortEngine(testRules())

	north := &entity.Record{Category: entity.CategoryWall, CellY: 5, Edge: entity.EdgeNorth}
	east := &entity.Record{Category: entity.CategoryWall, CellY: 5, Edge: entity.EdgeEast}
	diag := &entity.Record{Category: entity.CategoryWall, CellY: 5, Edge: entity.EdgeDiagNWSE}
	south := &entity.Record{Category: entity.CategoryWall, CellY: 5, Edge: entity.EdgeSouth}

	kn, ke, kd, ks := d.DepthKey(north), d.DepthKey(east), d.DepthKey(diag), d.DepthKey(south)
	if !(kn < ke && ke < kd && kd < ks) {
		t.Errorf("Expected north < east < diagonal < south, got %v %v %v %v", kn, ke, kd, ks)
	}
}

func TestUnknownCategoryNeutralKey(t *testing.T) {
	d := NewDepthSortEngine(testRules())

	rec := &entity.Record{ID: "mystery", Category: entity.Category(9999), Y: 777}
	if got := d.DepthKey(rec); got != 0 {
		t.Errorf("Expected neutral key 0 for unknown category, got %v", got)
	}
	// Same gap reported once, not per call
	d.DepthKey(rec)
	d.DepthKey(rec)
	if d.UnknownCategoryCount() != 1 {
		t.Errorf("Expected 1 unknown category recorded, got %d", d.UnknownCategoryCount())
	}
}

func TestLessIsTotalAndStable(t *testing.T) {
	d := NewDepthSortEngine(testRules())

	a := PaintItem{Category: entity.CategoryStone, Entity: &entity.Record{ID: "a"}, Depth: 500}
	b := PaintItem{Category: entity.CategoryStone, Entity: &entity.Record{ID: "b"}, Depth: 500}

	if !d.Less(&a, &b) {
		t.Errorf("Expected id tiebreak to order a before b")
	}
	if d.Less(&b, &a) {
		t.Errorf("Comparator must not order b before a as well")
	}

	bottom := PaintItem{Category: entity.CategoryPlayer, Entity: &entity.Record{ID: "p"}, Depth: 100, Part: PartBottom}
	top := PaintItem{Category: entity.CategoryPlayer, Entity: &entity.Record{ID: "p"}, Depth: 100, Part: PartTop}
	if !d.Less(&bottom, &top) {
		t.Errorf("Expected bottom part before top part at equal depth")
	}
}
