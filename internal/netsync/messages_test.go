package netsync

import (
	"math"
	"testing"

	"driftshore/internal/entity"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestNormalizeResolvesAliases(t *testing.T) {
	tests := []struct {
		name    string
		payload EntityPayload
		wantX   float64
		wantY   float64
	}{
		{
			name: "short names",
			payload: EntityPayload{
				ID: "p1", Category: "player",
				PosX: floatPtr(100), PosY: floatPtr(200),
			},
			wantX: 100, wantY: 200,
		},
		{
			name: "long names",
			payload: EntityPayload{
				ID: "p2", Category: "player",
				PositionX: floatPtr(10), PositionY: floatPtr(20),
			},
			wantX: 10, wantY: 20,
		},
		{
			name: "short wins over long",
			payload: EntityPayload{
				ID: "p3", Category: "player",
				PosX: floatPtr(1), PositionX: floatPtr(99),
				PosY: floatPtr(2), PositionY: floatPtr(99),
			},
			wantX: 1, wantY: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := tt.payload.Normalize(48)
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if rec.X != tt.wantX || rec.Y != tt.wantY {
				t.Errorf("Position (%v,%v), want (%v,%v)", rec.X, rec.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNormalizeBoolAndRadiusAliases(t *testing.T) {
	p := EntityPayload{
		ID: "swimmer", Category: "player",
		PosX: floatPtr(0), PosY: floatPtr(0),
		IsOnWater:       boolPtr(true),
		IsSnorkeling:    boolPtr(true),
		CollisionRadius: floatPtr(16),
	}
	rec, err := p.Normalize(48)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !rec.OnWater || !rec.Snorkeling {
		t.Errorf("Long-form water flags not resolved: onWater=%v snorkeling=%v", rec.OnWater, rec.Snorkeling)
	}
	if rec.FootprintRadius != 16 {
		t.Errorf("FootprintRadius = %v, want 16", rec.FootprintRadius)
	}
}

func TestNormalizeStructuralCellFallback(t *testing.T) {
	p := EntityPayload{
		ID: "wall-1", Category: "wall",
		CellX: intPtr(3), CellY: intPtr(-2), Edge: intPtr(int(entity.EdgeSouth)),
	}
	rec, err := p.Normalize(48)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if rec.X != 3.5*48 || rec.Y != -1.5*48 {
		t.Errorf("Cell-center fallback gave (%v,%v), want (%v,%v)", rec.X, rec.Y, 3.5*48.0, -1.5*48.0)
	}
	if rec.CellX != 3 || rec.CellY != -2 || rec.Edge != entity.EdgeSouth {
		t.Errorf("Cell fields mangled: (%d,%d) edge %d", rec.CellX, rec.CellY, rec.Edge)
	}
}

func TestNormalizeRejectsUnusable(t *testing.T) {
	noPos := EntityPayload{ID: "ghost", Category: "player"}
	if _, err := noPos.Normalize(48); err == nil {
		t.Errorf("Expected entity without position to be rejected")
	}

	noID := EntityPayload{Category: "player", PosX: floatPtr(0), PosY: floatPtr(0)}
	if _, err := noID.Normalize(48); err == nil {
		t.Errorf("Expected entity without id to be rejected")
	}

	nan := EntityPayload{ID: "nan", Category: "player", PosX: floatPtr(math.NaN()), PosY: floatPtr(0)}
	if _, err := nan.Normalize(48); err == nil {
		t.Errorf("Expected non-finite position to be rejected")
	}
}

func TestNormalizeUnknownCategoryKept(t *testing.T) {
	p := EntityPayload{
		ID: "mystery", Category: "quantum_portal",
		PosX: floatPtr(5), PosY: floatPtr(5),
	}
	rec, err := p.Normalize(48)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if rec.Category.Known() {
		t.Errorf("Unknown category resolved to known value %v", rec.Category)
	}
}
