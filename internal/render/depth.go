package render

import (
	"log"

	"driftshore/internal/config"
	"driftshore/internal/entity"
)

// DepthRules holds the numeric offsets the sort-key table applies per
// category. The literals are presentation tuning loaded from config; the
// engine only relies on their relative ordering.
type DepthRules struct {
	CellSize         float64
	FeetOffset       float64
	SwimTopOffset    float64
	ShelterOffset    float64
	FoundationOffset float64
	WallEdgeNorth    float64
	WallEdgeSouth    float64
	WallEdgeDiagonal float64
}

// DepthRulesFromConfig builds the rule constants from loaded config.
func DepthRulesFromConfig(cfg *config.Config) DepthRules {
	return DepthRules{
		CellSize:         float64(cfg.Building.CellSize),
		FeetOffset:       cfg.Depth.FeetOffset,
		SwimTopOffset:    cfg.Depth.SwimTopOffset,
		ShelterOffset:    cfg.Depth.ShelterOffset,
		FoundationOffset: cfg.Depth.FoundationOffset,
		WallEdgeNorth:    cfg.Depth.WallEdgeNorth,
		WallEdgeSouth:    cfg.Depth.WallEdgeSouth,
		WallEdgeDiagonal: cfg.Depth.WallEdgeDiagonal,
	}
}

// DepthSortEngine computes scalar depth keys per category and orders the
// frame's paint items back to front.
type DepthSortEngine struct {
	rules DepthRules

	// Categories without a sort rule, logged once each. The entity still
	// participates at key 0 so it never silently disappears.
	unknownLogged map[entity.Category]struct{}
}

// NewDepthSortEngine creates a sort engine with the given rule constants.
func NewDepthSortEngine(rules DepthRules) *DepthSortEngine {
	return &DepthSortEngine{
		rules:         rules,
		unknownLogged: make(map[entity.Category]struct{}),
	}
}

// DepthKey computes the scalar depth key for a record. Every category in
// the closed set has an explicit rule here; anything else is a
// configuration gap that gets a neutral key and a one-time log line.
func (d *DepthSortEngine) DepthKey(rec *entity.Record) float64 {
	switch rec.Category {
	// Actors sort by the visual base of the sprite, a fixed distance
	// below the anchor.
	case entity.CategoryPlayer, entity.CategoryWildAnimal, entity.CategoryDrone:
		return rec.Y + d.rules.FeetOffset

	// Wall and door segments sort by their owning cell's row, shifted
	// toward the row the occupied edge faces.
	case entity.CategoryWall, entity.CategoryDoor:
		return d.wallKey(rec)

	// Foundations sit flat on the ground and must paint behind
	// everything standing on them.
	case entity.CategoryFoundation:
		return d.cellRowBase(rec) - d.rules.FoundationOffset

	// Shelters sort behind the entities they contain.
	case entity.CategoryShelter:
		return rec.Y - d.rules.ShelterOffset

	// Everything ground-anchored sorts by its raw anchor row.
	case entity.CategoryTree, entity.CategoryStone, entity.CategoryHemp,
		entity.CategoryMushroom, entity.CategoryCorn, entity.CategoryPumpkin,
		entity.CategoryBasaltColumn, entity.CategoryFumarole, entity.CategoryTidePoolRock,
		entity.CategoryCampfire, entity.CategoryFurnace, entity.CategoryBarbecue,
		entity.CategoryCookingStation, entity.CategoryBarrel, entity.CategoryStorageBox,
		entity.CategoryRefrigerator, entity.CategoryRepairBench, entity.CategorySleepingBag,
		entity.CategoryStash, entity.CategoryLamppost, entity.CategoryBeacon,
		entity.CategoryFishTrap, entity.CategoryDroppedItem, entity.CategoryBones,
		entity.CategoryPlantedSeed, entity.CategoryBeehive, entity.CategoryCairn,
		entity.CategoryMonumentPart, entity.CategoryGrassDecal:
		return rec.Y

	default:
		if _, logged := d.unknownLogged[rec.Category]; !logged {
			d.unknownLogged[rec.Category] = struct{}{}
			log.Printf("Warning: no depth rule for category %q, sorting at key 0", rec.Category)
		}
		return 0
	}
}

// cellRowBase is the world Y of the bottom edge of a structural cell.
func (d *DepthSortEngine) cellRowBase(rec *entity.Record) float64 {
	return float64(rec.CellY)*d.rules.CellSize + d.rules.CellSize
}

// wallKey shifts a segment's key toward the row its edge faces: a north
// segment sorts with the row above its cell, a south segment one row
// below, east/west with the cell's own row, diagonals partway toward the
// row they lean into.
func (d *DepthSortEngine) wallKey(rec *entity.Record) float64 {
	base := d.cellRowBase(rec)
	switch rec.Edge {
	case entity.EdgeNorth:
		return base + d.rules.WallEdgeNorth
	case entity.EdgeSouth:
		return base + d.rules.WallEdgeSouth
	case entity.EdgeDiagNESW:
		return base - d.rules.WallEdgeDiagonal
	case entity.EdgeDiagNWSE:
		return base + d.rules.WallEdgeDiagonal
	default: // east and west run along the cell's own row
		return base
	}
}

// UnknownCategoryCount returns how many distinct unlisted categories have
// been seen so far.
func (d *DepthSortEngine) UnknownCategoryCount() int {
	return len(d.unknownLogged)
}

// Less is the total paint-order comparator: ascending depth key, then
// category, then stable id, then split part. Totality over (id, part)
// makes repeated sorts of unchanged input byte-identical, which is what
// keeps equal-key entities from flickering between frames.
func (d *DepthSortEngine) Less(a, b *PaintItem) bool {
	if a.Depth != b.Depth {
		return a.Depth < b.Depth
	}
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	if a.Entity.ID != b.Entity.ID {
		return a.Entity.ID < b.Entity.ID
	}
	return a.Part < b.Part
}
