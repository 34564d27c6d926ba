package entity

// Category tags every renderable entity kind the engine knows how to
// depth-sort. The set is closed on purpose: the sort-key table in the
// render package switches exhaustively over these values, so adding a
// category here without a sort rule is a compile-visible configuration
// gap rather than a silent fallback.
type Category int

const (
	CategoryUnknown Category = iota

	// Actors
	CategoryPlayer
	CategoryWildAnimal
	CategoryDrone

	// Harvestable resources
	CategoryTree
	CategoryStone
	CategoryHemp
	CategoryMushroom
	CategoryCorn
	CategoryPumpkin

	// Terrain features
	CategoryBasaltColumn
	CategoryFumarole
	CategoryTidePoolRock

	// Building cells
	CategoryFoundation
	CategoryWall
	CategoryDoor
	CategoryShelter

	// Placeables
	CategoryCampfire
	CategoryFurnace
	CategoryBarbecue
	CategoryCookingStation
	CategoryBarrel
	CategoryStorageBox
	CategoryRefrigerator
	CategoryRepairBench
	CategorySleepingBag
	CategoryStash
	CategoryLamppost
	CategoryBeacon
	CategoryFishTrap

	// World litter and decoration
	CategoryDroppedItem
	CategoryBones
	CategoryPlantedSeed
	CategoryBeehive
	CategoryCairn
	CategoryMonumentPart
	CategoryGrassDecal

	categoryCount // sentinel, keep last
)

var categoryNames = map[Category]string{
	CategoryUnknown:        "unknown",
	CategoryPlayer:         "player",
	CategoryWildAnimal:     "wild_animal",
	CategoryDrone:          "drone",
	CategoryTree:           "tree",
	CategoryStone:          "stone",
	CategoryHemp:           "hemp",
	CategoryMushroom:       "mushroom",
	CategoryCorn:           "corn",
	CategoryPumpkin:        "pumpkin",
	CategoryBasaltColumn:   "basalt_column",
	CategoryFumarole:       "fumarole",
	CategoryTidePoolRock:   "tide_pool_rock",
	CategoryFoundation:     "foundation",
	CategoryWall:           "wall",
	CategoryDoor:           "door",
	CategoryShelter:        "shelter",
	CategoryCampfire:       "campfire",
	CategoryFurnace:        "furnace",
	CategoryBarbecue:       "barbecue",
	CategoryCookingStation: "cooking_station",
	CategoryBarrel:         "barrel",
	CategoryStorageBox:     "storage_box",
	CategoryRefrigerator:   "refrigerator",
	CategoryRepairBench:    "repair_bench",
	CategorySleepingBag:    "sleeping_bag",
	CategoryStash:          "stash",
	CategoryLamppost:       "lamppost",
	CategoryBeacon:         "beacon",
	CategoryFishTrap:       "fish_trap",
	CategoryDroppedItem:    "dropped_item",
	CategoryBones:          "bones",
	CategoryPlantedSeed:    "planted_seed",
	CategoryBeehive:        "beehive",
	CategoryCairn:          "cairn",
	CategoryMonumentPart:   "monument_part",
	CategoryGrassDecal:     "grass_decal",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for cat, name := range categoryNames {
		m[name] = cat
	}
	return m
}()

// Known reports whether the category is part of the closed set the
// depth-sort rule table covers.
func (c Category) Known() bool {
	return c > CategoryUnknown && c < categoryCount
}

// String returns the wire/config name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// CategoryFromName resolves a wire/config name to a Category. Unlisted
// names resolve to CategoryUnknown with ok=false.
func CategoryFromName(name string) (Category, bool) {
	cat, ok := categoriesByName[name]
	if !ok {
		return CategoryUnknown, false
	}
	return cat, true
}

// AllCategories returns every known category except the unknown sentinel,
// in stable (declaration) order.
func AllCategories() []Category {
	cats := make([]Category, 0, int(categoryCount)-1)
	for c := CategoryPlayer; c < categoryCount; c++ {
		cats = append(cats, c)
	}
	return cats
}
