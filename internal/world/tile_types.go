package world

// TileType identifies a terrain tile kind. The byte values are the wire
// codes used by the terrain collaborator's chunk payloads, so the order
// here must never change.
type TileType byte

const (
	TileGrass TileType = iota // Temperate meadows
	TileDirt
	TileDirtRoad
	TileSea // Open water - swimmers split, snorkelers submerge
	TileBeach
	TileSand
	TileHotSpringWater // Teal spring pools - water for every terrain query
	TileQuarry         // Rocky mining terrain
	TileAsphalt        // Paved compound areas
	TileForest         // Dense tree cover
	TileTundra
	TileAlpine
	TileTundraGrass
)

// IsWater reports whether the tile is any form of water. Prefer this over
// comparing against TileSea so hot springs behave like water everywhere.
func (t TileType) IsWater() bool {
	return t == TileSea || t == TileHotSpringWater
}

// IsSeaWater reports whether the tile is specifically open sea.
func (t TileType) IsSeaWater() bool {
	return t == TileSea
}
