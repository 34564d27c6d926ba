package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TileData holds the per-tile properties loaded from assets/tiles.yaml.
type TileData struct {
	Name     string `yaml:"name"`
	Code     int    `yaml:"code"` // wire code, must match the TileType constant
	Water    bool   `yaml:"water"`
	Walkable bool   `yaml:"walkable"`
	Color    [3]int `yaml:"color"` // debug-view fill color
}

// TileRegistryConfig is the yaml document shape for the tile registry.
type TileRegistryConfig struct {
	TileData map[string]TileData `yaml:"tiles"`
}

// TileRegistry maps between wire codes, config keys and tile properties
type TileRegistry struct {
	tileData  map[string]*TileData
	typeToKey map[TileType]string
	keyToType map[string]TileType
}

// Global tile registry instance
var GlobalTileRegistry *TileRegistry

// NewTileRegistry creates an empty tile registry
func NewTileRegistry() *TileRegistry {
	return &TileRegistry{
		tileData:  make(map[string]*TileData),
		typeToKey: make(map[TileType]string),
		keyToType: make(map[string]TileType),
	}
}

// LoadTileConfig loads tile definitions from a YAML file
func (tr *TileRegistry) LoadTileConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read tile config file: %w", err)
	}

	var tileConfig TileRegistryConfig
	err = yaml.Unmarshal(data, &tileConfig)
	if err != nil {
		return fmt.Errorf("failed to parse tile config: %w", err)
	}

	tr.tileData = make(map[string]*TileData)
	tr.typeToKey = make(map[TileType]string)
	tr.keyToType = make(map[string]TileType)

	for key, tileData := range tileConfig.TileData {
		// Make a copy to avoid pointer issues
		tileCopy := tileData
		tr.tileData[key] = &tileCopy

		tileType := TileType(tileData.Code)
		tr.typeToKey[tileType] = key
		tr.keyToType[key] = tileType
	}

	return nil
}

// GetTileData returns the configuration data for a tile type
func (tr *TileRegistry) GetTileData(tileType TileType) *TileData {
	key, ok := tr.typeToKey[tileType]
	if !ok {
		return nil
	}
	return tr.tileData[key]
}

// GetTileTypeFromKey returns the TileType for a given string key
func (tr *TileRegistry) GetTileTypeFromKey(key string) (TileType, bool) {
	tileType, ok := tr.keyToType[key]
	return tileType, ok
}

// GetTileKey returns the configuration key for a tile type
func (tr *TileRegistry) GetTileKey(tileType TileType) string {
	return tr.typeToKey[tileType]
}

// IsWater returns whether a tile type is water. Registry data wins when
// present; unknown tiles fall back to the wire-code check so a stale
// tiles.yaml never turns the sea walkable.
func (tr *TileRegistry) IsWater(tileType TileType) bool {
	data := tr.GetTileData(tileType)
	if data == nil {
		return tileType.IsWater()
	}
	return data.Water
}

// IsWalkable returns whether a tile type is walkable
func (tr *TileRegistry) IsWalkable(tileType TileType) bool {
	data := tr.GetTileData(tileType)
	if data == nil {
		return true // Default to walkable for unknown tiles
	}
	return data.Walkable
}

// GetColor returns the debug-view fill color for a tile type
func (tr *TileRegistry) GetColor(tileType TileType) [3]int {
	data := tr.GetTileData(tileType)
	if data == nil {
		return [3]int{60, 180, 60} // Default green
	}
	return data.Color
}

// GetAllTileKeys returns all available tile keys from the loaded configuration
func (tr *TileRegistry) GetAllTileKeys() []string {
	keys := make([]string, 0, len(tr.tileData))
	for key := range tr.tileData {
		keys = append(keys, key)
	}
	return keys
}

// IsWaterTile reports whether a tile type is water using the global
// registry when loaded, falling back to the wire-code check otherwise.
func IsWaterTile(tileType TileType) bool {
	if GlobalTileRegistry != nil {
		return GlobalTileRegistry.IsWater(tileType)
	}
	return tileType.IsWater()
}

// TileColor returns the debug fill color for a tile type via the global
// registry, with the default green when no registry is loaded.
func TileColor(tileType TileType) [3]int {
	if GlobalTileRegistry != nil {
		return GlobalTileRegistry.GetColor(tileType)
	}
	return [3]int{60, 180, 60}
}
