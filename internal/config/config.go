package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all engine configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Viewport ViewportConfig `yaml:"viewport"`
	Depth    DepthConfig    `yaml:"depth"`
	Building BuildingConfig `yaml:"building"`
	Sync     SyncConfig     `yaml:"sync"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	TileSize  int `yaml:"tile_size"`  // pixels per tile edge
	ChunkSize int `yaml:"chunk_size"` // tiles per chunk edge
}

// ViewportConfig controls how far beyond the camera rectangle entities
// stay live, so sprites wider than their anchor never pop at the edge.
type ViewportConfig struct {
	DefaultPadding  float64            `yaml:"default_padding"`
	CategoryPadding map[string]float64 `yaml:"category_padding"`
	TileBuffer      int                `yaml:"tile_buffer"` // extra tiles around the visible rect
}

// DepthConfig holds the per-category paint-order offsets. These are
// presentation tuning; the sort only relies on their relative ordering.
type DepthConfig struct {
	FeetOffset       float64 `yaml:"feet_offset"`        // visual sprite base below the anchor
	SwimTopOffset    float64 `yaml:"swim_top_offset"`    // top half of a surface swimmer
	ShelterOffset    float64 `yaml:"shelter_offset"`     // shelters sort behind their contents
	FoundationOffset float64 `yaml:"foundation_offset"`  // foundations sort behind everything on them
	WallEdgeNorth    float64 `yaml:"wall_edge_north"`    // north wall sorts with the row above
	WallEdgeSouth    float64 `yaml:"wall_edge_south"`    // south wall sorts one row below
	WallEdgeDiagonal float64 `yaml:"wall_edge_diagonal"` // diagonals split the difference
}

type BuildingConfig struct {
	CellSize           int     `yaml:"cell_size"`           // pixels per foundation cell edge
	EnclosureThreshold float64 `yaml:"enclosure_threshold"` // 1.0 = every perimeter edge covered
}

type SyncConfig struct {
	ServerURL      string `yaml:"server_url"`
	ReconnectDelay int    `yaml:"reconnect_delay"` // seconds
}

var GlobalConfig *Config

// LoadConfig loads the configuration from config.yaml
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()

	// Set global config for easy access
	GlobalConfig = &config

	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// applyDefaults fills zero-valued fields that would break the frame
// pipeline (a zero tile size makes every world-to-tile division collapse).
func (c *Config) applyDefaults() {
	if c.World.TileSize == 0 {
		c.World.TileSize = 48
	}
	if c.World.ChunkSize == 0 {
		c.World.ChunkSize = 16
	}
	if c.Viewport.DefaultPadding == 0 {
		c.Viewport.DefaultPadding = 96
	}
	if c.Viewport.TileBuffer == 0 {
		c.Viewport.TileBuffer = 2
	}
	if c.Depth.SwimTopOffset == 0 {
		c.Depth.SwimTopOffset = float64(c.World.TileSize)
	}
	if c.Building.CellSize == 0 {
		c.Building.CellSize = c.World.TileSize
	}
	if c.Building.EnclosureThreshold == 0 {
		c.Building.EnclosureThreshold = 1.0
	}
}

// Validate rejects configurations whose depth offsets cannot satisfy the
// paint-order guarantees (a non-positive swim-top offset would collapse
// the two halves of a surface swimmer onto the same key).
func (c *Config) Validate() error {
	if c.Depth.SwimTopOffset <= 0 {
		return fmt.Errorf("depth.swim_top_offset must be positive, got %v", c.Depth.SwimTopOffset)
	}
	if c.Depth.ShelterOffset < 0 {
		return fmt.Errorf("depth.shelter_offset must not be negative, got %v", c.Depth.ShelterOffset)
	}
	if c.World.TileSize <= 0 || c.World.ChunkSize <= 0 {
		return fmt.Errorf("world.tile_size and world.chunk_size must be positive")
	}
	if c.Building.EnclosureThreshold < 0 || c.Building.EnclosureThreshold > 1 {
		return fmt.Errorf("building.enclosure_threshold must be within [0,1], got %v", c.Building.EnclosureThreshold)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() float64 {
	return float64(c.World.TileSize)
}

func (c *Config) GetChunkSize() int {
	return c.World.ChunkSize
}

// GetCategoryPadding returns the culling padding for a category, falling
// back to the default when no override is configured.
func (c *Config) GetCategoryPadding(category string) float64 {
	if pad, exists := c.Viewport.CategoryPadding[category]; exists {
		return pad
	}
	return c.Viewport.DefaultPadding
}
