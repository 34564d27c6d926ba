// Package netsync is the ingestion boundary for the network-sync and
// terrain collaborators. Everything crossing the wire is validated,
// decompressed and normalized here, so the engine only ever sees
// canonical records and well-formed chunks.
package netsync

import (
	"fmt"
	"math"

	"driftshore/internal/entity"
)

// Message is the envelope for every sync frame from the server.
type Message struct {
	Type   string         `json:"type"`
	Chunk  *ChunkPayload  `json:"chunk,omitempty"`
	Entity *EntityPayload `json:"entity,omitempty"`

	// Delete targets.
	Category string `json:"category,omitempty"`
	ID       string `json:"id,omitempty"`
	ChunkX   int    `json:"chunkX,omitempty"`
	ChunkY   int    `json:"chunkY,omitempty"`
}

// Message type tags.
const (
	MsgChunkUpsert  = "chunk_upsert"
	MsgChunkDelete  = "chunk_delete"
	MsgEntityUpsert = "entity_upsert"
	MsgEntityDelete = "entity_delete"
)

// ChunkPayload carries one terrain chunk. Tile and variant arrays arrive
// zstd-compressed and base64-encoded.
type ChunkPayload struct {
	ChunkX    int    `json:"chunkX"`
	ChunkY    int    `json:"chunkY"`
	ChunkSize int    `json:"chunkSize"`
	TileTypes string `json:"tileTypes"`
	Variants  string `json:"variants"`
}

// EntityPayload mirrors the upstream entity schema, aliases included.
// The server schema has evolved field names over time (posX vs
// positionX, onWater vs isOnWater); every alias is resolved exactly once
// in Normalize and nowhere else.
type EntityPayload struct {
	ID       string `json:"id"`
	Category string `json:"category"`

	PosX      *float64 `json:"posX,omitempty"`
	PositionX *float64 `json:"positionX,omitempty"`
	PosY      *float64 `json:"posY,omitempty"`
	PositionY *float64 `json:"positionY,omitempty"`

	Radius          *float64 `json:"radius,omitempty"`
	CollisionRadius *float64 `json:"collisionRadius,omitempty"`

	CellX *int `json:"cellX,omitempty"`
	CellY *int `json:"cellY,omitempty"`
	Edge  *int `json:"edge,omitempty"`

	OnWater      *bool `json:"onWater,omitempty"`
	IsOnWater    *bool `json:"isOnWater,omitempty"`
	Snorkeling   *bool `json:"snorkeling,omitempty"`
	IsSnorkeling *bool `json:"isSnorkeling,omitempty"`
}

// Normalize resolves aliases into a canonical Record. Entities with no
// usable position are rejected; structural cells fall back to a position
// derived from their cell when the anchor is missing.
func (p *EntityPayload) Normalize(cellSize float64) (*entity.Record, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("entity payload without id")
	}
	category, _ := entity.CategoryFromName(p.Category)

	rec := &entity.Record{
		ID:       p.ID,
		Category: category,
	}

	if p.CellX != nil {
		rec.CellX = *p.CellX
	}
	if p.CellY != nil {
		rec.CellY = *p.CellY
	}
	if p.Edge != nil {
		rec.Edge = entity.BuildingEdge(*p.Edge)
	}

	x, okX := firstFloat(p.PosX, p.PositionX)
	y, okY := firstFloat(p.PosY, p.PositionY)
	switch {
	case okX && okY:
		rec.X, rec.Y = x, y
	case p.CellX != nil && p.CellY != nil:
		// Structural cells anchor at their cell center.
		rec.X = (float64(*p.CellX) + 0.5) * cellSize
		rec.Y = (float64(*p.CellY) + 0.5) * cellSize
	default:
		return nil, fmt.Errorf("entity %q has no position", p.ID)
	}
	if math.IsNaN(rec.X) || math.IsNaN(rec.Y) || math.IsInf(rec.X, 0) || math.IsInf(rec.Y, 0) {
		return nil, fmt.Errorf("entity %q has non-finite position (%v, %v)", p.ID, rec.X, rec.Y)
	}

	if r, ok := firstFloat(p.Radius, p.CollisionRadius); ok {
		rec.FootprintRadius = r
	}
	rec.OnWater = firstBool(p.OnWater, p.IsOnWater)
	rec.Snorkeling = firstBool(p.Snorkeling, p.IsSnorkeling)

	return rec, nil
}

func firstFloat(candidates ...*float64) (float64, bool) {
	for _, c := range candidates {
		if c != nil {
			return *c, true
		}
	}
	return 0, false
}

func firstBool(candidates ...*bool) bool {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return false
}
