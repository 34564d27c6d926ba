package netsync

import (
	"encoding/base64"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"driftshore/internal/world"
)

// Shared stateless codecs; both are safe for concurrent use.
var (
	tileDecoder, _ = zstd.NewReader(nil)
	tileEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
)

// decodeTileArray reverses the terrain collaborator's encoding: base64
// over a zstd frame over raw tile bytes.
func decodeTileArray(encoded string, want int) ([]byte, error) {
	compressed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("tile array is not valid base64: %w", err)
	}
	raw, err := tileDecoder.DecodeAll(compressed, make([]byte, 0, want))
	if err != nil {
		return nil, fmt.Errorf("tile array failed zstd decode: %w", err)
	}
	if len(raw) != want {
		return nil, fmt.Errorf("tile array decoded to %d bytes, want %d", len(raw), want)
	}
	return raw, nil
}

// EncodeTileArray is the inverse of the chunk decoder, used by tests and
// by the replay tooling to fabricate chunk payloads.
func EncodeTileArray(raw []byte) string {
	compressed := tileEncoder.EncodeAll(raw, nil)
	return base64.StdEncoding.EncodeToString(compressed)
}

// DecodeChunk turns a validated chunk payload into a cache-ready chunk.
func DecodeChunk(p *ChunkPayload) (*world.TileChunk, error) {
	if p == nil {
		return nil, fmt.Errorf("nil chunk payload")
	}
	want := p.ChunkSize * p.ChunkSize
	if p.ChunkSize <= 0 {
		return nil, fmt.Errorf("chunk (%d,%d) has invalid size %d", p.ChunkX, p.ChunkY, p.ChunkSize)
	}
	tiles, err := decodeTileArray(p.TileTypes, want)
	if err != nil {
		return nil, fmt.Errorf("chunk (%d,%d) tile types: %w", p.ChunkX, p.ChunkY, err)
	}
	variants, err := decodeTileArray(p.Variants, want)
	if err != nil {
		return nil, fmt.Errorf("chunk (%d,%d) variants: %w", p.ChunkX, p.ChunkY, err)
	}
	return &world.TileChunk{
		ChunkX:    p.ChunkX,
		ChunkY:    p.ChunkY,
		ChunkSize: p.ChunkSize,
		TileTypes: tiles,
		Variants:  variants,
	}, nil
}
