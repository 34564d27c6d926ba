package netsync

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// messageSchema validates the sync envelope before any field is trusted.
// Payload internals are checked structurally here; semantic checks
// (array lengths, finite positions) happen in the decoders.
const messageSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["type"],
  "properties": {
    "type": {
      "enum": ["chunk_upsert", "chunk_delete", "entity_upsert", "entity_delete"]
    },
    "chunk": {
      "type": "object",
      "required": ["chunkX", "chunkY", "chunkSize", "tileTypes", "variants"],
      "properties": {
        "chunkX": {"type": "integer"},
        "chunkY": {"type": "integer"},
        "chunkSize": {"type": "integer", "minimum": 1},
        "tileTypes": {"type": "string"},
        "variants": {"type": "string"}
      }
    },
    "entity": {
      "type": "object",
      "required": ["id", "category"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "category": {"type": "string", "minLength": 1}
      }
    },
    "category": {"type": "string"},
    "id": {"type": "string"},
    "chunkX": {"type": "integer"},
    "chunkY": {"type": "integer"}
  },
  "allOf": [
    {
      "if": {"properties": {"type": {"const": "chunk_upsert"}}},
      "then": {"required": ["type", "chunk"]}
    },
    {
      "if": {"properties": {"type": {"const": "entity_upsert"}}},
      "then": {"required": ["type", "entity"]}
    },
    {
      "if": {"properties": {"type": {"const": "entity_delete"}}},
      "then": {"required": ["type", "category", "id"]}
    }
  ]
}`

var compiledSchema = jsonschema.MustCompileString("sync-message.schema.json", messageSchema)

// ValidateMessage checks a raw sync frame against the message schema.
func ValidateMessage(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("malformed sync message: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("sync message failed schema validation: %w", err)
	}
	return nil
}
