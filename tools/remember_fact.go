package tools

import (
	"encoding/json"
	"fmt"

	"github.com/ezhil-ai/ezhil/internal/memstore"
)

type RememberFactInput struct {
	Key   string `json:"key" jsonschema_description:"A concise, memorable key for the piece of information."`
	Value string `json:"value" jsonschema_description:"The detailed information to be stored."`
}

var RememberFactInputSchema = GenerateSchema[RememberFactInput]()

// RememberFactDefinition wraps the memory store's write path. An existing key
// is overwritten.
func RememberFactDefinition(mem *memstore.Store) ToolDefinition {
	return ToolDefinition{
		Name:        "remember_fact",
		Description: "Store a piece of information for the user to recall later. Use a concise, memorable key.",
		InputSchema: RememberFactInputSchema,
		Function: func(input json.RawMessage) (string, error) {
			var in RememberFactInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", fmt.Errorf("invalid arguments for remember_fact: %w", err)
			}
			if in.Key == "" || in.Value == "" {
				return "", fmt.Errorf("invalid arguments for remember_fact: key and value are both required")
			}
			return mem.Remember(in.Key, in.Value)
		},
	}
}
