package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ezhil-ai/ezhil/internal/memstore"
)

type SearchMemoryInput struct {
	Query string `json:"query" jsonschema_description:"A concise query describing the information to look for."`
}

var SearchMemoryInputSchema = GenerateSchema[SearchMemoryInput]()

// SearchMemoryDefinition wraps fuzzy memory search and renders the hits for
// the model.
func SearchMemoryDefinition(mem *memstore.Store) ToolDefinition {
	return ToolDefinition{
		Name:        "search_memory",
		Description: "Search through the user's stored memories for relevant information. Provide a concise query.",
		InputSchema: SearchMemoryInputSchema,
		Function: func(input json.RawMessage) (string, error) {
			var in SearchMemoryInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", fmt.Errorf("invalid arguments for search_memory: %w", err)
			}
			if in.Query == "" {
				return "", fmt.Errorf("invalid arguments for search_memory: query is required")
			}

			results := mem.Search(in.Query, memstore.DefaultTopK)
			if len(results) == 0 {
				return "No relevant memories found.", nil
			}
			lines := make([]string, 0, len(results))
			for _, r := range results {
				lines = append(lines, fmt.Sprintf("Key: %s, Value: %s", r.Key, r.Value))
			}
			return fmt.Sprintf("Here's what I found in your memory for '%s':\n%s",
				in.Query, strings.Join(lines, "\n")), nil
		},
	}
}
