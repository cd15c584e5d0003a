package tools

import (
	"encoding/json"
	"fmt"

	"github.com/ezhil-ai/ezhil/internal/calendar"
)

type SearchEventsInput struct {
	Query string `json:"query" jsonschema_description:"The date to search events for, in YYYY-MM-DD format, or one of the keywords 'today', 'tomorrow', 'this week'."`
}

var SearchEventsInputSchema = GenerateSchema[SearchEventsInput]()

// SearchEventsDefinition wraps calendar search; the store already renders a
// human-readable summary, including the no-match cases.
func SearchEventsDefinition(cal *calendar.Store) ToolDefinition {
	return ToolDefinition{
		Name:        "search_events",
		Description: "Search for calendar events by a specific date (YYYY-MM-DD) or keywords like 'today', 'tomorrow', 'this week'. Use this to check the user's schedule.",
		InputSchema: SearchEventsInputSchema,
		Function: func(input json.RawMessage) (string, error) {
			var in SearchEventsInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", fmt.Errorf("invalid arguments for search_events: %w", err)
			}
			if in.Query == "" {
				return "", fmt.Errorf("invalid arguments for search_events: query is required")
			}
			return cal.Search(in.Query), nil
		},
	}
}
