package tools

import (
	"github.com/ezhil-ai/ezhil/internal/calendar"
	"github.com/ezhil-ai/ezhil/internal/memstore"
)

// Registry returns all tool definitions wired to the given stores.
func Registry(mem *memstore.Store, cal *calendar.Store) []ToolDefinition {
	return []ToolDefinition{
		RememberFactDefinition(mem),
		SearchMemoryDefinition(mem),
		ScheduleEventDefinition(cal),
		SearchEventsDefinition(cal),
	}
}
