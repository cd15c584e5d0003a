package tools_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezhil-ai/ezhil/internal/calendar"
	"github.com/ezhil-ai/ezhil/internal/memstore"
	"github.com/ezhil-ai/ezhil/tools"
)

func find(t *testing.T, defs []tools.ToolDefinition, name string) tools.ToolDefinition {
	t.Helper()
	for _, d := range defs {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("tool %q not in registry", name)
	return tools.ToolDefinition{}
}

func call(t *testing.T, d tools.ToolDefinition, args any) (string, error) {
	t.Helper()
	b, err := json.Marshal(args)
	require.NoError(t, err)
	return d.Function(b)
}

func TestRememberFact_DelegatesToStore(t *testing.T) {
	dir := t.TempDir()
	mem := memstore.New(filepath.Join(dir, "memory_store.json"))
	defs := tools.Registry(mem, calendar.New(filepath.Join(dir, "calendar_store.json")))

	out, err := call(t, find(t, defs, "remember_fact"),
		tools.RememberFactInput{Key: "wifi", Value: "hunter2"})
	require.NoError(t, err)
	assert.Contains(t, out, "wifi")
	assert.Equal(t, "hunter2", mem.RecallAll()["wifi"])
}

func TestRememberFact_ValidationFailsBeforeStore(t *testing.T) {
	dir := t.TempDir()
	mem := memstore.New(filepath.Join(dir, "memory_store.json"))
	defs := tools.Registry(mem, calendar.New(filepath.Join(dir, "calendar_store.json")))
	def := find(t, defs, "remember_fact")

	_, err := call(t, def, tools.RememberFactInput{Key: "", Value: "orphan"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
	// Nothing reached the store.
	assert.Empty(t, mem.RecallAll())

	// Malformed JSON is also a validation error.
	_, err = def.Function([]byte(`{"key": 42}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
}

func TestSearchMemory_FormatsResults(t *testing.T) {
	dir := t.TempDir()
	mem := memstore.New(filepath.Join(dir, "memory_store.json"))
	defs := tools.Registry(mem, calendar.New(filepath.Join(dir, "calendar_store.json")))
	def := find(t, defs, "search_memory")

	out, err := call(t, def, tools.SearchMemoryInput{Query: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "No relevant memories found.", out)

	_, err = mem.Remember("birthday", "March 14th")
	require.NoError(t, err)
	out, err = call(t, def, tools.SearchMemoryInput{Query: "birthday"})
	require.NoError(t, err)
	assert.Contains(t, out, "Key: birthday, Value: March 14th")
}

func TestScheduleEvent_BusinessErrorSurfacesStoreText(t *testing.T) {
	dir := t.TempDir()
	cal := calendar.New(filepath.Join(dir, "calendar_store.json"))
	defs := tools.Registry(memstore.New(filepath.Join(dir, "memory_store.json")), cal)
	def := find(t, defs, "schedule_event")

	_, err := call(t, def, tools.ScheduleEventInput{Title: "Oops", EventDate: "2025-13-40"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
	assert.Empty(t, cal.ListAll())

	out, err := call(t, def, tools.ScheduleEventInput{Title: "Standup", EventDate: "2025-01-10", Time: "9:00 AM"})
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
	require.Len(t, cal.ListAll(), 1)
}

func TestSearchEvents_PassesStoreResultThrough(t *testing.T) {
	dir := t.TempDir()
	cal := calendar.New(filepath.Join(dir, "calendar_store.json"))
	defs := tools.Registry(memstore.New(filepath.Join(dir, "memory_store.json")), cal)
	def := find(t, defs, "search_events")

	_, err := cal.Schedule("Standup", "2025-01-10", "9:00 AM", "")
	require.NoError(t, err)

	out, err := call(t, def, tools.SearchEventsInput{Query: "2025-01-10"})
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")

	_, err = call(t, def, tools.SearchEventsInput{Query: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
}
