// Package telemetry emits structured events about turns and tool execution.
// Events go through a process-level zerolog logger; the turn ID travels in
// the context so every event within one turn carries the same identifier.
package telemetry

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).Level(zerolog.Disabled)
)

// SetLogger installs the process logger used for event emission.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Emit logs one named event with the given fields at debug level, tagging it
// with the turn ID from ctx when present.
func Emit(ctx context.Context, event string, fields map[string]any) {
	mu.RLock()
	l := logger
	mu.RUnlock()

	e := l.Debug()
	if id, ok := TurnIDFromContext(ctx); ok {
		e = e.Str("turn_id", id)
	}
	e.Fields(fields).Msg(event)
}
