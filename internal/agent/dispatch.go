package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/ezhil-ai/ezhil/internal/conversation"
	"github.com/ezhil-ai/ezhil/internal/telemetry"
	"github.com/ezhil-ai/ezhil/tools"
)

// dispatch executes one tool call and returns the result text for the model.
// Failures never abort the turn: an unknown tool, invalid arguments, or a
// store-level error all come back as error-flagged result text the model can
// react to.
func (l *Loop) dispatch(ctx context.Context, call conversation.ToolCall) (string, bool) {
	var def *tools.ToolDefinition
	for i := range l.tools {
		if l.tools[i].Name == call.Name {
			def = &l.tools[i]
			break
		}
	}

	emit := func(durationMs int64, outputSize int, errStr string) {
		fields := map[string]any{
			"tool_name":   call.Name,
			"tool_use_id": call.ID,
			"duration_ms": durationMs,
			"input_size":  len(call.Input),
			"output_size": outputSize,
		}
		if errStr != "" {
			fields["error"] = errStr
		}
		telemetry.Emit(ctx, "tool_exec", fields)
	}

	start := time.Now()
	if def == nil {
		emit(time.Since(start).Milliseconds(), 0, "tool not found")
		return fmt.Sprintf("tool not found: %s", call.Name), true
	}

	resp, err := def.Function(call.Input)
	if err != nil {
		// Telemetry carries a generic marker; the detailed message goes to
		// the model in the result text.
		emit(time.Since(start).Milliseconds(), 0, "tool error")
		return err.Error(), true
	}
	emit(time.Since(start).Milliseconds(), len(resp), "")
	return resp, false
}
