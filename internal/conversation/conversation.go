// Package conversation defines the tagged message log a turn operates on.
//
// Every entry carries an explicit kind so loop steps can handle the log
// exhaustively instead of duck-typing on shape:
//   - Human: a user message.
//   - AssistantFinal: a conversational answer, no tool calls.
//   - AssistantToolCall: the model asking for one or more tool invocations.
//   - ToolResult: the outcome of one tool invocation, tagged with the
//     originating call's correlation ID.
package conversation

import "encoding/json"

type Kind string

const (
	Human             Kind = "human"
	AssistantFinal    Kind = "assistant"
	AssistantToolCall Kind = "assistant_tool_call"
	ToolResult        Kind = "tool_result"
)

// ToolCall is one requested tool invocation. ID is the correlation
// identifier pairing the request with its eventual ToolResult entry.
type ToolCall struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// Entry is one element of the conversation log. Which fields are meaningful
// depends on Kind.
type Entry struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text,omitempty"`

	// AssistantToolCall only.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolResult only.
	ToolCallID string `json:"tool_call_id,omitempty"`
	IsError    bool   `json:"is_error,omitempty"`
}

func NewHuman(text string) Entry {
	return Entry{Kind: Human, Text: text}
}

func NewAssistantFinal(text string) Entry {
	return Entry{Kind: AssistantFinal, Text: text}
}

func NewAssistantToolCall(text string, calls []ToolCall) Entry {
	return Entry{Kind: AssistantToolCall, Text: text, ToolCalls: calls}
}

func NewToolResult(callID, text string, isError bool) Entry {
	return Entry{Kind: ToolResult, Text: text, ToolCallID: callID, IsError: isError}
}

// Partition splits entries into conversational history (human turns and
// final assistant answers) and pending scratch (tool-call requests and tool
// results newer than the last final answer). Tool exchanges that were already
// resolved into a final answer are spent; they are represented in history by
// that answer and excluded from scratch.
func Partition(entries []Entry) (history, scratch []Entry) {
	lastFinal := -1
	for i, e := range entries {
		if e.Kind == AssistantFinal {
			lastFinal = i
		}
	}
	for i, e := range entries {
		switch e.Kind {
		case Human, AssistantFinal:
			history = append(history, e)
		case AssistantToolCall, ToolResult:
			if i > lastFinal {
				scratch = append(scratch, e)
			}
		}
	}
	return history, scratch
}

// PendingCalls returns the tool calls from the newest AssistantToolCall entry
// that do not yet have a ToolResult after it.
func PendingCalls(entries []Entry) []ToolCall {
	last := -1
	for i, e := range entries {
		if e.Kind == AssistantToolCall {
			last = i
		}
	}
	if last == -1 {
		return nil
	}

	answered := map[string]bool{}
	for _, e := range entries[last+1:] {
		if e.Kind == ToolResult {
			answered[e.ToolCallID] = true
		}
	}
	var pending []ToolCall
	for _, c := range entries[last].ToolCalls {
		if !answered[c.ID] {
			pending = append(pending, c)
		}
	}
	return pending
}

// Stalled reports the no-progress condition: the two newest entries are both
// tool results answering the same correlation ID.
func Stalled(entries []Entry) bool {
	n := len(entries)
	if n < 2 {
		return false
	}
	a, b := entries[n-2], entries[n-1]
	return a.Kind == ToolResult && b.Kind == ToolResult && a.ToolCallID == b.ToolCallID
}

// LastAssistantText returns the text of the newest assistant entry (final or
// tool-call) that carries any, or "" when none does.
func LastAssistantText(entries []Entry) string {
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if (e.Kind == AssistantFinal || e.Kind == AssistantToolCall) && e.Text != "" {
			return e.Text
		}
	}
	return ""
}
