package conversation

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// BuildMessages renders entries as Anthropic message params, history first,
// then scratch. Consecutive ToolResult entries collapse into a single user
// message so a tool_use batch and its results stay an adjacent pair, which
// the Messages API requires.
func BuildMessages(history, scratch []Entry) []anthropic.MessageParam {
	msgs := make([]anthropic.MessageParam, 0, len(history)+len(scratch))
	msgs = appendEntries(msgs, history)
	return appendEntries(msgs, scratch)
}

func appendEntries(msgs []anthropic.MessageParam, entries []Entry) []anthropic.MessageParam {
	var results []anthropic.ContentBlockParamUnion

	flushResults := func() {
		if len(results) > 0 {
			msgs = append(msgs, anthropic.NewUserMessage(results...))
			results = nil
		}
	}

	for _, e := range entries {
		if e.Kind != ToolResult {
			flushResults()
		}
		switch e.Kind {
		case Human:
			msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(e.Text)))
		case AssistantFinal:
			msgs = append(msgs, anthropic.NewAssistantMessage(anthropic.NewTextBlock(e.Text)))
		case AssistantToolCall:
			var blocks []anthropic.ContentBlockParamUnion
			if e.Text != "" {
				blocks = append(blocks, anthropic.NewTextBlock(e.Text))
			}
			for _, c := range e.ToolCalls {
				blocks = append(blocks, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						ID:    c.ID,
						Name:  c.Name,
						Input: c.Input,
					},
				})
			}
			msgs = append(msgs, anthropic.NewAssistantMessage(blocks...))
		case ToolResult:
			results = append(results, anthropic.NewToolResultBlock(e.ToolCallID, e.Text, e.IsError))
		}
	}
	flushResults()
	return msgs
}
