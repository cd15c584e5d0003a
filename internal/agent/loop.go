// Package agent drives one conversational turn: it alternates between model
// invocations and tool dispatch until the model produces a final answer or
// the stall guard fires.
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/ezhil-ai/ezhil/internal/conversation"
	"github.com/ezhil-ai/ezhil/internal/telemetry"
	"github.com/ezhil-ai/ezhil/tools"
)

// State is the loop's position within a turn.
type State int

const (
	// StateAgent awaits a model decision.
	StateAgent State = iota
	// StateTools dispatches the pending tool-call batch.
	StateTools
	// StateDone means a final answer is ready.
	StateDone
)

// stallFallback is returned when a turn is forced to terminate with no
// assistant text to show.
const stallFallback = "I'm still processing that. Please ask me again or rephrase."

// Loop runs turns against one model and one tool set. A Loop is stateless
// between turns; the conversation is passed in and returned per call.
type Loop struct {
	client    *anthropic.Client
	tools     []tools.ToolDefinition
	model     anthropic.Model
	maxTokens int64
	now       func() time.Time
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock overrides the wall clock used for the system prompt's date.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

func New(client *anthropic.Client, toolDefs []tools.ToolDefinition, model anthropic.Model, maxTokens int64, opts ...Option) *Loop {
	l := &Loop{
		client:    client,
		tools:     toolDefs,
		model:     model,
		maxTokens: maxTokens,
		now:       time.Now,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// RunTurn appends userMessage to entries and runs the state machine to
// completion. It returns the final answer and the updated conversation.
// Tool failures of any kind are folded into the conversation as error tool
// results; only a failed model invocation aborts the turn, and even then the
// conversation accumulated so far is returned alongside the error.
func (l *Loop) RunTurn(ctx context.Context, entries []conversation.Entry, userMessage string) (string, []conversation.Entry, error) {
	if _, ok := telemetry.TurnIDFromContext(ctx); !ok {
		ctx = telemetry.WithTurnID(ctx, telemetry.NewTurnID())
	}

	entries = append(entries, conversation.NewHuman(userMessage))
	state := StateAgent

	for state != StateDone {
		switch state {
		case StateAgent:
			entry, err := l.invokeModel(ctx, entries)
			if err != nil {
				return "", entries, fmt.Errorf("model invocation: %w", err)
			}
			entries = append(entries, entry)
			if entry.Kind == conversation.AssistantToolCall {
				state = StateTools
			} else {
				state = StateDone
			}

		case StateTools:
			for _, call := range conversation.PendingCalls(entries) {
				text, isErr := l.dispatch(ctx, call)
				entries = append(entries, conversation.NewToolResult(call.ID, text, isErr))
			}
			if conversation.Stalled(entries) {
				telemetry.Emit(ctx, "turn_stalled", map[string]any{
					"entries": len(entries),
				})
				state = StateDone
			} else {
				state = StateAgent
			}
		}
	}

	return answerFrom(entries), entries, nil
}

// invokeModel sends the partitioned conversation plus tool descriptors and
// converts the response into a single conversation entry.
func (l *Loop) invokeModel(ctx context.Context, entries []conversation.Entry) (conversation.Entry, error) {
	history, scratch := conversation.Partition(entries)

	params := anthropic.MessageNewParams{
		Model:     l.model,
		MaxTokens: l.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: l.systemPrompt()},
		},
		Messages: conversation.BuildMessages(history, scratch),
		Tools:    l.anthropicTools(),
	}

	telemetry.Emit(ctx, "model_invoked", map[string]any{
		"model":   string(l.model),
		"history": len(history),
		"scratch": len(scratch),
	})

	msg, err := l.client.Messages.New(ctx, params)
	if err != nil {
		return conversation.Entry{}, err
	}
	return entryFromMessage(msg), nil
}

// entryFromMessage tags the model output: any tool_use block makes the whole
// message a tool-call request; otherwise it is a final answer.
func entryFromMessage(msg *anthropic.Message) conversation.Entry {
	var text string
	var calls []conversation.ToolCall
	for _, block := range msg.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			if text == "" {
				text = v.Text
			} else {
				text += "\n" + v.Text
			}
		case anthropic.ToolUseBlock:
			calls = append(calls, conversation.ToolCall{
				ID:    v.ID,
				Name:  v.Name,
				Input: []byte(v.JSON.Input.Raw()),
			})
		}
	}
	if len(calls) > 0 {
		return conversation.NewAssistantToolCall(text, calls)
	}
	return conversation.NewAssistantFinal(text)
}

func (l *Loop) anthropicTools() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(l.tools))
	for _, t := range l.tools {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

func (l *Loop) systemPrompt() string {
	return fmt.Sprintf(
		"You are Ezhil, an AI assistant that remembers things and schedules events. Today's date is %s.\n"+
			"You MUST use the remember_fact tool to store any fact the user asks you to remember, and you MUST use the search_memory tool to answer any question about facts you have stored. Do not answer those from your own knowledge.\n"+
			"When the user asks about their schedule or calendar, use the search_events tool. When the user asks to schedule an event, use the schedule_event tool.\n"+
			"If no tool is needed, respond conversationally and helpfully.",
		l.now().Format("2006-01-02"),
	)
}

// answerFrom picks the turn's answer: the trailing final answer when the
// loop ended normally, the newest assistant text after a stall, or the
// generic fallback when the turn produced no text at all.
func answerFrom(entries []conversation.Entry) string {
	if n := len(entries); n > 0 && entries[n-1].Kind == conversation.AssistantFinal && entries[n-1].Text != "" {
		return entries[n-1].Text
	}
	if text := conversation.LastAssistantText(entries); text != "" {
		return text
	}
	return stallFallback
}
