// Package tools defines the actions advertised to the language model.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Store tools: remember_fact, search_memory, schedule_event, search_events.
//   - Handlers validate arguments before touching a store; validation and
//     store-level failures are both returned as errors for the dispatcher to
//     relay to the model.
package tools
