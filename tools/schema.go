package tools

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"
)

// ToolDefinition describes one action the model may invoke: a name, a
// natural-language description the model uses to pick it, a strict input
// schema, and the handler. Handlers return either the string result fed back
// to the model or an error; both validation and business failures travel as
// errors and are surfaced to the model as error tool results, never as turn
// aborts.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema anthropic.ToolInputSchemaParam
	Function    func(input json.RawMessage) (string, error)
}

// GenerateSchema derives the JSON input schema for T from its struct tags.
// Additional properties are disallowed so malformed model arguments fail
// validation instead of being silently dropped.
func GenerateSchema[T any]() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return anthropic.ToolInputSchemaParam{
		Properties: schema.Properties,
		Required:   schema.Required,
	}
}
