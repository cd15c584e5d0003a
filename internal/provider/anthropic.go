package provider

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// NewClient returns a client using API key from the env.
func NewClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

const DefaultModel = anthropic.ModelClaude3_7SonnetLatest

// Model maps a configured model name to the SDK type, falling back to the
// default when unset.
func Model(name string) anthropic.Model {
	if name == "" {
		return DefaultModel
	}
	return anthropic.Model(name)
}
