// Package tools defines the function-tool definitions the chat layer
// advertises to models, plus JSON Schema validation for the arguments
// models send back. Execution belongs to the consuming application.
package tools

import "encoding/json"

// ---------------------------------------------------------------------------
// Definition
// ---------------------------------------------------------------------------

// Definition is the schema handed to the model for one callable tool.
type Definition struct {
	// Name is the function name the model calls.
	Name string `json:"name"`
	// Description tells the model when to use the tool.
	Description string `json:"description"`
	// Parameters is a JSON Schema object describing the arguments.
	Parameters json.RawMessage `json:"parameters"`
}

// ---------------------------------------------------------------------------
// SimpleSchema is a helper for building JSON Schema objects inline.
// ---------------------------------------------------------------------------

type SimpleSchema struct {
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
}

// MustSchema returns a JSON Schema for the given SimpleSchema.
func MustSchema(s SimpleSchema) json.RawMessage {
	s2 := map[string]any{
		"type":       "object",
		"properties": s.Properties,
	}
	if len(s.Required) > 0 {
		s2["required"] = s.Required
	}
	b, err := json.Marshal(s2)
	if err != nil {
		panic("tools.MustSchema: " + err.Error())
	}
	return b
}
