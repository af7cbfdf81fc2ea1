package agent

import (
	"context"
)

// Tool is one callable exposed to LLM function calling.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns the JSON schema for tool arguments.
	Parameters() map[string]interface{}

	// Execute runs the tool with validated arguments.
	Execute(ctx context.Context, args map[string]interface{}) (interface{}, error)
}
