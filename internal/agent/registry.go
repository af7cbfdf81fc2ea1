package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"daily-plan-assistant/pkg/log"
)

// Registry manages available tools. Tools keep their registration order
// so the rendered catalog is stable across restarts.
type Registry struct {
	l       log.Logger
	tools   []Tool
	index   map[string]int
	schemas map[string]*jsonschema.Schema
}

// NewRegistry creates an empty tool registry.
func NewRegistry(l log.Logger) *Registry {
	return &Registry{
		l:       l,
		index:   make(map[string]int),
		schemas: make(map[string]*jsonschema.Schema),
	}
}

// Register adds a tool and compiles its parameter schema. A tool with a
// schema that does not compile is rejected up front rather than failing
// on the first call.
func (r *Registry) Register(tool Tool) error {
	name := tool.Name()
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}

	raw, err := json.Marshal(tool.Parameters())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSchema, name, err)
	}
	schema, err := jsonschema.CompileString(name+".json", string(raw))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSchema, name, err)
	}

	r.index[name] = len(r.tools)
	r.tools = append(r.tools, tool)
	r.schemas[name] = schema
	return nil
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.tools[i], true
}

// List returns all registered tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for _, tool := range r.tools {
		names = append(names, tool.Name())
	}
	return names
}

// Execute validates the arguments against the tool's schema and runs it.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	if args == nil {
		args = map[string]interface{}{}
	}
	if err := r.schemas[name].Validate(interface{}(args)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArguments, name, err)
	}

	r.l.Infof(ctx, "agent.Execute tool=%s args=%v", name, args)
	return tool.Execute(ctx, args)
}

// Catalog renders the OpenAI tools-format catalog.
func (r *Registry) Catalog() []map[string]interface{} {
	catalog := make([]map[string]interface{}, 0, len(r.tools))
	for _, tool := range r.tools {
		catalog = append(catalog, map[string]interface{}{
			"type": "function",
			"function": map[string]interface{}{
				"name":        tool.Name(),
				"description": tool.Description(),
				"parameters":  tool.Parameters(),
			},
		})
	}
	return catalog
}
