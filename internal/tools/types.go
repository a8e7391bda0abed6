package tools

import (
	"context"

	"legal-research-assistant/pkg/llmprovider"
)

// Tool represents a callable capability that can be exposed to an LLM via
// function calling or executed directly over HTTP.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// Registry manages available tools.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates a new tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *Registry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}

// ToFunctionDefinitions converts tools to LLM function calling format.
func (r *Registry) ToFunctionDefinitions() []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return tools
}
