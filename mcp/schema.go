package mcp

// ToolBuilder assembles a ToolDefinition with a fluent API, keeping the
// registry declarations compact. Zero-parameter tools still get an "object"
// schema with empty properties and required lists.
type ToolBuilder struct {
	def ToolDefinition
}

// NewTool starts a tool definition with the given name and description.
func NewTool(name, description string) *ToolBuilder {
	return &ToolBuilder{def: ToolDefinition{
		Name:        name,
		Description: description,
		InputSchema: InputSchema{
			Type:       "object",
			Properties: map[string]Property{},
			Required:   []string{},
		},
	}}
}

// String adds a string parameter.
func (b *ToolBuilder) String(name, description string, required bool) *ToolBuilder {
	b.def.InputSchema.Properties[name] = Property{Type: "string", Description: description}
	if required {
		b.def.InputSchema.Required = append(b.def.InputSchema.Required, name)
	}
	return b
}

// Bool adds an optional boolean parameter with a default value.
func (b *ToolBuilder) Bool(name, description string, defaultValue bool) *ToolBuilder {
	b.def.InputSchema.Properties[name] = Property{
		Type:        "boolean",
		Description: description,
		Default:     defaultValue,
	}
	return b
}

// Build returns the finished definition.
func (b *ToolBuilder) Build() ToolDefinition {
	return b.def
}
