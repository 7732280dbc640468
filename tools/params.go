package tools

import (
	"encoding/json"
	"fmt"
)

// decodeArgs parses the raw tools/call arguments object. Tool parameters
// are dynamic JSON owned by the client, so they are inspected as a generic
// map rather than forced into per-tool structs.
func decodeArgs(args json.RawMessage) (map[string]any, error) {
	params := map[string]any{}
	if len(args) == 0 {
		return params, nil
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return params, nil
}

// requireString extracts a required string parameter. A missing or
// non-string value is an error naming the parameter.
func requireString(params map[string]any, name string) (string, error) {
	s, ok := params[name].(string)
	if !ok {
		return "", fmt.Errorf("%s parameter is required", name)
	}
	return s, nil
}

// optionalString extracts an optional string parameter, returning nil when
// it is absent or not a string.
func optionalString(params map[string]any, name string) *string {
	if s, ok := params[name].(string); ok {
		return &s
	}
	return nil
}

// optionalBool extracts an optional boolean parameter, falling back to
// defaultValue when absent or not a boolean.
func optionalBool(params map[string]any, name string, defaultValue bool) bool {
	if b, ok := params[name].(bool); ok {
		return b
	}
	return defaultValue
}
