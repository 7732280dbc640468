package observer

import "go.opentelemetry.io/otel/attribute"

// Attribute keys for tool execution spans and metrics.
var (
	AttrToolName   = attribute.Key("tool.name")
	AttrToolStatus = attribute.Key("tool.status")
)
