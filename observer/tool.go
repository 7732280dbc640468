package observer

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/logseq-mcp/logseq-mcp/mcp"
)

// WrapTools returns instrumented copies of the given tool handlers. Each
// execution gets a span, a counter increment, a duration sample, and a
// structured log record. Definitions pass through untouched so the
// advertised schemas are unchanged.
func WrapTools(handlers []mcp.ToolHandler, inst *Instruments) []mcp.ToolHandler {
	wrapped := make([]mcp.ToolHandler, len(handlers))
	for i, h := range handlers {
		wrapped[i] = wrapTool(h, inst)
	}
	return wrapped
}

func wrapTool(h mcp.ToolHandler, inst *Instruments) mcp.ToolHandler {
	name := h.Definition.Name
	execute := h.Execute

	h.Execute = func(ctx context.Context, args json.RawMessage) (any, error) {
		ctx, span := inst.Tracer.Start(ctx, "tool.execute", trace.WithAttributes(
			AttrToolName.String(name),
		))
		defer span.End()
		start := time.Now()

		result, err := execute(ctx, args)

		durationMs := float64(time.Since(start).Milliseconds())
		status := "ok"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(AttrToolStatus.String(status))

		inst.ToolExecutions.Add(ctx, 1, metric.WithAttributes(
			AttrToolName.String(name),
			attribute.String("status", status),
		))
		inst.ToolDuration.Record(ctx, durationMs, metric.WithAttributes(
			AttrToolName.String(name),
		))

		// Structured log
		var rec otellog.Record
		rec.SetSeverity(otellog.SeverityInfo)
		rec.SetBody(otellog.StringValue("tool executed"))
		rec.AddAttributes(
			otellog.String("tool.name", name),
			otellog.String("tool.status", status),
			otellog.Float64("tool.duration_ms", durationMs),
		)
		inst.Logger.Emit(ctx, rec)

		return result, err
	}
	return h
}
