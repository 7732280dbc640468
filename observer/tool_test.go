package observer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/logseq-mcp/logseq-mcp/mcp"
)

// noopInstruments builds instruments against the default (no-op) global
// providers, enough to exercise the wrapping logic.
func noopInstruments(t *testing.T) *Instruments {
	t.Helper()
	inst, err := newInstruments()
	if err != nil {
		t.Fatal(err)
	}
	return inst
}

func TestWrapToolsPreservesDefinitions(t *testing.T) {
	inner := []mcp.ToolHandler{
		{
			Definition: mcp.NewTool("alpha", "First").String("x", "X", true).Build(),
			Execute:    func(_ context.Context, _ json.RawMessage) (any, error) { return "a", nil },
		},
		{
			Definition: mcp.NewTool("beta", "Second").Build(),
			Execute:    func(_ context.Context, _ json.RawMessage) (any, error) { return "b", nil },
		},
	}

	wrapped := WrapTools(inner, noopInstruments(t))
	if len(wrapped) != 2 {
		t.Fatalf("got %d handlers, want 2", len(wrapped))
	}
	for i := range inner {
		if wrapped[i].Definition.Name != inner[i].Definition.Name {
			t.Errorf("definition %d changed: %q", i, wrapped[i].Definition.Name)
		}
	}
}

func TestWrappedExecutePassesThrough(t *testing.T) {
	var gotArgs string
	inner := []mcp.ToolHandler{{
		Definition: mcp.NewTool("echo", "Echo").Build(),
		Execute: func(_ context.Context, args json.RawMessage) (any, error) {
			gotArgs = string(args)
			return map[string]string{"ok": "yes"}, nil
		},
	}}

	wrapped := WrapTools(inner, noopInstruments(t))
	result, err := wrapped[0].Execute(context.Background(), json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if gotArgs != `{"a":1}` {
		t.Errorf("args = %q", gotArgs)
	}
	if m, ok := result.(map[string]string); !ok || m["ok"] != "yes" {
		t.Errorf("result = %v", result)
	}
}

func TestWrappedExecutePropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	inner := []mcp.ToolHandler{{
		Definition: mcp.NewTool("failing", "Fails").Build(),
		Execute:    func(_ context.Context, _ json.RawMessage) (any, error) { return nil, wantErr },
	}}

	wrapped := WrapTools(inner, noopInstruments(t))
	if _, err := wrapped[0].Execute(context.Background(), nil); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
