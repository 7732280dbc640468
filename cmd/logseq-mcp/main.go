// Binary logseq-mcp is an MCP server that exposes a local Logseq instance
// to AI assistants (Claude Desktop, Cursor, IDEs, etc.) via the Model
// Context Protocol over stdio. It translates tool calls into requests
// against Logseq's HTTP API.
//
// Usage in .mcp.json:
//
//	{
//	  "mcpServers": {
//	    "logseq": {
//	      "type": "stdio",
//	      "command": "logseq-mcp",
//	      "env": { "LOGSEQ_API_TOKEN": "..." }
//	    }
//	  }
//	}
//
// Requires LOGSEQ_API_TOKEN; LOGSEQ_API_URL defaults to
// http://localhost:12315. Settings can also come from logseq-mcp.toml
// (path overridable via LOGSEQ_MCP_CONFIG).
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/logseq-mcp/logseq-mcp/internal/config"
	"github.com/logseq-mcp/logseq-mcp/logseq"
	"github.com/logseq-mcp/logseq-mcp/mcp"
	"github.com/logseq-mcp/logseq-mcp/observer"
	"github.com/logseq-mcp/logseq-mcp/tools"
)

const version = "1.0.0"

func main() {
	// All diagnostics go to stderr; stdout carries only JSON-RPC.
	log.SetOutput(os.Stderr)
	log.SetPrefix("")

	// Fatal paths return through run so its defers (observer flush
	// included) execute before the process exits.
	if err := run(); err != nil {
		log.Fatalf("logseq-mcp: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := config.Load(os.Getenv("LOGSEQ_MCP_CONFIG"))
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := logseq.New(cfg.Logseq.URL, cfg.Logseq.Token)
	handlers := tools.All(client)

	if cfg.Observer.Enabled {
		inst, shutdown, err := observer.Init(ctx, cfg.SessionID)
		if err != nil {
			return fmt.Errorf("init observer: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("logseq-mcp: observer shutdown: %v", err)
			}
		}()
		handlers = observer.WrapTools(handlers, inst)
	}

	srv := mcp.New("logseq-mcp", version)
	for _, h := range handlers {
		srv.AddTool(h)
	}

	log.Printf("logseq-mcp %s starting (session %s, api %s)", version, cfg.SessionID, cfg.Logseq.URL)

	if err := srv.Serve(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
