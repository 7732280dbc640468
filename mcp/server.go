package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// ToolHandler is a tool that the MCP server exposes to clients. Definition
// and Execute travel together, so the advertised tool list and the dispatch
// table cannot drift apart.
type ToolHandler struct {
	// Definition describes the tool (name, description, input schema).
	Definition ToolDefinition
	// Execute is called when the client invokes tools/call for this tool.
	// The returned value is pretty-printed into a text content block.
	Execute func(ctx context.Context, args json.RawMessage) (any, error)
}

// Server is an MCP server that communicates over stdio using JSON-RPC 2.0.
// Register tools before calling Serve. Requests are handled strictly in
// arrival order; each response is written before the next line is read.
type Server struct {
	name    string
	version string

	tools []ToolHandler

	// reader/writer can be overridden for testing (defaults to stdin/stdout).
	reader io.Reader
	writer io.Writer
	mu     sync.Mutex // protects writes
}

// New creates an MCP server with the given name and version.
func New(name, version string) *Server {
	return &Server{
		name:    name,
		version: version,
		reader:  os.Stdin,
		writer:  os.Stdout,
	}
}

// AddTool registers a tool handler. Must be called before Serve.
func (s *Server) AddTool(h ToolHandler) {
	s.tools = append(s.tools, h)
}

// Serve runs the MCP server, reading JSON-RPC requests from stdin and
// writing responses to stdout. Blocks until stdin is closed or ctx is
// cancelled. A closed input stream is a clean exit, not an error.
func (s *Server) Serve(ctx context.Context) error {
	scanner := bufio.NewScanner(s.reader)
	scanner.Buffer(make([]byte, 0, 10<<20), 10<<20) // 10MB max message

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			if !json.Valid(line) {
				// Unparseable input gets no response. Log and move on so
				// one bad line never stalls the stream.
				log.Printf("[mcp] skipping unparseable line: %v", err)
				continue
			}
			// Valid JSON that is not a request object (an array, a bare
			// scalar, or an object with mistyped fields) still gets routed:
			// the empty method falls through to method-not-found. Salvage
			// the id when the value was an object carrying one.
			req = request{}
			var partial struct {
				ID json.RawMessage `json:"id"`
			}
			_ = json.Unmarshal(line, &partial)
			req.ID = partial.ID
		}

		if resp := s.dispatch(ctx, &req); resp != nil {
			s.writeResponse(*resp)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("mcp: read input: %w", err)
	}
	return nil
}

// dispatch routes a request to the appropriate handler. Returns nil when no
// response must be emitted (the suppressed initialized notification).
func (s *Server) dispatch(ctx context.Context, req *request) *response {
	id := req.effectiveID()

	switch req.Method {
	case "initialize":
		return s.respond(id, initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    serverCapabilities{Logseq: true},
			ServerInfo:      serverInfo{Name: s.name, Version: s.version},
			Tools:           s.definitions(),
		})
	case "initialized":
		// Per MCP this is a notification, but some clients send it as a
		// request and expect an acknowledgment.
		if req.isNotification() {
			return nil
		}
		return s.respond(id, struct{}{})
	case "notifications/initialized":
		// Back-compat alias: always acknowledged, even without an ID.
		return s.respond(id, struct{}{})
	case "ping":
		return s.respond(id, struct{}{})
	case "tools/list":
		return s.respond(id, toolsListResult{Tools: s.definitions()})
	case "tools/call":
		return s.handleToolsCall(ctx, id, req.Params)
	default:
		return s.respondError(id, errCodeMethodNotFound, fmt.Sprintf("Method '%s' not found", req.Method))
	}
}

// handleToolsCall validates the call envelope, invokes the named tool, and
// wraps its JSON result as a text content block. Missing params, an unknown
// tool name, and handler failures all surface as internal errors so the
// client sees one failure shape for every tool-call problem.
func (s *Server) handleToolsCall(ctx context.Context, id json.RawMessage, rawParams json.RawMessage) *response {
	if len(rawParams) == 0 || string(rawParams) == "null" {
		return s.respondError(id, errCodeInternal, "Tool execution failed: Missing params")
	}

	var params toolCallParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return s.respondError(id, errCodeInternal, "Tool execution failed: "+err.Error())
	}
	if params.Name == "" {
		return s.respondError(id, errCodeInternal, "Tool execution failed: Missing tool name")
	}

	args := params.Arguments
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage("{}")
	}

	for _, t := range s.tools {
		if t.Definition.Name != params.Name {
			continue
		}

		result, err := t.Execute(ctx, args)
		if err != nil {
			return s.respondError(id, errCodeInternal, "Tool execution failed: "+err.Error())
		}

		text, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return s.respondError(id, errCodeInternal, "Tool execution failed: "+err.Error())
		}
		return s.respond(id, toolCallResult{
			Content: []textContent{{Type: "text", Text: string(text)}},
		})
	}

	return s.respondError(id, errCodeInternal, "Tool execution failed: Unknown tool: "+params.Name)
}

// definitions renders the registered tool list in registration order,
// identical for initialize and tools/list.
func (s *Server) definitions() []ToolDefinition {
	defs := make([]ToolDefinition, len(s.tools))
	for i, t := range s.tools {
		defs[i] = t.Definition
	}
	return defs
}

// --- response helpers ---

func (s *Server) respond(id json.RawMessage, result any) *response {
	return &response{JSONRPC: "2.0", ID: id, Result: result}
}

func (s *Server) respondError(id json.RawMessage, code int, message string) *response {
	return &response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}}
}

func (s *Server) writeResponse(resp response) {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[mcp] marshal response: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	data = append(data, '\n')
	if _, err := s.writer.Write(data); err != nil {
		log.Printf("[mcp] write response: %v", err)
	}
}
