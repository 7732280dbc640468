// Package mcp implements a Model Context Protocol (MCP) server over stdio.
// It exposes tools via JSON-RPC 2.0, enabling AI assistants (Claude Desktop,
// Cursor, IDEs, etc.) to discover and invoke Logseq operations.
//
// Transport is newline-delimited JSON over stdin/stdout: one request per
// line in, at most one response per request out. Diagnostics go to the
// standard logger, never to the protocol stream.
package mcp

import "encoding/json"

// --- JSON-RPC 2.0 types ---

// request is an incoming JSON-RPC 2.0 request or notification.
// Notifications have a nil (or explicit null) ID.
type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// isNotification returns true if this request carries no usable ID.
func (r *request) isNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// effectiveID returns the inbound ID, or the literal 0 when the request had
// none. Responses never carry a null ID.
func (r *request) effectiveID() json.RawMessage {
	if r.isNotification() {
		return json.RawMessage("0")
	}
	return r.ID
}

// response is an outgoing JSON-RPC 2.0 response.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

// rpcError is a JSON-RPC 2.0 error object.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Standard JSON-RPC 2.0 error codes. Parse and invalid-request errors are
// never emitted: unparseable lines are logged and skipped instead.
const (
	errCodeParse          = -32700
	errCodeInvalidRequest = -32600
	errCodeMethodNotFound = -32601
	errCodeInvalidParams  = -32602
	errCodeInternal       = -32603
)

// --- MCP protocol types ---

// protocolVersion is the MCP protocol version this server implements.
const protocolVersion = "2024-11-05"

// initializeResult is the server's response to an initialize request.
// The full tool list is inlined so clients need not call tools/list
// separately, though they may.
type initializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    serverCapabilities `json:"capabilities"`
	ServerInfo      serverInfo         `json:"serverInfo"`
	Tools           []ToolDefinition   `json:"tools"`
}

type serverCapabilities struct {
	Tools  struct{} `json:"tools"`
	Logseq bool     `json:"logseq"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// --- Tool types ---

// ToolDefinition describes a tool exposed via MCP.
type ToolDefinition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema is the JSON Schema fragment describing a tool's parameters.
// Properties and Required are always non-nil so they serialize as {} and []
// rather than null.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property describes a single tool parameter.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
}

// toolsListResult is the response to tools/list.
type toolsListResult struct {
	Tools []ToolDefinition `json:"tools"`
}

// toolCallParams is the request payload for tools/call.
type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// toolCallResult is the response payload for tools/call. Tool failures are
// reported through the JSON-RPC error object, not an isError flag, so a
// result always holds exactly one text content block.
type toolCallResult struct {
	Content []textContent `json:"content"`
}

// textContent is a text content block in MCP responses.
type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
