// Package tools defines the Logseq tools exposed through the MCP server:
// five read-only query tools and five mutation tools, each mapping onto one
// or two Logseq API calls. The tool list returned by All is the single
// source of truth for both discovery (tools/list, initialize) and dispatch.
package tools

import (
	"github.com/logseq-mcp/logseq-mcp/logseq"
	"github.com/logseq-mcp/logseq-mcp/mcp"
)

// All returns every tool handler in its advertised order: query tools
// first, then mutations. The order is deterministic across calls.
func All(client *logseq.Client) []mcp.ToolHandler {
	return []mcp.ToolHandler{
		// Query tools (read-only).
		listGraphs(client),
		listPages(client),
		getPage(client),
		getBlock(client),
		search(client),

		// Mutation tools.
		createPage(client),
		updateBlock(client),
		insertBlock(client),
		deleteBlock(client),
		appendToPage(client),
	}
}
