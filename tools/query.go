package tools

import (
	"context"
	"encoding/json"

	"github.com/logseq-mcp/logseq-mcp/logseq"
	"github.com/logseq-mcp/logseq-mcp/mcp"
)

// Result envelopes for the read-only tools. Struct types keep the key
// order stable in the pretty-printed output.

type graphsResult struct {
	Graphs []json.RawMessage `json:"graphs"`
}

type pagesResult struct {
	Pages json.RawMessage `json:"pages"`
}

type pageResult struct {
	Page   json.RawMessage `json:"page"`
	Blocks json.RawMessage `json:"blocks"`
}

type blockResult struct {
	Block json.RawMessage `json:"block"`
}

type searchResult struct {
	Results json.RawMessage `json:"results"`
}

// listGraphs reports the currently open graph. The Logseq API only exposes
// the active graph, so the list always has one element.
func listGraphs(client *logseq.Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Definition: mcp.NewTool("list_graphs", "List available Logseq graphs").Build(),
		Execute: func(ctx context.Context, _ json.RawMessage) (any, error) {
			graph, err := client.GetCurrentGraph(ctx)
			if err != nil {
				return nil, err
			}
			return graphsResult{Graphs: []json.RawMessage{graph}}, nil
		},
	}
}

func listPages(client *logseq.Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Definition: mcp.NewTool("list_pages", "List all pages in the current graph").Build(),
		Execute: func(ctx context.Context, _ json.RawMessage) (any, error) {
			pages, err := client.GetAllPages(ctx)
			if err != nil {
				return nil, err
			}
			return pagesResult{Pages: pages}, nil
		},
	}
}

// getPage fetches both the page metadata and the full block tree so clients
// get a complete view in one call. The two backend calls are sequential.
func getPage(client *logseq.Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Definition: mcp.NewTool("get_page", "Get content of a specific page by name").
			String("page_name", "Name of the page to retrieve", true).
			Build(),
		Execute: func(ctx context.Context, args json.RawMessage) (any, error) {
			params, err := decodeArgs(args)
			if err != nil {
				return nil, err
			}
			pageName, err := requireString(params, "page_name")
			if err != nil {
				return nil, err
			}

			page, err := client.GetPage(ctx, pageName)
			if err != nil {
				return nil, err
			}
			blocks, err := client.GetPageBlocksTree(ctx, pageName)
			if err != nil {
				return nil, err
			}
			return pageResult{Page: page, Blocks: blocks}, nil
		},
	}
}

func getBlock(client *logseq.Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Definition: mcp.NewTool("get_block", "Get a specific block by its UUID").
			String("uuid", "UUID of the block to retrieve", true).
			Build(),
		Execute: func(ctx context.Context, args json.RawMessage) (any, error) {
			params, err := decodeArgs(args)
			if err != nil {
				return nil, err
			}
			uuid, err := requireString(params, "uuid")
			if err != nil {
				return nil, err
			}

			block, err := client.GetBlock(ctx, uuid)
			if err != nil {
				return nil, err
			}
			return blockResult{Block: block}, nil
		},
	}
}

func search(client *logseq.Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Definition: mcp.NewTool("search", "Search across all pages in the graph").
			String("query", "Search query string", true).
			Build(),
		Execute: func(ctx context.Context, args json.RawMessage) (any, error) {
			params, err := decodeArgs(args)
			if err != nil {
				return nil, err
			}
			query, err := requireString(params, "query")
			if err != nil {
				return nil, err
			}

			results, err := client.Search(ctx, query)
			if err != nil {
				return nil, err
			}
			return searchResult{Results: results}, nil
		},
	}
}
