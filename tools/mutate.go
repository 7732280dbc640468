package tools

import (
	"context"
	"encoding/json"

	"github.com/logseq-mcp/logseq-mcp/logseq"
	"github.com/logseq-mcp/logseq-mcp/mcp"
)

// Result envelopes for the mutating tools. Every mutation reports
// success=true alongside the entity the backend returned; failures never
// reach the envelope because they propagate as errors.

type createPageResult struct {
	Success bool            `json:"success"`
	Page    json.RawMessage `json:"page"`
}

type mutatedBlockResult struct {
	Success bool            `json:"success"`
	Block   json.RawMessage `json:"block"`
}

type deleteResult struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
}

func createPage(client *logseq.Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Definition: mcp.NewTool("create_page", "Create a new page with optional content").
			String("page_name", "Name of the page to create", true).
			String("content", "Initial content for the page (optional)", false).
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
			content := optionalString(params, "content")

			page, err := client.CreatePage(ctx, pageName, content)
			if err != nil {
				return nil, err
			}
			return createPageResult{Success: true, Page: page}, nil
		},
	}
}

func updateBlock(client *logseq.Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Definition: mcp.NewTool("update_block", "Update the content of an existing block").
			String("uuid", "UUID of the block to update", true).
			String("content", "New content for the block", true).
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
			content, err := requireString(params, "content")
			if err != nil {
				return nil, err
			}

			block, err := client.UpdateBlock(ctx, uuid, content)
			if err != nil {
				return nil, err
			}
			return mutatedBlockResult{Success: true, Block: block}, nil
		},
	}
}

func insertBlock(client *logseq.Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Definition: mcp.NewTool("insert_block", "Insert a new block with precise positioning control").
			String("parent_uuid", "UUID of the parent block or page", true).
			String("content", "Content for the new block", true).
			Bool("sibling", "Whether to insert as sibling (true) or child (false)", false).
			Build(),
		Execute: func(ctx context.Context, args json.RawMessage) (any, error) {
			params, err := decodeArgs(args)
			if err != nil {
				return nil, err
			}
			parentUUID, err := requireString(params, "parent_uuid")
			if err != nil {
				return nil, err
			}
			content, err := requireString(params, "content")
			if err != nil {
				return nil, err
			}
			sibling := optionalBool(params, "sibling", false)

			block, err := client.InsertBlock(ctx, parentUUID, content, sibling)
			if err != nil {
				return nil, err
			}
			return mutatedBlockResult{Success: true, Block: block}, nil
		},
	}
}

func deleteBlock(client *logseq.Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Definition: mcp.NewTool("delete_block", "Delete a block by its UUID").
			String("uuid", "UUID of the block to delete", true).
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

			result, err := client.DeleteBlock(ctx, uuid)
			if err != nil {
				return nil, err
			}
			return deleteResult{Success: true, Result: result}, nil
		},
	}
}

func appendToPage(client *logseq.Client) mcp.ToolHandler {
	return mcp.ToolHandler{
		Definition: mcp.NewTool("append_to_page", "Append a block to the end of a page").
			String("page_name", "Name of the page to append to", true).
			String("content", "Content to append", true).
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
			content, err := requireString(params, "content")
			if err != nil {
				return nil, err
			}

			block, err := client.AppendBlockInPage(ctx, pageName, content)
			if err != nil {
				return nil, err
			}
			return mutatedBlockResult{Success: true, Block: block}, nil
		},
	}
}
