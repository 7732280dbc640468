// Package logseq is a client for the Logseq HTTP API. Every call posts a
// {method, args} envelope to the /api endpoint with Bearer authentication
// and returns the raw JSON result. Response shapes are owned by Logseq, so
// results stay untyped (json.RawMessage) and are passed through verbatim.
package logseq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError is an error reported by the Logseq API itself (a top-level
// "error" field in the response body), as opposed to a transport failure.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "Logseq API error: " + e.Message
}

// apiRequest is the envelope Logseq's HTTP endpoint expects: a method name
// and positional arguments.
type apiRequest struct {
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Client makes authenticated calls against a Logseq instance. It is safe
// for reuse across the process lifetime.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New creates a client for the Logseq API at baseURL, authenticating with
// the given bearer token. Calls time out after 30 seconds; a hung Logseq
// instance surfaces as a transport error rather than blocking forever.
func New(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		token:      token,
	}
}

// call posts one API request and classifies the response. The whole body is
// the result unless it carries a top-level "error" field, which becomes an
// *APIError. Network and decode failures are returned as wrapped transport
// errors.
func (c *Client) call(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	if args == nil {
		args = []any{}
	}
	body, err := json.Marshal(apiRequest{Method: method, Args: args})
	if err != nil {
		return nil, fmt.Errorf("logseq: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("logseq: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("logseq: %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("logseq: read response: %w", err)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("logseq: %s: non-JSON response (HTTP %d)", method, resp.StatusCode)
	}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Error) > 0 && string(envelope.Error) != "null" {
		return nil, &APIError{Message: stringify(envelope.Error)}
	}

	return json.RawMessage(raw), nil
}

// stringify renders an error value as a plain string, unquoting it when the
// API returned a JSON string.
func stringify(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// --- Query operations ---

// GetCurrentGraph returns metadata about the currently open graph.
func (c *Client) GetCurrentGraph(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, "logseq.App.getCurrentGraph")
}

// GetAllPages lists every page in the current graph.
func (c *Client) GetAllPages(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, "logseq.Editor.getAllPages")
}

// GetPage returns the metadata of a single page by name.
func (c *Client) GetPage(ctx context.Context, pageName string) (json.RawMessage, error) {
	return c.call(ctx, "logseq.Editor.getPage", pageName)
}

// GetPageBlocksTree returns the full hierarchical block tree of a page.
func (c *Client) GetPageBlocksTree(ctx context.Context, pageName string) (json.RawMessage, error) {
	return c.call(ctx, "logseq.Editor.getPageBlocksTree", pageName)
}

// GetBlock returns a single block by UUID.
func (c *Client) GetBlock(ctx context.Context, uuid string) (json.RawMessage, error) {
	return c.call(ctx, "logseq.Editor.getBlock", uuid)
}

// Search runs Logseq's built-in search across the graph.
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	return c.call(ctx, "logseq.App.search", query)
}

// --- Mutation operations ---

// pageOptions is the optional second argument to createPage.
type pageOptions struct {
	Content string `json:"content"`
	Format  string `json:"format"`
}

// CreatePage creates a page. When content is non-nil the page is seeded
// with it in markdown format; when nil the content argument is omitted
// entirely so Logseq creates an empty page.
func (c *Client) CreatePage(ctx context.Context, pageName string, content *string) (json.RawMessage, error) {
	args := []any{pageName}
	if content != nil {
		args = append(args, pageOptions{Content: *content, Format: "markdown"})
	}
	return c.call(ctx, "logseq.Editor.createPage", args...)
}

// UpdateBlock replaces the content of an existing block.
func (c *Client) UpdateBlock(ctx context.Context, uuid, content string) (json.RawMessage, error) {
	return c.call(ctx, "logseq.Editor.updateBlock", uuid, content)
}

// insertOptions is the positioning argument to insertBlock.
type insertOptions struct {
	Sibling bool `json:"sibling"`
}

// InsertBlock creates a block under (sibling=false) or next to
// (sibling=true) the block identified by parentUUID.
func (c *Client) InsertBlock(ctx context.Context, parentUUID, content string, sibling bool) (json.RawMessage, error) {
	return c.call(ctx, "logseq.Editor.insertBlock", parentUUID, content, insertOptions{Sibling: sibling})
}

// DeleteBlock permanently removes a block and its children. The underlying
// API method is removeBlock.
func (c *Client) DeleteBlock(ctx context.Context, uuid string) (json.RawMessage, error) {
	return c.call(ctx, "logseq.Editor.removeBlock", uuid)
}

// AppendBlockInPage adds a block at the end of a page.
func (c *Client) AppendBlockInPage(ctx context.Context, pageName, content string) (json.RawMessage, error) {
	return c.call(ctx, "logseq.Editor.appendBlockInPage", pageName, content)
}
