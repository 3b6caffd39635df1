package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// GetChildCollectionsTool lists every nested collection.
type GetChildCollectionsTool struct {
	client *raindrop.Client
}

// NewGetChildCollectionsTool creates a new GetChildCollectionsTool.
func NewGetChildCollectionsTool(client *raindrop.Client) *GetChildCollectionsTool {
	return &GetChildCollectionsTool{client: client}
}

// Definition returns the tool's registration record.
func (t *GetChildCollectionsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_child_collections",
		mcp.WithDescription("Get all child collections from Raindrop.io, i.e. collections nested under another collection."),
		mcp.WithTitleAnnotation("List child collections"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handler fetches the nested collections and returns them as JSON.
func (t *GetChildCollectionsTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collections, err := t.client.ListChildCollections(ctx)
	if err != nil {
		return errorResult("fetching child collections", err), nil
	}
	return jsonResult(collections), nil
}
