package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// GetRootCollectionsTool lists the user's root-level collections.
type GetRootCollectionsTool struct {
	client *raindrop.Client
}

// NewGetRootCollectionsTool creates a new GetRootCollectionsTool.
func NewGetRootCollectionsTool(client *raindrop.Client) *GetRootCollectionsTool {
	return &GetRootCollectionsTool{client: client}
}

// Definition returns the tool's registration record.
func (t *GetRootCollectionsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_root_collections",
		mcp.WithDescription("Get all root collections from Raindrop.io."),
		mcp.WithTitleAnnotation("List root collections"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handler fetches the root collections and returns them as JSON.
func (t *GetRootCollectionsTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collections, err := t.client.ListCollections(ctx)
	if err != nil {
		return errorResult("fetching root collections", err), nil
	}
	return jsonResult(collections), nil
}
