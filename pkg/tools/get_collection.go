package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// GetCollectionTool fetches one collection by id.
type GetCollectionTool struct {
	client *raindrop.Client
}

// NewGetCollectionTool creates a new GetCollectionTool.
func NewGetCollectionTool(client *raindrop.Client) *GetCollectionTool {
	return &GetCollectionTool{client: client}
}

// Definition returns the tool's registration record.
func (t *GetCollectionTool) Definition() mcp.Tool {
	return mcp.NewTool("get_collection",
		mcp.WithDescription("Get a specific collection by its ID."),
		mcp.WithTitleAnnotation("Get collection"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithNumber("collection_id",
			mcp.Required(),
			mcp.Description("ID of the collection to fetch"),
		),
	)
}

// Handler fetches the collection and returns it as JSON.
func (t *GetCollectionTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("collection_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	collection, err := t.client.GetCollection(ctx, id)
	if err != nil {
		return errorResult("fetching collection", err), nil
	}
	return jsonResult(collection), nil
}
