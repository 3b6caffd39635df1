package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// DeleteCollectionTool removes a collection.
type DeleteCollectionTool struct {
	client *raindrop.Client
}

// NewDeleteCollectionTool creates a new DeleteCollectionTool.
func NewDeleteCollectionTool(client *raindrop.Client) *DeleteCollectionTool {
	return &DeleteCollectionTool{client: client}
}

// Definition returns the tool's registration record.
func (t *DeleteCollectionTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_collection",
		mcp.WithDescription("Remove a collection from Raindrop.io. The raindrops it contained are moved to Trash, not deleted."),
		mcp.WithTitleAnnotation("Delete collection"),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithNumber("collection_id",
			mcp.Required(),
			mcp.Description("ID of the collection to remove"),
		),
	)
}

// Handler removes the collection and returns a confirmation message.
func (t *DeleteCollectionTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("collection_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.client.DeleteCollection(ctx, id); err != nil {
		return errorResult("deleting collection", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Collection %d removed. Its raindrops were moved to Trash.", id)), nil
}
