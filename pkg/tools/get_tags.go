package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// GetTagsTool lists tag usage counts.
type GetTagsTool struct {
	client *raindrop.Client
}

// NewGetTagsTool creates a new GetTagsTool.
func NewGetTagsTool(client *raindrop.Client) *GetTagsTool {
	return &GetTagsTool{client: client}
}

// Definition returns the tool's registration record.
func (t *GetTagsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tags",
		mcp.WithDescription("Get tags from Raindrop.io with their usage counts, across all collections or scoped to one."),
		mcp.WithTitleAnnotation("List tags"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithNumber("collection_id",
			mcp.Description("ID of the collection to scope the tags to. Omit to aggregate across all collections."),
		),
	)
}

// Handler lists the tags and returns them as JSON.
func (t *GetTagsTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := newArgReader(req)
	collectionID := args.Int("collection_id")
	if err := args.Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tags, err := t.client.ListTags(ctx, collectionID)
	if err != nil {
		return errorResult("fetching tags", err), nil
	}
	return jsonResult(tags), nil
}
