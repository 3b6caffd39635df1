package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// GetRaindropTool fetches one bookmark by id.
type GetRaindropTool struct {
	client *raindrop.Client
}

// NewGetRaindropTool creates a new GetRaindropTool.
func NewGetRaindropTool(client *raindrop.Client) *GetRaindropTool {
	return &GetRaindropTool{client: client}
}

// Definition returns the tool's registration record.
func (t *GetRaindropTool) Definition() mcp.Tool {
	return mcp.NewTool("get_raindrop",
		mcp.WithDescription("Get a single raindrop (bookmark) by its ID."),
		mcp.WithTitleAnnotation("Get raindrop"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithNumber("raindrop_id",
			mcp.Required(),
			mcp.Description("ID of the raindrop to fetch"),
		),
	)
}

// Handler fetches the raindrop and returns it as JSON.
func (t *GetRaindropTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("raindrop_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	item, err := t.client.GetRaindrop(ctx, id)
	if err != nil {
		return errorResult("fetching raindrop", err), nil
	}
	return jsonResult(item), nil
}
