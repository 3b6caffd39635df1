package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// EmptyTrashTool permanently deletes everything in Trash.
type EmptyTrashTool struct {
	client *raindrop.Client
}

// NewEmptyTrashTool creates a new EmptyTrashTool.
func NewEmptyTrashTool(client *raindrop.Client) *EmptyTrashTool {
	return &EmptyTrashTool{client: client}
}

// Definition returns the tool's registration record.
func (t *EmptyTrashTool) Definition() mcp.Tool {
	return mcp.NewTool("empty_trash",
		mcp.WithDescription("Permanently remove every raindrop in the Trash. This cannot be undone."),
		mcp.WithTitleAnnotation("Empty trash"),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

// Handler empties the trash and returns a confirmation message.
func (t *EmptyTrashTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.client.EmptyTrash(ctx); err != nil {
		return errorResult("emptying trash", err), nil
	}
	return mcp.NewToolResultText("Trash emptied. All raindrops in it were permanently deleted."), nil
}
