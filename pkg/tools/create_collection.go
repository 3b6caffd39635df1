package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// CreateCollectionTool creates a new collection.
type CreateCollectionTool struct {
	client *raindrop.Client
}

// NewCreateCollectionTool creates a new CreateCollectionTool.
func NewCreateCollectionTool(client *raindrop.Client) *CreateCollectionTool {
	return &CreateCollectionTool{client: client}
}

// Definition returns the tool's registration record.
func (t *CreateCollectionTool) Definition() mcp.Tool {
	return mcp.NewTool("create_collection",
		mcp.WithDescription("Create a new collection in Raindrop.io. Returns the stored collection, including its assigned ID."),
		mcp.WithTitleAnnotation("Create collection"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Name of the collection"),
		),
		mcp.WithString("view",
			mcp.Description("View mode of the collection"),
			mcp.Enum(raindrop.ViewModes...),
			mcp.DefaultString(raindrop.ViewList),
		),
		mcp.WithBoolean("public",
			mcp.Description("Whether the collection is visible to everyone"),
			mcp.DefaultBool(false),
		),
		mcp.WithNumber("parent_id",
			mcp.Description("ID of the parent collection. Omit to create a root-level collection."),
		),
	)
}

// Handler creates the collection and returns the stored record as JSON.
func (t *CreateCollectionTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	view := req.GetString("view", raindrop.ViewList)
	if !raindrop.ValidView(view) {
		return invalidEnumResult("view", view, raindrop.ViewModes), nil
	}

	args := newArgReader(req)
	draft := raindrop.CollectionDraft{
		Title:    title,
		View:     view,
		Public:   req.GetBool("public", false),
		ParentID: args.Int("parent_id"),
	}
	if err := args.Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	collection, err := t.client.CreateCollection(ctx, draft)
	if err != nil {
		return errorResult("creating collection", err), nil
	}
	return jsonResult(collection), nil
}
