package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// UpdateCollectionTool changes properties of an existing collection.
type UpdateCollectionTool struct {
	client *raindrop.Client
}

// NewUpdateCollectionTool creates a new UpdateCollectionTool.
func NewUpdateCollectionTool(client *raindrop.Client) *UpdateCollectionTool {
	return &UpdateCollectionTool{client: client}
}

// Definition returns the tool's registration record.
func (t *UpdateCollectionTool) Definition() mcp.Tool {
	return mcp.NewTool("update_collection",
		mcp.WithDescription("Update an existing collection. Only the provided properties are changed; at least one must be provided."),
		mcp.WithTitleAnnotation("Update collection"),
		mcp.WithNumber("collection_id",
			mcp.Required(),
			mcp.Description("ID of the collection to update"),
		),
		mcp.WithString("title",
			mcp.Description("New name of the collection"),
		),
		mcp.WithString("view",
			mcp.Description("New view mode of the collection"),
			mcp.Enum(raindrop.ViewModes...),
		),
		mcp.WithBoolean("public",
			mcp.Description("Whether the collection is visible to everyone"),
		),
		mcp.WithNumber("parent_id",
			mcp.Description("ID of the collection to nest this one under"),
		),
		mcp.WithBoolean("expanded",
			mcp.Description("Whether the collection's sub-collections are shown expanded"),
		),
	)
}

// Handler applies the update and returns the stored record as JSON.
func (t *UpdateCollectionTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("collection_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := newArgReader(req)
	update := raindrop.CollectionUpdate{
		Title:    args.String("title"),
		View:     args.String("view"),
		Public:   args.Bool("public"),
		ParentID: args.Int("parent_id"),
		Expanded: args.Bool("expanded"),
	}
	if err := args.Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if update.View != nil && !raindrop.ValidView(*update.View) {
		return invalidEnumResult("view", *update.View, raindrop.ViewModes), nil
	}
	if update.Empty() {
		return mcp.NewToolResultError("no update parameters provided"), nil
	}

	collection, err := t.client.UpdateCollection(ctx, id, update)
	if err != nil {
		return errorResult("updating collection", err), nil
	}
	return jsonResult(collection), nil
}
