package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// UpdateManyRaindropsTool applies one change set to every matched raindrop
// in a collection.
type UpdateManyRaindropsTool struct {
	client *raindrop.Client
}

// NewUpdateManyRaindropsTool creates a new UpdateManyRaindropsTool.
func NewUpdateManyRaindropsTool(client *raindrop.Client) *UpdateManyRaindropsTool {
	return &UpdateManyRaindropsTool{client: client}
}

// Definition returns the tool's registration record.
func (t *UpdateManyRaindropsTool) Definition() mcp.Tool {
	return mcp.NewTool("update_many_raindrops",
		mcp.WithDescription("Update multiple raindrops in a collection at once. The change set applies to every raindrop matched by ids and/or search; at least one change must be provided. Returns how many records were modified."),
		mcp.WithTitleAnnotation("Bulk update raindrops"),
		mcp.WithNumber("collection_id",
			mcp.Required(),
			mcp.Description("ID of the collection holding the raindrops. Use 0 for all raindrops, -1 for unsorted ones and -99 for the Trash."),
		),
		mcp.WithArray("ids",
			mcp.Description("IDs of the specific raindrops to update. Omit to match the whole collection."),
			mcp.Items(map[string]any{"type": "number"}),
		),
		mcp.WithBoolean("important",
			mcp.Description("Whether the matched raindrops are marked as favorites"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags to add to the matched raindrops. An empty array removes every tag from them."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("cover",
			mcp.Description("Cover image URL for the matched raindrops, or \"<screenshot>\" to use page screenshots"),
		),
		mcp.WithNumber("target_collection_id",
			mcp.Description("ID of the collection to move the matched raindrops into"),
		),
		mcp.WithString("search",
			mcp.Description("Search expression narrowing which raindrops are matched"),
		),
		mcp.WithBoolean("nested",
			mcp.Description("Also match raindrops in collections nested under this one"),
			mcp.DefaultBool(false),
		),
	)
}

// Handler applies the bulk update and returns the modified count as JSON.
func (t *UpdateManyRaindropsTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("collection_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := newArgReader(req)
	update := raindrop.BulkUpdate{
		IDs:          args.IntSlice("ids"),
		Important:    args.Bool("important"),
		Tags:         args.StringSlice("tags"),
		Cover:        args.String("cover"),
		CollectionID: args.Int("target_collection_id"),
		Search:       req.GetString("search", ""),
		Nested:       req.GetBool("nested", false),
	}
	if err := args.Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if update.Empty() {
		return mcp.NewToolResultError("no update parameters provided"), nil
	}

	result, err := t.client.UpdateManyRaindrops(ctx, id, update)
	if err != nil {
		return errorResult("updating raindrops", err), nil
	}
	return jsonResult(result), nil
}
