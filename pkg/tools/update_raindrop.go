package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// UpdateRaindropTool changes properties of an existing bookmark.
type UpdateRaindropTool struct {
	client *raindrop.Client
}

// NewUpdateRaindropTool creates a new UpdateRaindropTool.
func NewUpdateRaindropTool(client *raindrop.Client) *UpdateRaindropTool {
	return &UpdateRaindropTool{client: client}
}

// Definition returns the tool's registration record.
func (t *UpdateRaindropTool) Definition() mcp.Tool {
	return mcp.NewTool("update_raindrop",
		mcp.WithDescription("Update an existing raindrop (bookmark). Only the provided properties are changed; at least one must be provided. Passing an empty tags array removes every tag."),
		mcp.WithTitleAnnotation("Update raindrop"),
		mcp.WithNumber("raindrop_id",
			mcp.Required(),
			mcp.Description("ID of the raindrop to update"),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithString("excerpt",
			mcp.Description("New excerpt or description"),
		),
		mcp.WithString("link",
			mcp.Description("New URL"),
		),
		mcp.WithBoolean("important",
			mcp.Description("Whether the raindrop is marked as a favorite"),
		),
		mcp.WithArray("tags",
			mcp.Description("Replacement tag list. An empty array removes every tag."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("collection_id",
			mcp.Description("ID of the collection to move the raindrop into"),
		),
		mcp.WithString("cover",
			mcp.Description("Cover image URL, or \"<screenshot>\" to use a screenshot of the page"),
		),
		mcp.WithString("type",
			mcp.Description("Raindrop type, e.g. link, article, image, video or document"),
		),
		mcp.WithNumber("order",
			mcp.Description("Position of the raindrop inside its collection, 0 being first"),
		),
		mcp.WithBoolean("pleaseParse",
			mcp.Description("Ask the service to re-parse the link's metadata"),
			mcp.DefaultBool(false),
		),
	)
}

// Handler applies the update and returns the stored record as JSON.
func (t *UpdateRaindropTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("raindrop_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := newArgReader(req)
	update := raindrop.RaindropUpdate{
		Title:        args.String("title"),
		Excerpt:      args.String("excerpt"),
		Link:         args.String("link"),
		Important:    args.Bool("important"),
		Tags:         args.StringSlice("tags"),
		CollectionID: args.Int("collection_id"),
		Cover:        args.String("cover"),
		Type:         args.String("type"),
		Order:        args.Int("order"),
		PleaseParse:  req.GetBool("pleaseParse", false),
	}
	if err := args.Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if update.Empty() {
		return mcp.NewToolResultError("no update parameters provided"), nil
	}

	item, err := t.client.UpdateRaindrop(ctx, id, update)
	if err != nil {
		return errorResult("updating raindrop", err), nil
	}
	return jsonResult(item), nil
}
