package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// defaultPerPage matches the service's default page size.
const defaultPerPage = 25

// GetRaindropsTool lists bookmarks from a collection, with search, sort and
// paging.
type GetRaindropsTool struct {
	client *raindrop.Client
}

// NewGetRaindropsTool creates a new GetRaindropsTool.
func NewGetRaindropsTool(client *raindrop.Client) *GetRaindropsTool {
	return &GetRaindropsTool{client: client}
}

// Definition returns the tool's registration record.
func (t *GetRaindropsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_raindrops",
		mcp.WithDescription("Get one page of raindrops (bookmarks) from a collection, with optional search and sorting. Returns the page items plus the total match count."),
		mcp.WithTitleAnnotation("List raindrops"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithNumber("collection_id",
			mcp.Required(),
			mcp.Description("ID of the collection to list. Use 0 for all raindrops, -1 for unsorted ones and -99 for the Trash."),
		),
		mcp.WithString("search",
			mcp.Description("Search expression, e.g. \"#tag\" or a phrase to match"),
		),
		mcp.WithString("sort",
			mcp.Description("Result ordering. A leading \"-\" means descending."),
			mcp.Enum(raindrop.SortModes...),
		),
		mcp.WithNumber("page",
			mcp.Description("Zero-based page index"),
			mcp.DefaultNumber(0),
		),
		mcp.WithNumber("perpage",
			mcp.Description("Raindrops per page. The service caps this at 50."),
			mcp.DefaultNumber(defaultPerPage),
		),
		mcp.WithBoolean("nested",
			mcp.Description("Also include raindrops from collections nested under this one"),
			mcp.DefaultBool(false),
		),
	)
}

// Handler lists the raindrops and returns the page as JSON.
func (t *GetRaindropsTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("collection_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := raindrop.ListOptions{
		Search:  req.GetString("search", ""),
		Sort:    req.GetString("sort", ""),
		Page:    req.GetInt("page", 0),
		PerPage: req.GetInt("perpage", defaultPerPage),
		Nested:  req.GetBool("nested", false),
	}
	if opts.Sort != "" && !raindrop.ValidSort(opts.Sort) {
		return invalidEnumResult("sort", opts.Sort, raindrop.SortModes), nil
	}
	if opts.Page < 0 {
		return mcp.NewToolResultError("page must not be negative"), nil
	}

	page, err := t.client.ListRaindrops(ctx, id, opts)
	if err != nil {
		return errorResult("fetching raindrops", err), nil
	}
	return jsonResult(page), nil
}
