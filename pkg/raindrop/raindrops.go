package raindrop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListOptions filter and page a raindrop listing. The zero value lists the
// first page in the service's default order.
type ListOptions struct {
	// Search is a Raindrop.io search expression, e.g. `#tag "exact phrase"`.
	Search string
	// Sort is one of SortModes. Empty leaves the service's default order.
	Sort string
	// Page selects a zero-based result page.
	Page int
	// PerPage is the page size. The service caps it at 50 on its side;
	// larger values are forwarded as given. Zero or negative means unset
	// and leaves the service's default page size.
	PerPage int
	// Nested includes raindrops from nested collections.
	Nested bool
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	q.Set("page", strconv.Itoa(o.Page))
	if o.PerPage > 0 {
		q.Set("perpage", strconv.Itoa(o.PerPage))
	}
	if o.Nested {
		q.Set("nested", "true")
	}
	return q
}

// RaindropUpdate carries the fields of a bookmark to change. Nil fields are
// omitted from the request and left untouched. Order 0 is meaningful (move
// to the first position), hence the pointer. Tags pointing at an empty slice
// removes every tag.
type RaindropUpdate struct {
	Title        *string
	Excerpt      *string
	Link         *string
	Important    *bool
	Tags         *[]string
	CollectionID *int
	Cover        *string
	Type         *string
	Order        *int
	// PleaseParse asks the service to re-parse the link's metadata.
	PleaseParse bool
}

// Empty reports whether the update changes nothing.
func (u RaindropUpdate) Empty() bool {
	return u.Title == nil && u.Excerpt == nil && u.Link == nil && u.Important == nil &&
		u.Tags == nil && u.CollectionID == nil && u.Cover == nil && u.Type == nil &&
		u.Order == nil && !u.PleaseParse
}

func (u RaindropUpdate) payload() map[string]any {
	body := map[string]any{}
	if u.Title != nil {
		body["title"] = *u.Title
	}
	if u.Excerpt != nil {
		body["excerpt"] = *u.Excerpt
	}
	if u.Link != nil {
		body["link"] = *u.Link
	}
	if u.Important != nil {
		body["important"] = *u.Important
	}
	if u.Tags != nil {
		body["tags"] = nonNilTags(*u.Tags)
	}
	if u.CollectionID != nil {
		body["collection"] = CollectionRef{ID: *u.CollectionID}
	}
	if u.Cover != nil {
		body["cover"] = *u.Cover
	}
	if u.Type != nil {
		body["type"] = *u.Type
	}
	if u.Order != nil {
		body["order"] = *u.Order
	}
	if u.PleaseParse {
		body["pleaseParse"] = struct{}{}
	}
	return body
}

// BulkUpdate describes one modification applied to every raindrop matched
// inside a collection. IDs, when present, restricts the match to those
// raindrops; Search narrows it further on the service side.
type BulkUpdate struct {
	IDs          []int
	Important    *bool
	Tags         *[]string
	Cover        *string
	CollectionID *int
	Search       string
	Nested       bool
}

// Empty reports whether the update changes nothing. Search and Nested only
// select records, so they do not count as changes.
func (u BulkUpdate) Empty() bool {
	return len(u.IDs) == 0 && u.Important == nil && u.Tags == nil && u.Cover == nil && u.CollectionID == nil
}

func (u BulkUpdate) payload() map[string]any {
	body := map[string]any{}
	if len(u.IDs) > 0 {
		body["ids"] = u.IDs
	}
	if u.Important != nil {
		body["important"] = *u.Important
	}
	if u.Tags != nil {
		body["tags"] = nonNilTags(*u.Tags)
	}
	if u.Cover != nil {
		body["cover"] = *u.Cover
	}
	if u.CollectionID != nil {
		body["collection"] = CollectionRef{ID: *u.CollectionID}
	}
	return body
}

func (u BulkUpdate) query() url.Values {
	q := url.Values{}
	if u.Search != "" {
		q.Set("search", u.Search)
	}
	if u.Nested {
		q.Set("nested", "true")
	}
	return q
}

// nonNilTags keeps a deliberate "remove all tags" request serializing as []
// instead of null.
func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// GetRaindrop fetches a single bookmark by id.
func (c *Client) GetRaindrop(ctx context.Context, id int) (*Raindrop, error) {
	env, err := c.call(ctx, http.MethodGet, fmt.Sprintf("/raindrop/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeRaindrop(env)
}

// ListRaindrops fetches one page of bookmarks from a collection. The
// sentinel ids CollectionAll, CollectionUnsorted and CollectionTrash are
// forwarded unmodified for the service to interpret.
func (c *Client) ListRaindrops(ctx context.Context, collectionID int, opts ListOptions) (*RaindropPage, error) {
	env, err := c.call(ctx, http.MethodGet, fmt.Sprintf("/raindrops/%d", collectionID), opts.query(), nil)
	if err != nil {
		return nil, err
	}
	var items []Raindrop
	if err := json.Unmarshal(env.Items, &items); err != nil {
		return nil, fmt.Errorf("raindrop: decode raindrops: %w", err)
	}
	return &RaindropPage{Items: items, Count: env.Count}, nil
}

// UpdateRaindrop applies update to the bookmark with the given id and
// returns the record as stored afterwards.
func (c *Client) UpdateRaindrop(ctx context.Context, id int, update RaindropUpdate) (*Raindrop, error) {
	env, err := c.call(ctx, http.MethodPut, fmt.Sprintf("/raindrop/%d", id), nil, update.payload())
	if err != nil {
		return nil, err
	}
	return decodeRaindrop(env)
}

// UpdateManyRaindrops applies one change set to every matched raindrop in
// collectionID and returns the service's count of modified records.
func (c *Client) UpdateManyRaindrops(ctx context.Context, collectionID int, update BulkUpdate) (*BulkResult, error) {
	env, err := c.call(ctx, http.MethodPut, fmt.Sprintf("/raindrops/%d", collectionID), update.query(), update.payload())
	if err != nil {
		return nil, err
	}
	return &BulkResult{Modified: env.Modified}, nil
}

func decodeRaindrop(env *envelope) (*Raindrop, error) {
	var item Raindrop
	if err := json.Unmarshal(env.Item, &item); err != nil {
		return nil, fmt.Errorf("raindrop: decode raindrop: %w", err)
	}
	return &item, nil
}
