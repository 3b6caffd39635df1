package raindrop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CollectionDraft describes a collection to create.
type CollectionDraft struct {
	Title    string
	View     string
	Public   bool
	ParentID *int
}

func (d CollectionDraft) payload() map[string]any {
	body := map[string]any{
		"title":  d.Title,
		"public": d.Public,
	}
	if d.View != "" {
		body["view"] = d.View
	}
	if d.ParentID != nil {
		body["parent"] = CollectionRef{ID: *d.ParentID}
	}
	return body
}

// CollectionUpdate carries the fields of an existing collection to change.
// Nil fields are omitted from the request and left untouched by the service.
type CollectionUpdate struct {
	Title    *string
	View     *string
	Public   *bool
	ParentID *int
	Expanded *bool
}

// Empty reports whether the update changes nothing.
func (u CollectionUpdate) Empty() bool {
	return u.Title == nil && u.View == nil && u.Public == nil && u.ParentID == nil && u.Expanded == nil
}

func (u CollectionUpdate) payload() map[string]any {
	body := map[string]any{}
	if u.Title != nil {
		body["title"] = *u.Title
	}
	if u.View != nil {
		body["view"] = *u.View
	}
	if u.Public != nil {
		body["public"] = *u.Public
	}
	if u.ParentID != nil {
		body["parent"] = CollectionRef{ID: *u.ParentID}
	}
	if u.Expanded != nil {
		body["expanded"] = *u.Expanded
	}
	return body
}

// ListCollections returns the user's root-level collections.
func (c *Client) ListCollections(ctx context.Context) ([]Collection, error) {
	env, err := c.call(ctx, http.MethodGet, "/collections", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCollections(env)
}

// ListChildCollections returns every nested collection. The endpoint path
// ("childrens") is the remote API's own spelling.
func (c *Client) ListChildCollections(ctx context.Context) ([]Collection, error) {
	env, err := c.call(ctx, http.MethodGet, "/collections/childrens", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCollections(env)
}

// GetCollection fetches a single collection by id.
func (c *Client) GetCollection(ctx context.Context, id int) (*Collection, error) {
	env, err := c.call(ctx, http.MethodGet, fmt.Sprintf("/collection/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCollection(env)
}

// CreateCollection creates a collection and returns the stored record,
// including its assigned id.
func (c *Client) CreateCollection(ctx context.Context, draft CollectionDraft) (*Collection, error) {
	env, err := c.call(ctx, http.MethodPost, "/collection", nil, draft.payload())
	if err != nil {
		return nil, err
	}
	return decodeCollection(env)
}

// UpdateCollection applies update to the collection with the given id and
// returns the record as stored afterwards.
func (c *Client) UpdateCollection(ctx context.Context, id int, update CollectionUpdate) (*Collection, error) {
	env, err := c.call(ctx, http.MethodPut, fmt.Sprintf("/collection/%d", id), nil, update.payload())
	if err != nil {
		return nil, err
	}
	return decodeCollection(env)
}

// DeleteCollection removes a collection. The service moves the raindrops it
// contained to Trash rather than deleting them.
func (c *Client) DeleteCollection(ctx context.Context, id int) error {
	_, err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/collection/%d", id), nil, nil)
	return err
}

// EmptyTrash permanently deletes every raindrop in the Trash
// pseudo-collection.
func (c *Client) EmptyTrash(ctx context.Context) error {
	return c.DeleteCollection(ctx, CollectionTrash)
}

func decodeCollection(env *envelope) (*Collection, error) {
	var item Collection
	if err := json.Unmarshal(env.Item, &item); err != nil {
		return nil, fmt.Errorf("raindrop: decode collection: %w", err)
	}
	return &item, nil
}

func decodeCollections(env *envelope) ([]Collection, error) {
	var items []Collection
	if err := json.Unmarshal(env.Items, &items); err != nil {
		return nil, fmt.Errorf("raindrop: decode collections: %w", err)
	}
	return items, nil
}
