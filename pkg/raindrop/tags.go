package raindrop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListTags returns tag usage counts, aggregated across every collection or
// scoped to one. Pass nil to aggregate globally; the sentinel ids are valid
// scopes too.
func (c *Client) ListTags(ctx context.Context, collectionID *int) ([]Tag, error) {
	path := "/tags"
	if collectionID != nil {
		path = fmt.Sprintf("/tags/%d", *collectionID)
	}
	env, err := c.call(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var tags []Tag
	if err := json.Unmarshal(env.Items, &tags); err != nil {
		return nil, fmt.Errorf("raindrop: decode tags: %w", err)
	}
	return tags, nil
}
