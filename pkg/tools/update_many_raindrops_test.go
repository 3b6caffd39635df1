package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

func TestUpdateManyRaindrops(t *testing.T) {
	var gotQuery url.Values
	var gotBody map[string]any
	client, _ := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/raindrops/5", r.URL.Path)
		gotQuery = r.URL.Query()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"result": true, "modified": 3}`)
	})

	tool := NewUpdateManyRaindropsTool(client)
	result, err := tool.Handler(context.Background(), callRequest("update_many_raindrops", map[string]any{
		"collection_id":        5,
		"ids":                  []any{1, 2, 3},
		"tags":                 []any{"archive"},
		"target_collection_id": 9,
		"search":               "#old",
		"nested":               true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	// ids and the change set travel in the body; search and nested narrow
	// the match through the query string.
	assert.Equal(t, url.Values{"search": {"#old"}, "nested": {"true"}}, gotQuery)
	assert.Equal(t, map[string]any{
		"ids":        []any{float64(1), float64(2), float64(3)},
		"tags":       []any{"archive"},
		"collection": map[string]any{"$id": float64(9)},
	}, gotBody)

	var bulk raindrop.BulkResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &bulk))
	assert.Equal(t, 3, bulk.Modified)
}

func TestUpdateManyRaindropsClearsTags(t *testing.T) {
	var gotBody map[string]any
	client, _ := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"result": true, "modified": 12}`)
	})

	tool := NewUpdateManyRaindropsTool(client)
	result, err := tool.Handler(context.Background(), callRequest("update_many_raindrops", map[string]any{
		"collection_id": 0,
		"tags":          []any{},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, map[string]any{"tags": []any{}}, gotBody)
}

// With collection 0 a mistyped tags array reduced to [] would clear tags
// account-wide, so it must fail before any request is made.
func TestUpdateManyRaindropsRejectsMistypedArrays(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{
			name: "numeric tags",
			args: map[string]any{"collection_id": 0, "tags": []any{float64(1), float64(2)}},
			want: "tags must be an array of strings",
		},
		{
			name: "string ids",
			args: map[string]any{"collection_id": 0, "ids": []any{"55"}, "important": true},
			want: "ids must be an array of numbers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, requests := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {})

			tool := NewUpdateManyRaindropsTool(client)
			result, err := tool.Handler(context.Background(), callRequest("update_many_raindrops", tt.args))
			require.NoError(t, err)

			assert.True(t, result.IsError)
			assert.Contains(t, textContent(t, result), tt.want)
			assert.Zero(t, *requests)
		})
	}
}

func TestUpdateManyRaindropsScreenshotCovers(t *testing.T) {
	var gotBody map[string]any
	client, _ := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"result": true, "modified": 4}`)
	})

	tool := NewUpdateManyRaindropsTool(client)
	result, err := tool.Handler(context.Background(), callRequest("update_many_raindrops", map[string]any{
		"collection_id": 5,
		"cover":         "<screenshot>",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, map[string]any{"cover": "<screenshot>"}, gotBody)
}

// Search alone selects records but changes nothing, so it does not count as
// an update.
func TestUpdateManyRaindropsRequiresChanges(t *testing.T) {
	client, requests := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {})

	tool := NewUpdateManyRaindropsTool(client)
	result, err := tool.Handler(context.Background(), callRequest("update_many_raindrops", map[string]any{
		"collection_id": 0,
		"search":        "#old",
		"nested":        true,
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "no update parameters provided")
	assert.Zero(t, *requests)
}

func TestUpdateManyRaindropsAcceptsReservedIDs(t *testing.T) {
	for _, id := range []int{0, -1, -99} {
		t.Run(fmt.Sprintf("collection %d", id), func(t *testing.T) {
			var gotPath string
			client, _ := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				fmt.Fprint(w, `{"result": true, "modified": 0}`)
			})

			tool := NewUpdateManyRaindropsTool(client)
			result, err := tool.Handler(context.Background(), callRequest("update_many_raindrops", map[string]any{
				"collection_id": id,
				"important":     true,
			}))
			require.NoError(t, err)

			assert.False(t, result.IsError)
			assert.Equal(t, fmt.Sprintf("/raindrops/%d", id), gotPath)
		})
	}
}
