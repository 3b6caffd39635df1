package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

func TestGetChildCollections(t *testing.T) {
	client, _ := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/childrens", r.URL.Path)
		fmt.Fprint(w, `{
			"result": true,
			"items": [{"_id": 9, "title": "Nested", "parent": {"$id": 1}}]
		}`)
	})

	tool := NewGetChildCollectionsTool(client)
	result, err := tool.Handler(context.Background(), callRequest("get_child_collections", map[string]any{}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var collections []raindrop.Collection
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &collections))
	require.Len(t, collections, 1)
	require.NotNil(t, collections[0].Parent)
	assert.Equal(t, 1, collections[0].Parent.ID)
}
