package tools

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCollection(t *testing.T) {
	client, _ := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/collection/7", r.URL.Path)
		fmt.Fprint(w, `{"result": true}`)
	})

	tool := NewDeleteCollectionTool(client)
	result, err := tool.Handler(context.Background(), callRequest("delete_collection", map[string]any{
		"collection_id": 7,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := textContent(t, result)
	assert.Contains(t, text, "Collection 7 removed")
	assert.Contains(t, text, "moved to Trash")
}

func TestDeleteCollectionMissingID(t *testing.T) {
	client, requests := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {})

	tool := NewDeleteCollectionTool(client)
	result, err := tool.Handler(context.Background(), callRequest("delete_collection", map[string]any{}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Zero(t, *requests)
}
