package tools

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyTrash(t *testing.T) {
	client, _ := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/collection/-99", r.URL.Path)
		fmt.Fprint(w, `{"result": true}`)
	})

	tool := NewEmptyTrashTool(client)
	result, err := tool.Handler(context.Background(), callRequest("empty_trash", map[string]any{}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Contains(t, textContent(t, result), "Trash emptied")
}

func TestEmptyTrashRelaysServiceError(t *testing.T) {
	client, _ := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"result": false, "errorMessage": "Something went wrong"}`)
	})

	tool := NewEmptyTrashTool(client)
	result, err := tool.Handler(context.Background(), callRequest("empty_trash", map[string]any{}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "Something went wrong")
}
