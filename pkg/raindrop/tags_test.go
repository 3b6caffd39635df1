package raindrop

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTagsGlobal(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{
			"result": true,
			"items": [
				{"_id": "golang", "count": 12},
				{"_id": "recipes", "count": 4}
			]
		}`)
	})

	tags, err := c.ListTags(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "/tags", gotPath)
	require.Len(t, tags, 2)
	assert.Equal(t, "golang", tags[0].Name)
	assert.Equal(t, 12, tags[0].Count)
}

func TestListTagsScoped(t *testing.T) {
	tests := []struct {
		name         string
		collectionID int
		wantPath     string
	}{
		{name: "regular collection", collectionID: 42, wantPath: "/tags/42"},
		{name: "unsorted sentinel", collectionID: CollectionUnsorted, wantPath: "/tags/-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				fmt.Fprint(w, `{"result": true, "items": []}`)
			})

			tags, err := c.ListTags(context.Background(), ptr(tt.collectionID))
			require.NoError(t, err)

			assert.Equal(t, tt.wantPath, gotPath)
			assert.Empty(t, tags)
		})
	}
}
