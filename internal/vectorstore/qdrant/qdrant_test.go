package qdrant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumechat/internal/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	var gotUpsert map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/collections/resume":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPut && r.URL.Path == "/collections/resume/points":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotUpsert))
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPost && r.URL.Path == "/collections/resume/points/search":
			json.NewEncoder(w).Encode(map[string]any{
				"result": []map[string]any{
					{"score": 0.91, "payload": map[string]any{
						"chunk_id": "basics", "title": "Basics", "text": "Jane Doe",
					}},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s := New(Config{URL: srv.URL, APIKey: "secret", Collection: "resume"})
	require.NoError(t, s.Init(2))

	chunks := []domain.Chunk{{ID: "basics", Title: "Basics", Text: "Jane Doe"}}
	require.NoError(t, s.Upsert(chunks, [][]float32{{0.1, 0.9}}))
	points, ok := gotUpsert["points"].([]any)
	require.True(t, ok)
	require.Len(t, points, 1)

	results, err := s.Search([]float32{0.1, 0.9}, 3)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "basics", results[0].Chunk.ID)
	assert.Equal(t, "Basics", results[0].Chunk.Title)
	assert.InDelta(t, 0.91, results[0].Score, 1e-9)
}

// Clear must empty the collection without dropping it, so the Init,
// Clear, Upsert sequence the engine runs when reindexing never upserts
// into a collection that no longer exists.
func TestStoreClearKeepsCollection(t *testing.T) {
	var ops []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEqual(t, http.MethodDelete, r.Method)
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/collections/resume":
			ops = append(ops, "create")
		case r.Method == http.MethodPost && r.URL.Path == "/collections/resume/points/delete":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Contains(t, body, "filter")
			ops = append(ops, "delete-points")
		case r.Method == http.MethodPut && r.URL.Path == "/collections/resume/points":
			ops = append(ops, "upsert")
		default:
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := New(Config{URL: srv.URL, Collection: "resume"})
	require.NoError(t, s.Init(2))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Upsert(
		[]domain.Chunk{{ID: "basics", Title: "Basics", Text: "Jane Doe"}},
		[][]float32{{0.1, 0.9}},
	))
	assert.Equal(t, []string{"create", "delete-points", "upsert"}, ops)
}

func TestStoreUpsertLengthMismatch(t *testing.T) {
	s := New(Config{URL: "http://localhost:1", Collection: "resume"})
	err := s.Upsert([]domain.Chunk{{ID: "a"}}, nil)
	assert.Error(t, err)
}

func TestStoreErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := New(Config{URL: srv.URL, Collection: "resume"})
	assert.Error(t, s.Init(2))
	_, err := s.Search([]float32{1}, 1)
	assert.Error(t, err)
}

func TestStoreInitInvalidDimension(t *testing.T) {
	s := New(Config{URL: "http://localhost:1", Collection: "resume"})
	assert.Error(t, s.Init(0))
}
