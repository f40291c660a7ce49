package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "profile.yaml", cfg.Profile)
	assert.Equal(t, "memory", cfg.VectorStore.Type)
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.Equal(t, 0.02, cfg.Retrieval.LexicalThreshold)
	assert.Equal(t, 0.30, cfg.Retrieval.SemanticThreshold)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
profile: me.yaml
embedder:
  type: openai
  openai:
    model: ""
retrieval:
  top_k: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "me.yaml", cfg.Profile)
	assert.Equal(t, 10, cfg.Retrieval.TopK)
	assert.Equal(t, 0.02, cfg.Retrieval.LexicalThreshold)
	require.NotNil(t, cfg.Embedder.OpenAI)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedder.OpenAI.Model)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Embedder.OpenAI.APIKeyEnv)
	assert.Equal(t, 30, cfg.Embedder.OpenAI.TimeoutSecs)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	original := &AppConfig{
		Profile:     "jane.yaml",
		VectorStore: VectorStoreConfig{Type: "qdrant", Qdrant: &QdrantConfig{URL: "http://localhost:6333", Collection: "resume"}},
		Retrieval:   RetrievalConfig{TopK: 7, LexicalThreshold: 0.05, SemanticThreshold: 0.4, MaxSentences: 2},
		Server:      ServerConfig{Addr: ":9090"},
	}
	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jane.yaml", loaded.Profile)
	assert.Equal(t, "qdrant", loaded.VectorStore.Type)
	require.NotNil(t, loaded.VectorStore.Qdrant)
	assert.Equal(t, "resume", loaded.VectorStore.Qdrant.Collection)
	assert.Equal(t, 7, loaded.Retrieval.TopK)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n :bad"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
