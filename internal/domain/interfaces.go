package domain

import "context"

// Embedder converts free text into a numeric vector representation using an
// external provider. Implementations must be safe to call when the provider
// is unconfigured: Available reports false and calls return errors, which the
// caller treats as "no semantic signal", never as a user-visible failure.
type Embedder interface {
	// Embed returns the embedding for one text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch returns one vector per input text. A nil row means the
	// provider produced no usable embedding for that item.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Available reports whether the provider is configured at all.
	Available() bool
}

// VectorStore persists chunk embeddings and supports similarity search.
type VectorStore interface {
	Init(dimension int) error
	Upsert(chunks []Chunk, vectors [][]float32) error
	Search(vector []float32, topK int) ([]ScoredChunk, error)
	Clear() error
}

// Extractor turns an external document into plain text. It is a black box
// that may fail; on failure the structured profile is used instead.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}
