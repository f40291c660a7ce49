// Package embedding provides the semantic scoring signal: clients that turn
// text into vectors via an external provider. Providers are unreliable by
// contract; every failure mode resolves to "no embedding", never to an
// error the end user sees.
package embedding

import (
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"resumechat/internal/domain"
)

// ErrUnavailable is returned by embedders with no configured provider.
var ErrUnavailable = errors.New("embedding provider not configured")

// Config configures the OpenAI-compatible embeddings client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAI embeds text through an OpenAI-compatible embeddings endpoint.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

// NewOpenAI builds an embedder from cfg. A blank API key is not an error:
// it yields a Noop embedder so the pipeline degrades to lexical scoring.
func NewOpenAI(cfg Config, log *zap.Logger) domain.Embedder {
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Info("no embedding API key, semantic scoring disabled")
		return Noop{}
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &OpenAI{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		timeout: timeout,
		log:     log,
	}
}

// Available reports true: the client is configured (requests may still fail).
func (e *OpenAI) Available() bool { return true }

// Embed returns the embedding for one text.
func (e *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	rows, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if rows[0] == nil {
		return nil, errors.New("embedding response empty")
	}
	return rows[0], nil
}

// EmbedBatch embeds all texts in a single request. Rows the provider did
// not answer for stay nil; callers treat those items as having no semantic
// signal.
func (e *OpenAI) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(e.model),
		Input: texts,
	})
	if err != nil {
		e.log.Warn("embedding request failed", zap.Error(err))
		return nil, err
	}
	rows := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(rows) || len(d.Embedding) == 0 {
			continue
		}
		v := make([]float32, len(d.Embedding))
		copy(v, d.Embedding)
		rows[d.Index] = v
	}
	return rows, nil
}

// Noop is the embedder used when no provider is configured. Every call
// reports unavailability.
type Noop struct{}

func (Noop) Available() bool { return false }

func (Noop) Embed(context.Context, string) ([]float32, error) {
	return nil, ErrUnavailable
}

func (Noop) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	return nil, ErrUnavailable
}
