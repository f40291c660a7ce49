// Package app assembles configured components into a running engine.
package app

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"resumechat/internal/config"
	"resumechat/internal/domain"
	"resumechat/internal/embedding"
	"resumechat/internal/engine"
	"resumechat/internal/extract"
	"resumechat/internal/vectorstore/memory"
	"resumechat/internal/vectorstore/qdrant"
)

// BuildEngine wires the embedder, vector store, and extractor selected
// by cfg into an engine for the given profile.
func BuildEngine(p domain.Profile, cfg *config.AppConfig, logger *zap.Logger) (*engine.Engine, error) {
	var emb domain.Embedder
	switch cfg.Embedder.Type {
	case "none", "":
		emb = embedding.Noop{}
	case "openai":
		oc := cfg.Embedder.OpenAI
		if oc == nil {
			oc = &config.OpenAIEmbedderConfig{APIKeyEnv: "OPENAI_API_KEY"}
		}
		emb = embedding.NewOpenAI(embedding.Config{
			APIKey:  os.Getenv(oc.APIKeyEnv),
			BaseURL: oc.BaseURL,
			Model:   oc.Model,
			Timeout: time.Duration(oc.TimeoutSecs) * time.Second,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown embedder: %s", cfg.Embedder.Type)
	}

	var st domain.VectorStore
	switch cfg.VectorStore.Type {
	case "memory", "":
		st = memory.New()
	case "qdrant":
		if cfg.VectorStore.Qdrant == nil {
			return nil, fmt.Errorf("qdrant config missing")
		}
		st = qdrant.New(qdrant.Config{
			URL:        cfg.VectorStore.Qdrant.URL,
			APIKey:     cfg.VectorStore.Qdrant.APIKey,
			Collection: cfg.VectorStore.Qdrant.Collection,
			Timeout:    time.Duration(cfg.VectorStore.Qdrant.TimeoutSecs) * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown vector store: %s", cfg.VectorStore.Type)
	}

	ec := engine.Config{
		Embedder:          emb,
		Store:             st,
		Logger:            logger,
		TopK:              cfg.Retrieval.TopK,
		LexicalThreshold:  cfg.Retrieval.LexicalThreshold,
		SemanticThreshold: cfg.Retrieval.SemanticThreshold,
		MaxSentences:      cfg.Retrieval.MaxSentences,
	}
	if cfg.Document.URL != "" {
		ec.DocumentURL = cfg.Document.URL
		ec.Extractor = extract.NewHTTP(time.Duration(cfg.Document.TimeoutSecs) * time.Second)
	}
	return engine.New(p, ec), nil
}

// LoadConfig loads the config from path, or from the default locations
// when path is empty.
func LoadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		cfg, _, err := config.LoadDefault()
		return cfg, err
	}
	return config.Load(path)
}
