// Package engine ties retrieval and answer synthesis into a single
// question-answering pipeline over one person's profile.
package engine

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"resumechat/internal/answer"
	"resumechat/internal/corpus"
	"resumechat/internal/domain"
	"resumechat/internal/scoring"
	"resumechat/internal/textutil"
)

// Config carries the engine's collaborators and retrieval knobs.
// Zero values fall back to sane defaults; a nil Embedder or Store
// disables the semantic path entirely.
type Config struct {
	Embedder domain.Embedder
	Store    domain.VectorStore
	Logger   *zap.Logger

	// DocumentURL, when set together with Extractor, sources the corpus
	// from an external document instead of the structured profile.
	DocumentURL string
	Extractor   domain.Extractor

	TopK              int
	LexicalThreshold  float64
	SemanticThreshold float64
	MaxSentences      int
}

// Engine answers free-form questions about one profile.
type Engine struct {
	profile domain.Profile
	cfg     Config
	log     *zap.Logger

	profileCache corpus.Cache
	docCache     corpus.Cache

	// indexMu serializes index builds; handlers may answer concurrently.
	// indexed remembers which chunk slice was last embedded and upserted
	// into the vector store, so repeat questions skip the batch call.
	indexMu sync.Mutex
	indexed []domain.Chunk
}

// New builds an engine for the given profile. Defaults: top 5 results,
// lexical threshold 0.02, semantic threshold 0.30, 3 sentences per chunk.
func New(profile domain.Profile, cfg Config) *Engine {
	if cfg.TopK <= 0 {
		cfg.TopK = 5
	}
	if cfg.LexicalThreshold <= 0 {
		cfg.LexicalThreshold = 0.02
	}
	if cfg.SemanticThreshold <= 0 {
		cfg.SemanticThreshold = 0.30
	}
	if cfg.MaxSentences <= 0 {
		cfg.MaxSentences = 3
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{profile: profile, cfg: cfg, log: log}
}

// Answer answers using lexical retrieval only. It never fails: any
// internal problem degrades to the not-found answer.
func (e *Engine) Answer(question string) domain.Answer {
	return e.answer(context.Background(), question, false)
}

// AnswerContext answers using semantic retrieval when an embedder and
// vector store are configured, falling back to lexical retrieval when
// the semantic path yields nothing.
func (e *Engine) AnswerContext(ctx context.Context, question string) domain.Answer {
	return e.answer(ctx, question, true)
}

func (e *Engine) answer(ctx context.Context, question string, semantic bool) domain.Answer {
	cls := answer.Classify(e.profile, question)

	// Structured intents are answered straight from the profile.
	switch cls.Intent {
	case answer.IntentTechnology:
		if ans, ok := answer.Technology(e.profile, cls.Tech); ok {
			return ans
		}
	case answer.IntentBackground:
		return answer.Background(e.profile)
	case answer.IntentRoleCompany:
		if cls.Job != nil {
			return answer.RoleCompany(e.profile, *cls.Job)
		}
	}

	chunks := e.corpusChunks(ctx)
	if len(chunks) == 0 {
		return answer.NotFound(e.profile)
	}

	queryTokens := textutil.Tokenize(question)

	var candidates []domain.ScoredChunk
	if semantic {
		candidates = e.trySemantic(ctx, question, chunks, cls)
	}
	if len(candidates) == 0 {
		candidates = e.retrieveLexical(question, chunks, cls)
	}
	if len(candidates) == 0 {
		return answer.NotFound(e.profile)
	}

	if cls.Intent == answer.IntentSkills {
		if ans, ok := answer.Skills(e.profile, candidates); ok {
			return ans
		}
	}
	return answer.General(e.profile, candidates, queryTokens, e.cfg.MaxSentences)
}

// corpusChunks returns the retrieval corpus, preferring the external
// document when one is configured and falling back to the structured
// profile when extraction fails.
func (e *Engine) corpusChunks(ctx context.Context) []domain.Chunk {
	if e.cfg.DocumentURL != "" && e.cfg.Extractor != nil {
		chunks, err := e.docCache.Get(func() ([]domain.Chunk, error) {
			text, err := e.cfg.Extractor.Extract(ctx, e.cfg.DocumentURL)
			if err != nil {
				return nil, err
			}
			return corpus.BuildFromDocument(text), nil
		})
		if err == nil && len(chunks) > 0 {
			return chunks
		}
		if err != nil {
			e.log.Warn("document extraction failed, using profile corpus",
				zap.String("url", e.cfg.DocumentURL), zap.Error(err))
		}
	}
	chunks, _ := e.profileCache.Get(func() ([]domain.Chunk, error) {
		return corpus.Build(e.profile), nil
	})
	return chunks
}

// trySemantic runs embedding-based retrieval. It returns nil on any
// failure or when no result clears the similarity threshold, so the
// caller falls through to lexical retrieval. A panic inside the
// embedder or store is swallowed for the same reason.
func (e *Engine) trySemantic(ctx context.Context, question string, chunks []domain.Chunk, cls answer.Classification) (out []domain.ScoredChunk) {
	if e.cfg.Embedder == nil || e.cfg.Store == nil || !e.cfg.Embedder.Available() {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("semantic retrieval panicked", zap.Any("panic", r))
			out = nil
		}
	}()

	if err := e.ensureIndexed(ctx, chunks); err != nil {
		e.log.Warn("semantic index build failed", zap.Error(err))
		return nil
	}

	qVec, err := e.cfg.Embedder.Embed(ctx, question)
	if err != nil || len(qVec) == 0 {
		if err != nil {
			e.log.Warn("question embedding failed", zap.Error(err))
		}
		return nil
	}

	results, err := e.cfg.Store.Search(qVec, e.cfg.TopK)
	if err != nil {
		e.log.Warn("vector search failed", zap.Error(err))
		return nil
	}

	for _, r := range results {
		if r.Score < e.cfg.SemanticThreshold {
			continue
		}
		if cls.RoleQuestion && answer.HasGoalLanguage(r.Chunk.Text) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ensureIndexed embeds the corpus and loads it into the vector store,
// once per distinct chunk slice.
func (e *Engine) ensureIndexed(ctx context.Context, chunks []domain.Chunk) error {
	e.indexMu.Lock()
	defer e.indexMu.Unlock()

	if sameSlice(e.indexed, chunks) {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Title + "\n" + c.Text
	}
	vectors, err := e.cfg.Embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return err
	}

	var kept []domain.Chunk
	var keptVecs [][]float32
	for i, v := range vectors {
		if len(v) == 0 {
			continue
		}
		kept = append(kept, chunks[i])
		keptVecs = append(keptVecs, v)
	}
	if len(kept) == 0 {
		return nil
	}

	if err := e.cfg.Store.Init(len(keptVecs[0])); err != nil {
		return err
	}
	if err := e.cfg.Store.Clear(); err != nil {
		e.log.Warn("vector store clear failed", zap.Error(err))
	}
	if err := e.cfg.Store.Upsert(kept, keptVecs); err != nil {
		return err
	}
	e.indexed = chunks
	return nil
}

// retrieveLexical scores every chunk against the question with TF-IDF
// cosine similarity. The model is rebuilt per question over the current
// corpus so document frequencies always reflect what is being searched.
func (e *Engine) retrieveLexical(question string, chunks []domain.Chunk, cls answer.Classification) []domain.ScoredChunk {
	queryTokens := textutil.Tokenize(question)
	if len(queryTokens) == 0 {
		return nil
	}

	docTokens := make([][]string, len(chunks))
	for i, c := range chunks {
		docTokens[i] = textutil.Tokenize(c.Title + " " + c.Text)
	}
	model := scoring.NewTFIDF(docTokens)
	qVec := model.Vector(queryTokens)

	scored := make([]domain.ScoredChunk, 0, len(chunks))
	for i, c := range chunks {
		if cls.RoleQuestion && answer.HasGoalLanguage(c.Text) {
			continue
		}
		s := scoring.Cosine(qVec, model.Vector(docTokens[i]))
		if s > e.cfg.LexicalThreshold {
			scored = append(scored, domain.ScoredChunk{Chunk: c, Score: s})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > e.cfg.TopK {
		scored = scored[:e.cfg.TopK]
	}
	return scored
}

func sameSlice(a, b []domain.Chunk) bool {
	return len(a) > 0 && len(a) == len(b) && &a[0] == &b[0]
}

// Answer is a convenience for one-off lexical questions without
// constructing an Engine.
func Answer(question string, profile domain.Profile) domain.Answer {
	return New(profile, Config{}).Answer(question)
}
