// Package search implements the keyword relevance search over the
// knowledge-discovery dataset (faculty, papers, patents, projects).
//
//   - No logging in the library (callers decide how/what to log)
//   - Functional options for weights and limits (Option pattern)
//   - The dataset is read from a Source on every call, never snapshotted
//   - Deterministic scoring and a stable sort (ties keep collection order)
//
// Scoring is additive: every (query term, AI keyword) pair where one contains
// the other adds KeywordWeight, every query term found in the record content
// adds ContentWeight, and the sum is capped at MaxConfidence.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/tbourn/go-discovery-backend/internal/domain"
)

// Source supplies the dataset currently installed for search.
type Source interface {
	Get() domain.Dataset
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() domain.Dataset

// Get calls f.
func (f SourceFunc) Get() domain.Dataset { return f() }

// ----------------------------------------------------------------------------
// Options

type Option func(*config)

type config struct {
	keywordWeight int
	contentWeight int
	minTermRunes  int
	maxResults    int
}

func defaultConfig() config {
	return config{
		keywordWeight: KeywordWeight,
		contentWeight: ContentWeight,
		minTermRunes:  MinTermRunes,
		maxResults:    0,
	}
}

// WithWeights overrides the keyword and content weights. Negative values are
// ignored.
func WithWeights(keyword, content int) Option {
	return func(c *config) {
		if keyword >= 0 {
			c.keywordWeight = keyword
		}
		if content >= 0 {
			c.contentWeight = content
		}
	}
}

// WithMinTermRunes sets the shortest query term kept. Values below 1 are ignored.
func WithMinTermRunes(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.minTermRunes = n
		}
	}
}

// WithMaxResults truncates the ranked list. Zero or negative means no cap.
func WithMaxResults(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxResults = n
		}
	}
}

// ----------------------------------------------------------------------------
// Engine

// Engine ranks records of the dataset supplied by its Source. It holds no
// per-query state and is safe for concurrent use when the Source is.
type Engine struct {
	cfg config
	src Source
}

// NewEngine returns an Engine reading from src.
func NewEngine(src Source, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Engine{cfg: cfg, src: src}
}

// Terms returns the query terms the engine would score for q.
func (e *Engine) Terms(q string) []string {
	return tokenize(q, e.cfg.minTermRunes)
}

// Search scores every record against q and returns the matches ranked by
// confidence, highest first. Records with equal confidence keep collection
// order (faculty, papers, patents, projects) and then dataset order.
//
// A blank q returns an empty list without reading the Source. The context is
// accepted for parity with network-backed searchers; scoring does not block.
func (e *Engine) Search(_ context.Context, q string) []domain.SearchResult {
	out := []domain.SearchResult{}
	if strings.TrimSpace(q) == "" || e.src == nil {
		return out
	}
	terms := e.Terms(q)
	if len(terms) == 0 {
		return out
	}

	ds := e.src.Get()
	for _, kind := range domain.Kinds {
		for _, rec := range ds.Records(kind) {
			m := score(e.cfg, terms, rec.Keywords(), rec.Content())
			if m.Confidence <= 0 {
				continue
			}
			out = append(out, domain.SearchResult{
				Type:            kind,
				Data:            rec,
				Confidence:      m.Confidence,
				AIJustification: Explain(kind, m.MatchedKeywords, m.Confidence, rec),
				MatchedKeywords: m.MatchedKeywords,
			})
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Confidence > out[b].Confidence
	})

	if e.cfg.maxResults > 0 && len(out) > e.cfg.maxResults {
		out = out[:e.cfg.maxResults]
	}
	return out
}
