// Package services – SearchService
//
// SearchService validates a query, runs it through the relevance engine,
// applies the optional type filter and result limit, and writes an audit row.
// The audit write is best effort: a failure is logged and the search result is
// returned unchanged.
//
// Observability: public methods are OpenTelemetry-instrumented and every search
// is counted in the discovery_search_* Prometheus collectors.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-discovery-backend/internal/domain"
	"github.com/tbourn/go-discovery-backend/internal/observability"
	"github.com/tbourn/go-discovery-backend/internal/repo"
	"github.com/tbourn/go-discovery-backend/internal/utils"
)

// Searcher is the engine contract SearchService depends on.
type Searcher interface {
	Search(ctx context.Context, q string) []domain.SearchResult
	Terms(q string) []string
}

// Query is one search request.
type Query struct {
	Text      string
	Kinds     []string // optional filter; names as accepted by domain.ParseKind
	Limit     int      // optional; <= 0 means the service maximum
	RequestID string
}

// SearchResponse is the ranked outcome of a Query.
type SearchResponse struct {
	Query   string                `json:"query"`
	Terms   []string              `json:"terms"`
	Total   int                   `json:"total"` // matches after the type filter, before the limit
	Results []domain.SearchResult `json:"results"`
}

// SearchService runs searches and serves the audit log.
type SearchService struct {
	DB     *gorm.DB // audit log; nil disables auditing
	Engine Searcher
	Log    zerolog.Logger

	MaxQueryRunes int // 0 disables the check
	MaxResults    int // 0 means unlimited
}

// NewSearchService returns a SearchService with default limits.
func NewSearchService(db *gorm.DB, engine Searcher) *SearchService {
	return &SearchService{
		DB:            db,
		Engine:        engine,
		Log:           log.Logger,
		MaxQueryRunes: 256,
		MaxResults:    100,
	}
}

// Search validates q and returns ranked results. A blank query is not an
// error; it returns an empty response without consulting the engine.
func (s *SearchService) Search(ctx context.Context, q Query) (*SearchResponse, error) {
	tr := otel.Tracer("services/SearchService")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(
			attribute.Int("query.runes", utf8.RuneCountInString(q.Text)),
			attribute.StringSlice("query.kinds", q.Kinds),
			attribute.Int("query.limit", q.Limit),
		),
	)
	defer span.End()

	if s.MaxQueryRunes > 0 && utf8.RuneCountInString(q.Text) > s.MaxQueryRunes {
		observability.ObserveSearch(observability.OutcomeRejected, 0, 0)
		observability.SpanError(span, ErrQueryTooLong)
		return nil, ErrQueryTooLong
	}
	filter, err := parseKinds(q.Kinds)
	if err != nil {
		observability.ObserveSearch(observability.OutcomeRejected, 0, 0)
		observability.SpanError(span, err)
		return nil, err
	}

	resp := &SearchResponse{Query: q.Text, Terms: []string{}, Results: []domain.SearchResult{}}
	if strings.TrimSpace(q.Text) == "" {
		observability.ObserveSearch(observability.OutcomeBlank, 0, 0)
		return resp, nil
	}

	resp.Terms = nonNilTerms(s.Engine.Terms(q.Text))
	results := s.Engine.Search(ctx, q.Text)
	if len(filter) > 0 {
		kept := results[:0:0]
		for _, r := range results {
			if filter[r.Type] {
				kept = append(kept, r)
			}
		}
		results = kept
	}
	resp.Total = len(results)
	if n := s.limit(q.Limit); n > 0 && len(results) > n {
		results = results[:n]
	}
	resp.Results = results

	top := 0
	if len(results) > 0 {
		top = results[0].Confidence
	}
	outcome := observability.OutcomeEmpty
	if len(results) > 0 {
		outcome = observability.OutcomeHit
	}
	observability.ObserveSearch(outcome, len(results), top)
	span.SetAttributes(
		attribute.Int("search.total", resp.Total),
		attribute.Int("search.returned", len(results)),
		attribute.Int("search.top_confidence", top),
	)

	s.audit(ctx, domain.SearchLog{
		Query:         q.Text,
		Terms:         strings.Join(resp.Terms, " "),
		ResultCount:   len(results),
		TopConfidence: top,
		RequestID:     q.RequestID,
	})
	return resp, nil
}

// Recent returns one page of audit rows, newest first, and the total count.
func (s *SearchService) Recent(ctx context.Context, page, pageSize int) ([]domain.SearchLog, int64, error) {
	tr := otel.Tracer("services/SearchService")
	ctx, span := tr.Start(ctx, "Recent",
		trace.WithAttributes(
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if s.DB == nil {
		return []domain.SearchLog{}, 0, nil
	}
	_, size, offset := utils.Page(page, pageSize, 20, 100)

	total, err := repo.CountSearchLogs(ctx, s.DB)
	if err != nil {
		observability.SpanError(span, err)
		return nil, 0, err
	}
	if total == 0 {
		return []domain.SearchLog{}, 0, nil
	}
	items, err := repo.ListSearchLogsPage(ctx, s.DB, offset, size)
	observability.SpanError(span, err)
	return items, total, err
}

func (s *SearchService) audit(ctx context.Context, entry domain.SearchLog) {
	if s.DB == nil {
		return
	}
	if _, err := repo.CreateSearchLog(ctx, s.DB, entry); err != nil {
		s.Log.Warn().Err(err).Str("request_id", entry.RequestID).Msg("search audit write failed")
	}
}

// limit combines the requested limit with the service cap.
func (s *SearchService) limit(requested int) int {
	switch {
	case requested <= 0:
		return s.MaxResults
	case s.MaxResults > 0 && requested > s.MaxResults:
		return s.MaxResults
	default:
		return requested
	}
}

func parseKinds(names []string) (map[domain.Kind]bool, error) {
	var out map[domain.Kind]bool
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		k, ok := domain.ParseKind(n)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, n)
		}
		if out == nil {
			out = map[domain.Kind]bool{}
		}
		out[k] = true
	}
	return out, nil
}

func nonNilTerms(t []string) []string {
	if t == nil {
		return []string{}
	}
	return t
}

// RecentStats returns the audit row count and newest row time, used to build
// ETags for the audit listing. Without a DB both are zero.
func (s *SearchService) RecentStats(ctx context.Context) (int64, *time.Time, error) {
	if s.DB == nil {
		return 0, nil, nil
	}
	return repo.SearchLogStats(ctx, s.DB)
}
