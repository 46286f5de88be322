// Package services – DatasetService
//
// DatasetService exposes the installed dataset: where it came from, reloading
// it from the remote endpoint, replacing it with an uploaded document, and
// paging through one collection for directory views. Datasets are swapped as a
// unit through the store; nothing is persisted.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-discovery-backend/internal/dataset"
	"github.com/tbourn/go-discovery-backend/internal/domain"
	"github.com/tbourn/go-discovery-backend/internal/observability"
	"github.com/tbourn/go-discovery-backend/internal/utils"
)

// DatasetStore is the store contract DatasetService depends on.
// *dataset.Store satisfies it.
type DatasetStore interface {
	Load(ctx context.Context) dataset.Info
	Get() domain.Dataset
	Set(ds domain.Dataset) dataset.Info
	Info() dataset.Info
}

// CacheInvalidator drops cached remote data. *dataset.Provider satisfies it.
type CacheInvalidator interface {
	Invalidate()
}

// DirectoryPage is one page of a collection.
type DirectoryPage struct {
	Kind     domain.Kind     `json:"type"`
	Items    []domain.Record `json:"items"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int             `json:"total"`
}

// DatasetService manages the installed dataset.
type DatasetService struct {
	Store DatasetStore
	Cache CacheInvalidator // optional
	Log   zerolog.Logger
}

// NewDatasetService returns a DatasetService over store. cache may be nil.
func NewDatasetService(store DatasetStore, cache CacheInvalidator) *DatasetService {
	return &DatasetService{Store: store, Cache: cache, Log: log.Logger}
}

// Info reports the installed dataset's source, counts and load time.
func (s *DatasetService) Info() dataset.Info {
	return s.Store.Info()
}

// Reload loads the dataset again (remote with fallback). force drops the
// cached remote copy first.
func (s *DatasetService) Reload(ctx context.Context, force bool) dataset.Info {
	tr := otel.Tracer("services/DatasetService")
	ctx, span := tr.Start(ctx, "Reload", trace.WithAttributes(attribute.Bool("force", force)))
	defer span.End()

	if force && s.Cache != nil {
		s.Cache.Invalidate()
	}
	info := s.Store.Load(ctx)
	s.observe(info)
	span.SetAttributes(attribute.String("dataset.source", string(info.Source)), attribute.Int("dataset.total", info.Total))

	s.Log.Info().
		Str("source", string(info.Source)).
		Int("faculty", info.Counts.Faculty).
		Int("papers", info.Counts.Papers).
		Int("patents", info.Counts.Patents).
		Int("projects", info.Counts.Projects).
		Msg("dataset installed")
	return info
}

// Replace decodes raw with the same coercion rules as remote loads and
// installs the result. A document that is not a JSON object is rejected with
// ErrInvalidDataset and the installed dataset is kept.
func (s *DatasetService) Replace(ctx context.Context, raw []byte) (dataset.Info, dataset.Report, error) {
	tr := otel.Tracer("services/DatasetService")
	_, span := tr.Start(ctx, "Replace", trace.WithAttributes(attribute.Int("body.bytes", len(raw))))
	defer span.End()

	ds, rep, err := dataset.Decode(raw)
	if err != nil {
		if errors.Is(err, dataset.ErrNotObject) {
			err = fmt.Errorf("%w: %v", ErrInvalidDataset, err)
		}
		observability.SpanError(span, err)
		return s.Store.Info(), rep, err
	}

	info := s.Store.Set(ds)
	s.observe(info)
	s.Log.Info().
		Int("total", info.Total).
		Strs("coerced", rep.Coerced).
		Interface("skipped", rep.Skipped).
		Msg("dataset replaced manually")
	return info, rep, nil
}

// Directory returns one page of the named collection in dataset order.
func (s *DatasetService) Directory(kind string, page, pageSize int) (*DirectoryPage, error) {
	k, ok := domain.ParseKind(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	p, size, offset := utils.Page(page, pageSize, 20, 100)

	all := s.Store.Get().Records(k)
	start, end := utils.PageBounds(len(all), offset, size)
	return &DirectoryPage{
		Kind:     k,
		Items:    all[start:end],
		Page:     p,
		PageSize: size,
		Total:    len(all),
	}, nil
}

func (s *DatasetService) observe(info dataset.Info) {
	observability.ObserveDatasetLoad(string(info.Source),
		info.Counts.Faculty, info.Counts.Papers, info.Counts.Patents, info.Counts.Projects)
}
