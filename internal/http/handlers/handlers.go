// Package handlers exposes the search and dataset endpoints.
//
// Handlers are transport-thin: they parse query and path parameters, call
// the application services and map service errors to the error envelope.
package handlers

import (
	"context"
	"time"

	"github.com/tbourn/go-discovery-backend/internal/dataset"
	"github.com/tbourn/go-discovery-backend/internal/domain"
	"github.com/tbourn/go-discovery-backend/internal/services"
)

// SearchService runs searches and lists the search audit log.
// *services.SearchService satisfies it.
type SearchService interface {
	Search(ctx context.Context, q services.Query) (*services.SearchResponse, error)
	Recent(ctx context.Context, page, pageSize int) ([]domain.SearchLog, int64, error)
	RecentStats(ctx context.Context) (int64, *time.Time, error)
}

// DatasetService inspects and replaces the installed dataset.
// *services.DatasetService satisfies it.
type DatasetService interface {
	Info() dataset.Info
	Reload(ctx context.Context, force bool) dataset.Info
	Replace(ctx context.Context, raw []byte) (dataset.Info, dataset.Report, error)
	Directory(kind string, page, pageSize int) (*services.DirectoryPage, error)
}

// Handlers groups the HTTP endpoints.
type Handlers struct {
	searchSvc SearchService
	dataSvc   DatasetService
}

// New returns Handlers bound to the given services.
func New(search SearchService, data DatasetService) *Handlers {
	return &Handlers{searchSvc: search, dataSvc: data}
}
