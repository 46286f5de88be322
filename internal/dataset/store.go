package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/tbourn/go-discovery-backend/internal/domain"
)

// Resolver produces a dataset and the origin it came from. *Provider
// satisfies it.
type Resolver interface {
	Resolve(ctx context.Context) (domain.Dataset, Origin)
}

// Info describes the installed dataset.
type Info struct {
	Source   Origin        `json:"source"`
	Counts   domain.Counts `json:"counts"`
	Total    int           `json:"total"`
	LoadedAt time.Time     `json:"loadedAt"`
}

// Store holds the active dataset. It starts with the fallback installed so
// reads before the first Load see a usable dataset. Datasets are replaced
// whole; readers never observe a partial swap.
type Store struct {
	mu   sync.RWMutex
	ds   domain.Dataset
	info Info

	resolver Resolver
	now      func() time.Time
}

// NewStore returns a Store that loads through r. A nil r makes Load install
// the fallback.
func NewStore(r Resolver) *Store {
	s := &Store{resolver: r, now: time.Now}
	s.install(Fallback(), OriginFallback)
	return s
}

// Load resolves a dataset and installs it.
func (s *Store) Load(ctx context.Context) Info {
	ds, origin := Fallback(), OriginFallback
	if s.resolver != nil {
		ds, origin = s.resolver.Resolve(ctx)
	}
	return s.install(ds, origin)
}

// Get returns the installed dataset. Callers must treat it as read-only.
func (s *Store) Get() domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

// Set installs ds as a manually supplied dataset.
func (s *Store) Set(ds domain.Dataset) Info {
	return s.install(ds.Normalize(), OriginManual)
}

// Info reports the installed dataset's origin and size.
func (s *Store) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

func (s *Store) install(ds domain.Dataset, origin Origin) Info {
	c := ds.Counts()
	info := Info{Source: origin, Counts: c, Total: c.Total(), LoadedAt: s.now().UTC()}

	s.mu.Lock()
	s.ds = ds
	s.info = info
	s.mu.Unlock()
	return info
}
