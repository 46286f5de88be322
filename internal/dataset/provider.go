package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-discovery-backend/internal/domain"
)

// Origin names where the installed dataset came from.
type Origin string

const (
	OriginFallback Origin = "fallback"
	OriginRemote   Origin = "remote"
	OriginManual   Origin = "manual"
)

var (
	// ErrNoURL means the provider has no remote endpoint configured.
	ErrNoURL = errors.New("dataset url not configured")
	// ErrTooLarge means the response body exceeded the configured cap.
	ErrTooLarge = errors.New("dataset response too large")
)

// Defaults used when Options leaves a field zero.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultMaxBytes  = 8 << 20
	DefaultCacheTTL  = 5 * time.Minute
	DefaultUserAgent = "discovery-backend/1.0"
)

// Options configures a Provider.
type Options struct {
	URL        string
	Timeout    time.Duration
	MaxBytes   int64
	UserAgent  string
	CacheTTL   time.Duration // <0 disables caching
	MaxRetries int           // 429 retries; 0 means default, <0 means none
	Client     *http.Client  // optional; Timeout is ignored when set
	Logger     *zerolog.Logger
}

// Provider fetches the dataset document from a remote endpoint. Any failure
// yields the built-in fallback dataset; Load never returns an error.
type Provider struct {
	url        string
	client     *http.Client
	userAgent  string
	maxBytes   int64
	maxRetries int
	ttl        time.Duration
	cache      *gocache.Cache
	log        zerolog.Logger
}

// NewProvider applies defaults to opts and returns a Provider.
func NewProvider(opts Options) *Provider {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	switch {
	case opts.MaxRetries == 0:
		opts.MaxRetries = defaultMaxRetries
	case opts.MaxRetries < 0:
		opts.MaxRetries = 0
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		}
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	p := &Provider{
		url:        opts.URL,
		client:     client,
		userAgent:  opts.UserAgent,
		maxBytes:   opts.MaxBytes,
		maxRetries: opts.MaxRetries,
		ttl:        opts.CacheTTL,
		log:        logger.With().Str("component", "dataset").Logger(),
	}
	if opts.CacheTTL > 0 {
		p.cache = gocache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}
	return p
}

// URL returns the configured endpoint, possibly empty.
func (p *Provider) URL() string { return p.url }

// Load returns the remote dataset, or the fallback when it cannot be used.
func (p *Provider) Load(ctx context.Context) domain.Dataset {
	ds, _ := p.Resolve(ctx)
	return ds
}

// Resolve is Load that also reports which source won.
func (p *Provider) Resolve(ctx context.Context) (domain.Dataset, Origin) {
	if p.url == "" {
		p.log.Debug().Msg("no dataset url configured, using fallback")
		return Fallback(), OriginFallback
	}
	if p.cache != nil {
		if v, ok := p.cache.Get(p.url); ok {
			return v.(domain.Dataset).Normalize(), OriginRemote
		}
	}

	ds, err := p.Fetch(ctx)
	if err != nil {
		p.log.Warn().Err(err).Str("url", p.url).Msg("dataset load failed, using fallback")
		return Fallback(), OriginFallback
	}
	if p.cache != nil {
		p.cache.Set(p.url, ds, p.ttl)
	}
	return ds, OriginRemote
}

// Invalidate drops the cached remote dataset so the next Resolve refetches.
func (p *Provider) Invalidate() {
	if p.cache != nil {
		p.cache.Delete(p.url)
	}
}

// Fetch GETs and decodes the remote document without falling back.
func (p *Provider) Fetch(ctx context.Context) (domain.Dataset, error) {
	if p.url == "" {
		return domain.Dataset{}, ErrNoURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := doWithRetry(ctx, p.client, req, p.maxRetries)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Dataset{}, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBytes+1))
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > p.maxBytes {
		return domain.Dataset{}, fmt.Errorf("%w: limit %d bytes", ErrTooLarge, p.maxBytes)
	}

	ds, rep, err := Decode(body)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("decode: %w", err)
	}
	if !rep.Clean() {
		p.log.Debug().
			Strs("coerced", rep.Coerced).
			Interface("skipped", rep.Skipped).
			Msg("dataset collections coerced")
	}
	return ds, nil
}
