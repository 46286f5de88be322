// Package httpapi wires the HTTP transport (Gin) to the search and dataset
// services: middleware ordering, route registration and the fallbacks.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/go-discovery-backend/docs"
	"github.com/tbourn/go-discovery-backend/internal/config"
	"github.com/tbourn/go-discovery-backend/internal/dataset"
	"github.com/tbourn/go-discovery-backend/internal/http/handlers"
	"github.com/tbourn/go-discovery-backend/internal/http/middleware"
	"github.com/tbourn/go-discovery-backend/internal/search"
	"github.com/tbourn/go-discovery-backend/internal/services"
)

const defaultBodyLimit = 1 << 20

// Deps are the long-lived objects routes are served from.
type Deps struct {
	// DB holds the search audit log; nil disables auditing.
	DB *gorm.DB
	// Store is the installed dataset. Required.
	Store *dataset.Store
	// Datasets manages Store. When nil one is built over Store without a
	// cache to invalidate.
	Datasets *services.DatasetService
}

// RegisterRoutes attaches middleware and endpoints to r.
//
// Middleware order:
//  1. OpenTelemetry
//  2. RequestID
//  3. AccessLog (redacting, request-scoped logger)
//  4. Recovery
//  5. Body size limit
//  6. Metrics
//  7. Rate limiter (per client IP)
//  8. CORS
//  9. Security headers
//  10. gzip
func RegisterRoutes(r *gin.Engine, deps Deps, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(middleware.AccessLogOptions{}))
	r.Use(middleware.Recovery())

	// PUT /dataset is the only route with a real body; it may carry a whole dataset.
	bodyLimit := cfg.Dataset.MaxBytes
	if bodyLimit <= 0 {
		bodyLimit = defaultBodyLimit
	}
	r.Use(limitBody(bodyLimit))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)

	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// promhttp negotiates its own compression.
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dataset": deps.Store.Info().Source})
	})

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine := search.NewEngine(deps.Store)
	searchSvc := services.NewSearchService(deps.DB, engine)
	searchSvc.MaxQueryRunes = cfg.Search.MaxQueryRunes
	searchSvc.MaxResults = cfg.Search.MaxResults

	dataSvc := deps.Datasets
	if dataSvc == nil {
		dataSvc = services.NewDatasetService(deps.Store, nil)
	}
	h := handlers.New(searchSvc, dataSvc)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.GET("/search", h.Search)
		api.GET("/dataset", h.GetDataset)
		api.GET("/directory/:kind", h.Directory)
	}

	admin := api.Group("", middleware.AdminAuth(cfg.AdminToken))
	{
		admin.GET("/search/logs", h.ListSearchLogs)
		admin.POST("/dataset/reload", h.ReloadDataset)
		admin.PUT("/dataset", h.ReplaceDataset)
	}
}

// corsMiddleware returns the CORS handlers for the configured origins. With
// no origins every origin is allowed without credentials; otherwise allowed
// origins are echoed back.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Token", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		base.AllowAllOrigins = true
		return []gin.HandlerFunc{
			// ACAO: * even without an Origin header, for simple clients and probes.
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	base.AllowOrigins = origins
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(base),
	}
}

// limitBody caps request bodies at maxBytes; reads past the cap fail with
// *http.MaxBytesError.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
