// Package http exposes the dashboard API. Handlers are thin: validate the
// token, serve from cache inside the revalidation window, otherwise ask
// the report service and cache what it returns.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pacedash/internal/auth"
	"pacedash/internal/cache"
	"pacedash/internal/config"
	"pacedash/internal/core"
	"pacedash/internal/log"
	"pacedash/internal/report"
)

const responseCacheSize = 64

type Server struct {
	service   *report.Service
	validator *auth.Validator
	logger    *log.Logger

	clientCache  *cache.LRU[core.ClientResponse]
	podCache     *cache.LRU[core.PodResponse]
	companyCache *cache.LRU[core.CompanyResponse]
	cacheManager *cache.Manager

	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewServer wires routes, caches and metrics, returning a ready-to-run
// http.Server on the configured port.
func NewServer(cfg *config.Config, svc *report.Service, validator *auth.Validator, logger *log.Logger) (*http.Server, *Server) {
	s := &Server{
		service:   svc,
		validator: validator,
		logger:    logger.WithComponent("http"),

		clientCache:  cache.NewLRU[core.ClientResponse](responseCacheSize, cfg.CacheTTL),
		podCache:     cache.NewLRU[core.PodResponse](responseCacheSize, cfg.CacheTTL),
		companyCache: cache.NewLRU[core.CompanyResponse](responseCacheSize, cfg.CacheTTL),
		cacheManager: cache.NewManager(),

		registry: prometheus.NewRegistry(),
	}

	s.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pacedash_http_requests_total",
		Help: "API requests by route and status code.",
	}, []string{"route", "status"})
	s.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pacedash_http_request_duration_seconds",
		Help:    "API request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	s.registry.MustRegister(s.requests, s.duration)

	s.cacheManager.Register(s.clientCache)
	s.cacheManager.Register(s.podCache)
	s.cacheManager.Register(s.companyCache)
	s.cacheManager.StartCleanup(cfg.CacheTTL)

	mux := chi.NewRouter()
	mux.Use(requestID)
	mux.Use(requestLogger(s.logger))
	mux.Use(securityHeaders)

	mux.Get("/healthz", s.handleHealth)
	mux.Get("/readyz", s.handleReady)
	mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	mux.Get("/api/ceo", s.instrument("/api/ceo", s.handleCeo))
	mux.Get("/api/pod/{slug}", s.instrument("/api/pod", s.handlePod))
	mux.Get("/api/client/{slug}", s.instrument("/api/client", s.handleClient))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}
	return srv, s
}

// Close stops the cache cleanup goroutine.
func (s *Server) Close() {
	s.cacheManager.Stop()
}

// instrument wraps a handler with the request counter and latency
// histogram for its route.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		s.requests.WithLabelValues(route, http.StatusText(sw.status)).Inc()
		s.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
