// Package chi exposes the search service over HTTP.
package chi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/stylesift/stylesift/internal/domain/search/constraint"
	"github.com/stylesift/stylesift/internal/domain/search/result"
	"github.com/stylesift/stylesift/internal/logger"
	"github.com/stylesift/stylesift/internal/metrics"
	healthuc "github.com/stylesift/stylesift/internal/usecase/health"
	searchuc "github.com/stylesift/stylesift/internal/usecase/search"
)

// Error codes returned in JSON error responses.
const (
	codeBadRequest        = "bad_request"
	codeCatalogLoadFailed = "catalog_load_failed"
	codeInternalError     = "internal_error"
)

// Server holds the HTTP handlers.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, health: health, logger: logger}
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Index)
	r.Get("/api/v1/search", s.SearchCatalog)
	r.Get("/health", s.GetHealth)
	r.Get("/metrics", s.Metrics)
}

// SearchCatalog handles GET /api/v1/search.
//
// Query parameters:
//
//	q      free-text query (required for any results; empty yields none)
//	top_k  result cap; defaults to the service default, no upper clamp
//	raw    "true" skips constraint parsing and filtering
func (s *Server) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	topK := s.search.DefaultTopK()
	if v := r.URL.Query().Get("top_k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "top_k must be an integer")
			return
		}
		topK = n
	}

	raw := r.URL.Query().Get("raw") == "true"

	start := time.Now()

	var (
		results []result.Result
		cons    constraint.Constraints
		err     error
	)
	if raw {
		results, err = s.search.Search(r.Context(), query, topK)
	} else {
		results, cons, err = s.search.SearchFiltered(r.Context(), query, topK)
	}

	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, r, err)
		return
	}
	metrics.SearchResultCount.Observe(float64(len(results)))
	if len(results) == 0 {
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
	} else {
		metrics.SearchesTotal.WithLabelValues("results").Inc()
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:       query,
		TopK:        topK,
		Constraints: constraintsToJSON(cons),
		Results:     resultsToJSON(results),
		Total:       len(results),
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}
	writeJSON(w, status, map[string]any{
		"status": string(report.Status),
		"checks": checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// handleDomainError maps errors to responses. Any search failure here is a
// catalog load problem; the core never errors on empty or unmatched queries.
// The request-scoped logger carries the request id; s.logger is the fallback
// outside a request middleware chain (tests mount Routes bare).
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromOr(r.Context(), s.logger).Error("search failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeCatalogLoadFailed, "catalog unavailable")
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
