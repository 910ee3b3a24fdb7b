// Package chi wires the HTTP API onto a chi router.
package chi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain"
	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
	domsearch "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/search"
	healthuc "github.com/LoaiAlaa24/fetch-companies-data/internal/usecase/health"
	"github.com/LoaiAlaa24/fetch-companies-data/internal/version"
)

// Use case contracts, defined here so handlers can be tested with fakes.
type companyLookup interface {
	LookupByDomain(ctx context.Context, rawDomain string) (domco.Company, error)
}

type companySearcher interface {
	Search(ctx context.Context, params domsearch.Params) ([]domco.Company, error)
}

type fuzzyMatcher interface {
	Match(ctx context.Context, params domsearch.FuzzyParams) ([]domco.FuzzyMatch, error)
}

type statsProvider interface {
	Get(ctx context.Context) (domco.Stats, error)
}

type healthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server holds the HTTP handlers for the company API.
type Server struct {
	lookup        companyLookup
	search        companySearcher
	fuzzy         fuzzyMatcher
	stats         statsProvider
	health        healthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	lookup companyLookup,
	search companySearcher,
	fuzzy fuzzyMatcher,
	stats statsProvider,
	health healthChecker,
	logger *zap.Logger,
) *Server {
	s := &Server{
		lookup: lookup,
		search: search,
		fuzzy:  fuzzy,
		stats:  stats,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound),
		sentinelHandler(domain.ErrUnavailable, http.StatusServiceUnavailable),
	}
	return s
}

// Register mounts all routes on the given router.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.Discovery)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Get("/company/domain/{domain}", s.CompanyByDomain)
	r.Get("/companies/search", s.SearchCompanies)
	r.Get("/companies/fuzzy-search", s.FuzzySearchCompanies)
	r.Get("/stats", s.GetStats)
}

// Discovery handles GET /.
func (s *Server) Discovery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DiscoveryResponse{
		Message: "European Companies API",
		Version: version.Version,
		Endpoints: map[string]string{
			"/health":                  "Health check",
			"/company/domain/{domain}": "Get company by domain",
			"/companies/search":        "Search companies",
			"/companies/fuzzy-search":  "Fuzzy search companies by name",
			"/stats":                   "Get database statistics",
		},
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	if report.Status != healthuc.Healthy {
		writeError(w, http.StatusServiceUnavailable,
			"database connection failed: "+report.Database)
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   string(report.Status),
		Database: report.Database,
	})
}

// CompanyByDomain handles GET /company/domain/{domain}.
func (s *Server) CompanyByDomain(w http.ResponseWriter, r *http.Request) {
	rawDomain := chi.URLParam(r, "domain")

	c, err := s.lookup.LookupByDomain(r.Context(), rawDomain)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CompanyResponse{
		Success: true,
		Data:    &c,
		Message: "Company found",
	})
}

// SearchCompanies handles GET /companies/search.
func (s *Server) SearchCompanies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := queryInt(q.Get("limit"), domsearch.DefaultLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	offset, err := queryInt(q.Get("offset"), domsearch.DefaultOffset)
	if err != nil {
		writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	params, err := domsearch.NewParams(
		q.Get("country"), q.Get("name"), q.Get("industry"), limit, offset,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	companies, err := s.search.Search(r.Context(), params)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if companies == nil {
		companies = []domco.Company{}
	}

	writeJSON(w, http.StatusOK, CompaniesListResponse{
		Success: true,
		Data:    companies,
		Count:   len(companies),
		Message: fmt.Sprintf("Found %d companies", len(companies)),
	})
}

// FuzzySearchCompanies handles GET /companies/fuzzy-search.
func (s *Server) FuzzySearchCompanies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	confidence, err := queryFloat(q.Get("confidence"), domsearch.DefaultConfidence)
	if err != nil {
		writeError(w, http.StatusBadRequest, "confidence must be a number")
		return
	}
	limit, err := queryInt(q.Get("limit"), domsearch.DefaultLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}

	params, err := domsearch.NewFuzzyParams(q.Get("name"), confidence, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	matches, err := s.fuzzy.Match(r.Context(), params)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if matches == nil {
		matches = []domco.FuzzyMatch{}
	}

	writeJSON(w, http.StatusOK, FuzzySearchResponse{
		Success: true,
		Data:    matches,
		Count:   len(matches),
		Message: fmt.Sprintf("Found %d matches", len(matches)),
	})
}

// GetStats handles GET /stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.Get(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if stats.TopCountries == nil {
		stats.TopCountries = []domco.CountryCount{}
	}
	if stats.CompanySizes == nil {
		stats.CompanySizes = []domco.SizeCount{}
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		Success:        true,
		TotalCompanies: stats.TotalCompanies,
		TopCountries:   stats.TopCountries,
		CompanySizes:   stats.CompanySizes,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal server error: "+err.Error())
}

func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if errors.Is(err, sentinel) {
			writeError(w, status, err.Error())
			return true
		}
		return false
	}
}

func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func queryFloat(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}
