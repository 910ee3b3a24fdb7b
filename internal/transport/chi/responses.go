package chi

import (
	"encoding/json"
	"net/http"

	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
)

// CompanyResponse wraps a single-entity lookup.
type CompanyResponse struct {
	Success bool           `json:"success"`
	Data    *domco.Company `json:"data"`
	Message string         `json:"message"`
}

// CompaniesListResponse wraps a search page. Count is always the length of
// Data, never the unfiltered total.
type CompaniesListResponse struct {
	Success bool            `json:"success"`
	Data    []domco.Company `json:"data"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
}

// FuzzySearchResponse wraps a ranked fuzzy-match page.
type FuzzySearchResponse struct {
	Success bool               `json:"success"`
	Data    []domco.FuzzyMatch `json:"data"`
	Count   int                `json:"count"`
	Message string             `json:"message"`
}

// StatsResponse carries the aggregate statistics.
type StatsResponse struct {
	Success        bool                 `json:"success"`
	TotalCompanies int64                `json:"total_companies"`
	TopCountries   []domco.CountryCount `json:"top_countries"`
	CompanySizes   []domco.SizeCount    `json:"company_sizes"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// DiscoveryResponse is the root service-metadata document.
type DiscoveryResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}
