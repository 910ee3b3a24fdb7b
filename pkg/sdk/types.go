package companies

// Company is one row of the companies table. Columns that allow NULL
// are pointers; a nil pointer means the value is absent.
type Company struct {
	ID          int64   `json:"id"`
	CompanyID   string  `json:"company_id"`
	Country     *string `json:"country"`
	Founded     *string `json:"founded"`
	Industry    *string `json:"industry"`
	LinkedinURL *string `json:"linkedin_url"`
	Locality    *string `json:"locality"`
	Name        *string `json:"name"`
	Region      *string `json:"region"`
	Size        *string `json:"size"`
	Website     *string `json:"website"`
}

// FuzzyMatch is a company with its name similarity confidence (0..100).
type FuzzyMatch struct {
	Company
	Confidence float64 `json:"confidence"`
}

// CountryCount is a country with its number of companies.
type CountryCount struct {
	Country *string `json:"country"`
	Count   int64   `json:"count"`
}

// SizeCount is a size bracket with its number of companies.
type SizeCount struct {
	Size  string `json:"size"`
	Count int64  `json:"count"`
}

// Stats summarizes the database contents.
type Stats struct {
	TotalCompanies int64          `json:"total_companies"`
	TopCountries   []CountryCount `json:"top_countries"`
	CompanySizes   []SizeCount    `json:"company_sizes"`
}

// Health is the server health report.
type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// SearchQuery filters the company search. Zero-value fields are omitted;
// Limit and Offset fall back to the server defaults when zero.
type SearchQuery struct {
	Country  string
	Name     string
	Industry string
	Limit    int
	Offset   int
}

// FuzzyQuery drives the fuzzy name search. Name is required.
// Confidence and Limit fall back to the server defaults when zero.
type FuzzyQuery struct {
	Name       string
	Confidence float64
	Limit      int
}

type companyEnvelope struct {
	Success bool     `json:"success"`
	Data    *Company `json:"data"`
	Message string   `json:"message"`
}

type listEnvelope struct {
	Success bool      `json:"success"`
	Data    []Company `json:"data"`
	Count   int       `json:"count"`
	Message string    `json:"message"`
}

type fuzzyEnvelope struct {
	Success bool         `json:"success"`
	Data    []FuzzyMatch `json:"data"`
	Count   int          `json:"count"`
	Message string       `json:"message"`
}

type statsEnvelope struct {
	Success        bool           `json:"success"`
	TotalCompanies int64          `json:"total_companies"`
	TopCountries   []CountryCount `json:"top_countries"`
	CompanySizes   []SizeCount    `json:"company_sizes"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
