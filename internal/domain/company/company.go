// Package company defines the read-only company record and derived types.
package company

// Company is a read-only projection of one row of the companies table.
// Every field other than ID and CompanyID may be absent; absence is
// represented as nil, never as an empty string.
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

// FuzzyMatch pairs a company with a name-similarity confidence.
// Confidence is a percentage in [0,100], rounded to two decimals.
type FuzzyMatch struct {
	Company
	Confidence float64 `json:"confidence"`
}
