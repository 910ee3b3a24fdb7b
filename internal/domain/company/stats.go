package company

// CountryCount is one entry of the per-country aggregation.
type CountryCount struct {
	Country *string `json:"country"`
	Count   int64   `json:"count"`
}

// SizeCount is one entry of the per-size aggregation.
type SizeCount struct {
	Size  string `json:"size"`
	Count int64  `json:"count"`
}

// Stats aggregates table-wide statistics.
type Stats struct {
	TotalCompanies int64
	TopCountries   []CountryCount // at most 10, count descending
	CompanySizes   []SizeCount    // non-null sizes only, count descending
}
