package companies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the companies API SDK entry point.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a Client for the API served at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("companies: base URL required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("companies: invalid base URL: %w", err)
	}

	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      cfg.token,
		httpClient: hc,
	}, nil
}

// CompanyByDomain looks up the company whose website matches the given
// domain. The server normalizes schemes, a www. prefix and paths, so raw
// URLs are accepted as-is.
func (c *Client) CompanyByDomain(ctx context.Context, domain string) (Company, error) {
	var env companyEnvelope
	path := "/company/domain/" + url.PathEscape(domain)
	if err := c.get(ctx, path, nil, &env); err != nil {
		return Company{}, err
	}
	if env.Data == nil {
		return Company{}, &APIError{StatusCode: http.StatusOK, Message: "empty company payload"}
	}
	return *env.Data, nil
}

// SearchCompanies returns the page of companies matching the query filters.
func (c *Client) SearchCompanies(ctx context.Context, q SearchQuery) ([]Company, error) {
	vals := url.Values{}
	if q.Country != "" {
		vals.Set("country", q.Country)
	}
	if q.Name != "" {
		vals.Set("name", q.Name)
	}
	if q.Industry != "" {
		vals.Set("industry", q.Industry)
	}
	if q.Limit != 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset != 0 {
		vals.Set("offset", strconv.Itoa(q.Offset))
	}

	var env listEnvelope
	if err := c.get(ctx, "/companies/search", vals, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// FuzzySearch returns companies whose name is similar to q.Name, ordered
// by descending confidence.
func (c *Client) FuzzySearch(ctx context.Context, q FuzzyQuery) ([]FuzzyMatch, error) {
	vals := url.Values{}
	vals.Set("name", q.Name)
	if q.Confidence != 0 {
		vals.Set("confidence", strconv.FormatFloat(q.Confidence, 'f', -1, 64))
	}
	if q.Limit != 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}

	var env fuzzyEnvelope
	if err := c.get(ctx, "/companies/fuzzy-search", vals, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Stats returns database statistics.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var env statsEnvelope
	if err := c.get(ctx, "/stats", nil, &env); err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalCompanies: env.TotalCompanies,
		TopCountries:   env.TopCountries,
		CompanySizes:   env.CompanySizes,
	}, nil
}

// Health reports server and database health. An unhealthy server yields
// ErrUnavailable.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.get(ctx, "/health", nil, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) get(ctx context.Context, path string, vals url.Values, out any) error {
	u := c.baseURL + path
	if len(vals) > 0 {
		u += "?" + vals.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("companies: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("companies: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("companies: decode %s response: %w", path, err)
	}
	return nil
}
