package company

import (
	"context"
	"errors"
	"testing"

	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain"
	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain/search"
)

func mustParams(t *testing.T, country, name, industry string, limit, offset int) search.Params {
	t.Helper()
	p, err := search.NewParams(country, name, industry, limit, offset)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	return p
}

func TestByDomainPrefix_MatchesNormalizedStoredValue(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	c, err := repo.ByDomainPrefix(context.Background(), "siemens.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != 1 {
		t.Errorf("got id %d, want 1", c.ID)
	}
	if c.Name == nil || *c.Name != "Siemens" {
		t.Errorf("got name %v, want Siemens", c.Name)
	}
}

func TestByDomainPrefix_MatchesDespitePathSuffix(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	// Stored value normalizes to bmw.com/en; the key matches as a prefix.
	c, err := repo.ByDomainPrefix(context.Background(), "bmw.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != 2 {
		t.Errorf("got id %d, want 2", c.ID)
	}
}

func TestByDomainPrefix_TieBreaksByLowestID(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	// acme.es is a prefix of both acme.es/careers (id 5) and
	// acme.es.example.org (id 6).
	c, err := repo.ByDomainPrefix(context.Background(), "acme.es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != 5 {
		t.Errorf("got id %d, want 5", c.ID)
	}
}

func TestByDomainPrefix_NotFound(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	_, err := repo.ByDomainPrefix(context.Background(), "nosuchdomain.example")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestSearch_NoFiltersOrderedByName(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	got, err := repo.Search(context.Background(), mustParams(t, "", "", "", 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("got %d rows, want 6", len(got))
	}

	wantOrder := []int64{5, 2, 3, 1, 6, 4} // Acme, BMW, Dassault, Siemens, acme tools, NULL last
	for i, c := range got {
		if c.ID != wantOrder[i] {
			t.Fatalf("row %d: got id %d, want %d (order %v)", i, c.ID, wantOrder[i], wantOrder)
		}
	}
	if got[len(got)-1].Name != nil {
		t.Errorf("null name should sort last, got %v", *got[len(got)-1].Name)
	}
}

func TestSearch_CountryExactCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	got, err := repo.Search(context.Background(), mustParams(t, "gErMaNy", "", "", 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	for _, c := range got {
		if c.Country == nil || *c.Country != "Germany" {
			t.Errorf("unexpected row: %+v", c)
		}
	}
}

func TestSearch_NameSubstring(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	got, err := repo.Search(context.Background(), mustParams(t, "", "ACME", "", 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2 (Acme, acme tools)", len(got))
	}
}

func TestSearch_NameFoldedBySQLOnBothSides(t *testing.T) {
	// SQLite folds ASCII only, so the column and the bound pattern must go
	// through the same LOWER(). A pattern pre-folded in Go would turn the
	// stored U+00DC into U+00FC and miss the row.
	repo := newTestRepo(t, []seedRow{
		{1, "c-1", str("Germany"), str("Insurance"), str("MÜNCHEN AG"), nil, nil},
		{2, "c-2", str("Germany"), str("Software"), str("Berlin GmbH"), nil, nil},
	})

	for _, query := range []string{"MÜNCHEN", "mÜnchen", "mÜNCHEN ag"} {
		got, err := repo.Search(context.Background(), mustParams(t, "", query, "", 10, 0))
		if err != nil {
			t.Fatalf("name %q: unexpected error: %v", query, err)
		}
		if len(got) != 1 || got[0].ID != 1 {
			t.Errorf("name %q: got %+v, want only id 1", query, got)
		}
	}
}

func TestSearch_FiltersAreConjunctive(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	got, err := repo.Search(context.Background(), mustParams(t, "France", "", "soft", 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("got %+v, want only Dassault (id 3)", got)
	}
}

func TestSearch_Pagination(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	page1, err := repo.Search(context.Background(), mustParams(t, "", "", "", 2, 0))
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	page2, err := repo.Search(context.Background(), mustParams(t, "", "", "", 2, 2))
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}

	if len(page1) != 2 || len(page2) != 2 {
		t.Fatalf("page sizes: %d, %d, want 2, 2", len(page1), len(page2))
	}
	if page1[0].ID != 5 || page1[1].ID != 2 {
		t.Errorf("page 1 order: %d, %d", page1[0].ID, page1[1].ID)
	}
	if page2[0].ID != 3 || page2[1].ID != 1 {
		t.Errorf("page 2 order: %d, %d", page2[0].ID, page2[1].ID)
	}
}

func TestSearch_NullFieldsProjectToNil(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	got, err := repo.Search(context.Background(), mustParams(t, "Spain", "", "", 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	c := got[0]
	if c.Industry != nil || c.Size != nil {
		t.Errorf("NULL columns should project to nil: industry=%v size=%v", c.Industry, c.Size)
	}
	if c.CompanyID != "c-5" {
		t.Errorf("company_id = %q", c.CompanyID)
	}
}

func TestCandidates_ExcludesNullNames(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	got, err := repo.Candidates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d candidates, want 5", len(got))
	}
	for i, c := range got {
		if c.Name == nil {
			t.Errorf("candidate %d has null name", i)
		}
		if i > 0 && got[i-1].ID >= c.ID {
			t.Errorf("candidates not ordered by id: %d before %d", got[i-1].ID, c.ID)
		}
	}
}

func TestStats(t *testing.T) {
	repo := newTestRepo(t, defaultSeed())

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalCompanies != 6 {
		t.Errorf("total = %d, want 6", stats.TotalCompanies)
	}

	if len(stats.TopCountries) > 10 {
		t.Errorf("top countries has %d entries, want at most 10", len(stats.TopCountries))
	}
	for i := 1; i < len(stats.TopCountries); i++ {
		if stats.TopCountries[i].Count > stats.TopCountries[i-1].Count {
			t.Errorf("top countries not non-increasing at %d: %+v", i, stats.TopCountries)
		}
	}

	for _, sc := range stats.CompanySizes {
		if sc.Size == "" {
			t.Errorf("size aggregation contains empty size: %+v", stats.CompanySizes)
		}
	}
	for i := 1; i < len(stats.CompanySizes); i++ {
		if stats.CompanySizes[i].Count > stats.CompanySizes[i-1].Count {
			t.Errorf("sizes not non-increasing at %d: %+v", i, stats.CompanySizes)
		}
	}
}
