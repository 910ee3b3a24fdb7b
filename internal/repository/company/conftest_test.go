package company

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/LoaiAlaa24/fetch-companies-data/internal/db"
)

const testTable = "european_companies"

const testSchema = `
CREATE TABLE european_companies (
	id           INTEGER PRIMARY KEY,
	company_id   TEXT NOT NULL,
	country      TEXT,
	founded      TEXT,
	industry     TEXT,
	linkedin_url TEXT,
	locality     TEXT,
	name         TEXT,
	region       TEXT,
	size         TEXT,
	website      TEXT
)`

// seedRow is one test fixture row; nil means SQL NULL.
type seedRow struct {
	id        int64
	companyID string
	country   *string
	industry  *string
	name      *string
	size      *string
	website   *string
}

func str(s string) *string { return &s }

// newTestRepo creates a repository backed by a real SQLite database in a
// temporary directory, seeded with the given rows.
func newTestRepo(t *testing.T, rows []seedRow) *Repo {
	t.Helper()

	store, err := db.Open(db.Config{
		Driver: db.DialectSQLite,
		Path:   filepath.Join(t.TempDir(), "companies.db"),
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	err = store.WithConn(ctx, func(conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, testSchema); err != nil {
			return err
		}
		for _, r := range rows {
			_, err := conn.ExecContext(ctx,
				`INSERT INTO european_companies
					(id, company_id, country, industry, name, size, website)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				r.id, r.companyID, r.country, r.industry, r.name, r.size, r.website,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seed database: %v", err)
	}

	return New(store, testTable)
}

// defaultSeed is a small fixture with NULLs, near-duplicate domains, and
// enough countries to exercise the aggregations.
func defaultSeed() []seedRow {
	return []seedRow{
		{1, "c-1", str("Germany"), str("Software"), str("Siemens"), str("10001+"), str("https://www.siemens.com")},
		{2, "c-2", str("Germany"), str("Automotive"), str("BMW"), str("10001+"), str("http://bmw.com/en")},
		{3, "c-3", str("France"), str("Software"), str("Dassault"), str("5001-10000"), str("dassault.fr?lang=en")},
		{4, "c-4", str("France"), str("Retail"), nil, str("51-200"), str("www.anon.fr")},
		{5, "c-5", str("Spain"), nil, str("Acme"), nil, str("https://acme.es/careers")},
		{6, "c-6", nil, str("Software"), str("acme tools"), str("51-200"), str("acme.es.example.org")},
	}
}
