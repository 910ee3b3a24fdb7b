// Package company implements the SQL repository for company records.
package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/LoaiAlaa24/fetch-companies-data/internal/db"
	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain"
	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain/search"
)

// columns is the explicit projection list; SELECT * is never used.
const columns = "id, company_id, country, founded, industry, linkedin_url, locality, name, region, size, website"

// normalizedWebsite is the SQL-side counterpart of website.Normalize, applied
// to the stored column so both sides of the prefix lookup compare on the same
// canonical form.
const normalizedWebsite = "LOWER(REPLACE(REPLACE(REPLACE(website, 'http://', ''), 'https://', ''), 'www.', ''))"

// topCountriesLimit caps the per-country aggregation.
const topCountriesLimit = 10

// Repo reads company rows from the relational store. The table name is fixed
// configuration, never user input.
type Repo struct {
	store *db.Store
	table string
}

// New creates a company repository over the given store and table.
func New(store *db.Store, table string) *Repo {
	return &Repo{store: store, table: table}
}

// ByDomainPrefix returns the company whose normalized website starts with the
// given key. Ties are broken deterministically by lowest id. Returns
// domain.ErrNotFound when no row matches.
func (r *Repo) ByDomainPrefix(ctx context.Context, key string) (domco.Company, error) {
	b := db.NewWhere(r.store.Dialect()).PrefixExpr(normalizedWebsite, key)

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY id ASC LIMIT 1",
		columns, r.table, b.Clause(),
	)

	var c domco.Company
	err := r.store.WithConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, query, b.Args()...)
		var scanErr error
		c, scanErr = scanCompany(row)
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domco.Company{}, domain.ErrNotFound
	}
	if err != nil {
		return domco.Company{}, fmt.Errorf("lookup by domain: %w", err)
	}
	return c, nil
}

// Search returns one page of companies matching the validated filter set,
// ordered by name ascending (NULLS LAST) with id as tie-break.
func (r *Repo) Search(ctx context.Context, params search.Params) ([]domco.Company, error) {
	b := db.NewWhere(r.store.Dialect())
	if params.Country() != "" {
		b.EqualFold("country", params.Country())
	}
	if params.Name() != "" {
		b.ContainsFold("name", params.Name())
	}
	if params.Industry() != "" {
		b.ContainsFold("industry", params.Industry())
	}
	clause := b.Clause()
	limitPh := b.Bind(params.Limit())
	offsetPh := b.Bind(params.Offset())

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY name ASC NULLS LAST, id ASC LIMIT %s OFFSET %s",
		columns, r.table, clause, limitPh, offsetPh,
	)

	return r.queryCompanies(ctx, query, b.Args()...)
}

// Candidates returns every company with a non-null name, ordered by id so
// downstream ranking ties resolve deterministically.
func (r *Repo) Candidates(ctx context.Context) ([]domco.Company, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE name IS NOT NULL ORDER BY id ASC",
		columns, r.table,
	)
	return r.queryCompanies(ctx, query)
}

// Stats aggregates table-wide statistics: total rows, top countries by count,
// and the distribution of non-null company sizes.
func (r *Repo) Stats(ctx context.Context) (domco.Stats, error) {
	var stats domco.Stats

	err := r.store.WithConn(ctx, func(conn *sql.Conn) error {
		total := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table)
		if err := conn.QueryRowContext(ctx, total).Scan(&stats.TotalCompanies); err != nil {
			return fmt.Errorf("count total: %w", err)
		}

		countries := fmt.Sprintf(
			"SELECT country, COUNT(*) AS cnt FROM %s GROUP BY country ORDER BY cnt DESC LIMIT %d",
			r.table, topCountriesLimit,
		)
		rows, err := conn.QueryContext(ctx, countries)
		if err != nil {
			return fmt.Errorf("count by country: %w", err)
		}
		stats.TopCountries, err = scanCountryCounts(rows)
		if err != nil {
			return err
		}

		sizes := fmt.Sprintf(
			"SELECT size, COUNT(*) AS cnt FROM %s WHERE size IS NOT NULL GROUP BY size ORDER BY cnt DESC",
			r.table,
		)
		rows, err = conn.QueryContext(ctx, sizes)
		if err != nil {
			return fmt.Errorf("count by size: %w", err)
		}
		stats.CompanySizes, err = scanSizeCounts(rows)
		return err
	})
	if err != nil {
		return domco.Stats{}, err
	}
	return stats, nil
}

func (r *Repo) queryCompanies(ctx context.Context, query string, args ...any) ([]domco.Company, error) {
	var out []domco.Company

	err := r.store.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("query companies: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			c, err := scanCompany(rows)
			if err != nil {
				return err
			}
			out = append(out, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
