package company

import (
	"database/sql"
	"fmt"

	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanCompany projects one row into a Company field by field. SQL NULLs
// become nil pointers, so null and missing are indistinguishable downstream.
func scanCompany(s scanner) (domco.Company, error) {
	var (
		c                           domco.Company
		country, founded, industry  sql.NullString
		linkedinURL, locality, name sql.NullString
		region, size, websiteCol    sql.NullString
	)

	err := s.Scan(
		&c.ID, &c.CompanyID,
		&country, &founded, &industry, &linkedinURL,
		&locality, &name, &region, &size, &websiteCol,
	)
	if err != nil {
		return domco.Company{}, err
	}

	c.Country = nullable(country)
	c.Founded = nullable(founded)
	c.Industry = nullable(industry)
	c.LinkedinURL = nullable(linkedinURL)
	c.Locality = nullable(locality)
	c.Name = nullable(name)
	c.Region = nullable(region)
	c.Size = nullable(size)
	c.Website = nullable(websiteCol)
	return c, nil
}

func scanCountryCounts(rows *sql.Rows) ([]domco.CountryCount, error) {
	defer rows.Close()

	var out []domco.CountryCount
	for rows.Next() {
		var country sql.NullString
		var cc domco.CountryCount
		if err := rows.Scan(&country, &cc.Count); err != nil {
			return nil, fmt.Errorf("scan country count: %w", err)
		}
		cc.Country = nullable(country)
		out = append(out, cc)
	}
	return out, rows.Err()
}

func scanSizeCounts(rows *sql.Rows) ([]domco.SizeCount, error) {
	defer rows.Close()

	var out []domco.SizeCount
	for rows.Next() {
		var sc domco.SizeCount
		if err := rows.Scan(&sc.Size, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan size count: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
