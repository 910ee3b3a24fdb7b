package db

import "strconv"

// Dialect identifies the SQL placeholder and driver convention.
type Dialect string

const (
	// DialectPostgres uses $N positional placeholders via the pgx driver.
	DialectPostgres Dialect = "postgres"
	// DialectSQLite uses ? placeholders via the modernc driver.
	DialectSQLite Dialect = "sqlite"
)

// IsValid reports whether the dialect is supported.
func (d Dialect) IsValid() bool {
	return d == DialectPostgres || d == DialectSQLite
}

// Placeholder returns the placeholder for the n-th bound value (1-based).
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}
