package db

import "strings"

// WhereBuilder composes a conjunctive WHERE clause with positional
// placeholders. User-supplied values are only ever bound as parameters;
// column names and expressions are fixed literals supplied by the caller.
// Predicate order follows call order, so composed queries are deterministic.
type WhereBuilder struct {
	dialect Dialect
	conds   []string
	args    []any
}

// NewWhere starts building a WHERE clause for the given dialect.
func NewWhere(dialect Dialect) *WhereBuilder {
	return &WhereBuilder{dialect: dialect}
}

// EqualFold adds a case-insensitive equality predicate on column.
func (b *WhereBuilder) EqualFold(column, value string) *WhereBuilder {
	ph := b.Bind(value)
	b.conds = append(b.conds, "LOWER("+column+") = LOWER("+ph+")")
	return b
}

// ContainsFold adds a case-insensitive substring predicate on column. The
// raw value is bound and both sides go through SQL LOWER(), so one folding
// rule (the engine's) applies to column and pattern alike.
func (b *WhereBuilder) ContainsFold(column, value string) *WhereBuilder {
	ph := b.Bind(value)
	b.conds = append(b.conds, "LOWER("+column+") LIKE '%' || LOWER("+ph+") || '%'")
	return b
}

// PrefixExpr adds a prefix predicate on a raw SQL expression. The value is
// bound as a value% LIKE pattern.
func (b *WhereBuilder) PrefixExpr(expr, value string) *WhereBuilder {
	ph := b.Bind(value + "%")
	b.conds = append(b.conds, expr+" LIKE "+ph)
	return b
}

// Bind appends a parameter value and returns its placeholder. Used by the
// predicate methods and for trailing LIMIT/OFFSET parameters, so placeholder
// numbering stays contiguous across the whole statement.
func (b *WhereBuilder) Bind(value any) string {
	b.args = append(b.args, value)
	return b.dialect.Placeholder(len(b.args))
}

// Clause returns the composed predicate. With no predicates it returns the
// tautology "1=1" (match all rows, never no rows).
func (b *WhereBuilder) Clause() string {
	if len(b.conds) == 0 {
		return "1=1"
	}
	return strings.Join(b.conds, " AND ")
}

// Args returns the ordered parameter list.
func (b *WhereBuilder) Args() []any {
	return b.args
}
