package store

import (
	"strconv"
	"strings"
)

// schemaTokenRewrites is the exhaustive token table mapping the embedded
// engine's DDL dialect to PostgreSQL. Statements are written once in
// SQLite syntax; the Postgres adapter applies these substitutions before
// execution. Deliberately a flat table, not a parser.
var schemaTokenRewrites = [...]struct{ from, to string }{
	{"INTEGER PRIMARY KEY AUTOINCREMENT", "SERIAL PRIMARY KEY"},
	{"DATETIME", "TIMESTAMP"},
}

// translateSchemaTokens rewrites SQLite DDL tokens to their PostgreSQL
// equivalents.
func translateSchemaTokens(query string) string {
	for _, rw := range schemaTokenRewrites {
		query = strings.ReplaceAll(query, rw.from, rw.to)
	}
	return query
}

// translatePlaceholders rewrites SQLite-style `?` markers to PostgreSQL
// numbered placeholders, 1-indexed in left-to-right order. Markers inside
// single-quoted string literals are left untouched. Pure and stateless.
func translatePlaceholders(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inLiteral := false
	for _, r := range query {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
			b.WriteRune(r)
		case r == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// appendReturning adds a RETURNING clause requesting the identity column's
// post-insert value, unless the statement already asks for one. Every
// table exposes its identity column as `id`.
func appendReturning(query string) string {
	if strings.Contains(strings.ToUpper(query), "RETURNING") {
		return query
	}
	trimmed := strings.TrimRight(strings.TrimSpace(query), ";")
	return trimmed + " RETURNING id"
}
