package store

import "strings"

// StatementKind is the coarse classification of a submitted statement.
type StatementKind int

const (
	// StatementOther covers reads and any statement that needs no
	// special handling.
	StatementOther StatementKind = iota
	// StatementSchema covers table and column definition statements.
	StatementSchema
	// StatementInsert covers row-creation statements.
	StatementInsert
)

// String returns the kind's name for logging.
func (k StatementKind) String() string {
	switch k {
	case StatementSchema:
		return "schema"
	case StatementInsert:
		return "insert"
	default:
		return "other"
	}
}

// Classify inspects the leading keyword of a statement, case-insensitively
// after trimming whitespace. Classification is advisory: it decides which
// dialect rewrites and identity-retrieval steps apply, never the statement
// semantics themselves.
func Classify(query string) StatementKind {
	trimmed := strings.TrimSpace(query)
	word := trimmed
	if i := strings.IndexAny(trimmed, " \t\r\n"); i >= 0 {
		word = trimmed[:i]
	}

	switch strings.ToUpper(word) {
	case "CREATE", "ALTER":
		return StatementSchema
	case "INSERT":
		return StatementInsert
	default:
		return StatementOther
	}
}
