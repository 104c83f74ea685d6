package persistence

import (
	"fmt"
	"strings"
)

// updateBuilder collects SET clauses for a partial update. Columns are
// string literals owned by this package; only values travel as parameters.
type updateBuilder struct {
	clauses []string
	args    []any
}

func (b *updateBuilder) Set(column string, value any) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) Empty() bool {
	return len(b.clauses) == 0
}

// Build produces "UPDATE <table> SET ... WHERE <idColumn> = $n RETURNING *"
// with the id appended as the final argument.
func (b *updateBuilder) Build(table, idColumn string, id any) (string, []any) {
	b.args = append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE %s = $%d RETURNING *",
		table,
		strings.Join(b.clauses, ", "),
		idColumn,
		len(b.args),
	)
	return query, b.args
}

// predicateBuilder appends optional AND conditions to a base query.
type predicateBuilder struct {
	conditions []string
	args       []any
}

// Where adds a condition; expr must contain exactly one %d verb for the
// parameter position.
func (b *predicateBuilder) Where(expr string, value any) {
	b.args = append(b.args, value)
	b.conditions = append(b.conditions, fmt.Sprintf(expr, len(b.args)))
}

func (b *predicateBuilder) Build(base, suffix string) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)
	for _, cond := range b.conditions {
		sb.WriteString(" AND ")
		sb.WriteString(cond)
	}
	if suffix != "" {
		sb.WriteString(" ")
		sb.WriteString(suffix)
	}
	return sb.String(), b.args
}
