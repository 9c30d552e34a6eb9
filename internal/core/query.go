// AngelaMos | 2026
// query.go

package core

import (
	"fmt"
	"strings"
)

// Assignments collects the SET list of a sparse UPDATE. Column names must
// be compile-time constants; only values become bind parameters.
type Assignments struct {
	cols []string
	args []any
}

func (a *Assignments) Set(col string, value any) {
	a.cols = append(a.cols, col)
	a.args = append(a.args, value)
}

// SetIf records col only when v is non-nil.
func SetIf[T any](a *Assignments, col string, v *T) {
	if v != nil {
		a.Set(col, *v)
	}
}

func (a *Assignments) Empty() bool {
	return len(a.cols) == 0
}

func (a *Assignments) Columns() []string {
	return append([]string(nil), a.cols...)
}

// UpdateQuery renders UPDATE table SET ... WHERE keyCol = $n RETURNING
// returning. The key is always the last bind parameter.
func (a *Assignments) UpdateQuery(
	table, keyCol string,
	key any,
	returning string,
) (string, []any) {
	sets := make([]string, 0, len(a.cols))
	for i, col := range a.cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
	}

	args := append(append([]any(nil), a.args...), key)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		table,
		strings.Join(sets, ", "),
		keyCol,
		len(args),
	)
	if returning != "" {
		query += " RETURNING " + returning
	}

	return query, args
}
