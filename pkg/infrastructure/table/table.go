// Package table holds materialized order rows with header-name lookup and
// decodes them into production orders.
package table

import (
	"errors"
	"strings"
)

// ErrMissingColumn is returned when a required header is absent
var ErrMissingColumn = errors.New("missing required column")

// Table is an ordered set of rows addressed by header name
type Table struct {
	header []string
	rows   [][]string
	index  map[string]int
}

// New creates a table. Header names are matched case-insensitively after
// trimming; the first occurrence of a repeated name wins.
func New(header []string, rows [][]string) *Table {
	t := &Table{
		header: append([]string(nil), header...),
		rows:   make([][]string, len(rows)),
		index:  make(map[string]int, len(header)),
	}
	for i, name := range t.header {
		key := normalize(name)
		if _, exists := t.index[key]; !exists {
			t.index[key] = i
		}
	}
	for i, row := range rows {
		t.rows[i] = append([]string(nil), row...)
	}
	return t
}

// Header returns a copy of the header names
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns a copy of one data row
func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

// Column returns the position of the first header matching any of names
func (t *Table) Column(names ...string) (int, bool) {
	for _, name := range names {
		if i, ok := t.index[normalize(name)]; ok {
			return i, true
		}
	}
	return 0, false
}

// Has reports whether any of names is a header
func (t *Table) Has(names ...string) bool {
	_, ok := t.Column(names...)
	return ok
}

// Value returns the trimmed cell of row i under the first matching header,
// or "" when the column or cell is absent
func (t *Table) Value(i int, names ...string) string {
	col, ok := t.Column(names...)
	if !ok || col >= len(t.rows[i]) {
		return ""
	}
	return strings.TrimSpace(t.rows[i][col])
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}
