// Package table holds raw exporter tables: a header plus string cells, before
// any typing happens. Operations return new tables and leave the receiver
// untouched.
package table

import (
	"fmt"
	"slices"
	"strings"
)

// Table is a header plus rows of cells. Every row has len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// New builds a table, padding short rows with empty cells. Rows longer than
// the header are rejected.
func New(header []string, rows [][]string) (*Table, error) {
	t := &Table{Header: slices.Clone(header), Rows: make([][]string, 0, len(rows))}
	for i, row := range rows {
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d: %d fields, header has %d", i+1, len(row), len(header))
		}
		cells := make([]string, len(header))
		copy(cells, row)
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of column name, or -1.
func (t *Table) Index(name string) int {
	return slices.Index(t.Header, name)
}

// Has reports whether the table carries column name.
func (t *Table) Has(name string) bool { return t.Index(name) >= 0 }

// Column returns a copy of every cell of column name.
func (t *Table) Column(name string) ([]string, error) {
	i := t.Index(name)
	if i < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out, nil
}

// Get returns the cell of column name in row r, or "" when the column is absent.
func (t *Table) Get(r int, name string) string {
	i := t.Index(name)
	if i < 0 {
		return ""
	}
	return t.Rows[r][i]
}

// ConstantColumns lists columns with at most one distinct non-empty value,
// skipping protected ones.
func (t *Table) ConstantColumns(protected ...string) []string {
	var out []string
	for i, name := range t.Header {
		if slices.Contains(protected, name) {
			continue
		}
		var first string
		distinct := 0
		for _, row := range t.Rows {
			v := strings.TrimSpace(row[i])
			if v == "" {
				continue
			}
			if distinct == 0 {
				first = v
				distinct = 1
			} else if v != first {
				distinct = 2
				break
			}
		}
		if distinct <= 1 {
			out = append(out, name)
		}
	}
	return out
}

// Drop removes the named columns. Unknown names are ignored.
func (t *Table) Drop(names ...string) *Table {
	var keep []int
	for i, name := range t.Header {
		if !slices.Contains(names, name) {
			keep = append(keep, i)
		}
	}
	out := &Table{Header: make([]string, 0, len(keep)), Rows: make([][]string, 0, len(t.Rows))}
	for _, i := range keep {
		out.Header = append(out.Header, t.Header[i])
	}
	for _, row := range t.Rows {
		cells := make([]string, 0, len(keep))
		for _, i := range keep {
			cells = append(cells, row[i])
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

// FillEmpty copies src into dst wherever dst is blank. Missing columns leave
// the table unchanged.
func (t *Table) FillEmpty(dst, src string) *Table {
	out := t.clone()
	di, si := t.Index(dst), t.Index(src)
	if di < 0 || si < 0 {
		return out
	}
	for _, row := range out.Rows {
		if strings.TrimSpace(row[di]) == "" {
			row[di] = row[si]
		}
	}
	return out
}

// Filter keeps the rows for which keep returns true. Cells are looked up by
// column name through the Row accessor.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{Header: slices.Clone(t.Header)}
	for _, row := range t.Rows {
		if keep(Row{t: t, cells: row}) {
			out.Rows = append(out.Rows, slices.Clone(row))
		}
	}
	return out
}

// Rename renames columns present in m.
func (t *Table) Rename(m map[string]string) *Table {
	out := t.clone()
	for i, name := range out.Header {
		if to, ok := m[name]; ok {
			out.Header[i] = to
		}
	}
	return out
}

func (t *Table) clone() *Table {
	out := &Table{Header: slices.Clone(t.Header), Rows: make([][]string, len(t.Rows))}
	for i, row := range t.Rows {
		out.Rows[i] = slices.Clone(row)
	}
	return out
}

// Row is a read-only view of one table row.
type Row struct {
	t     *Table
	cells []string
}

// Get returns the cell of column name, or "" when the column is absent.
func (r Row) Get(name string) string {
	i := r.t.Index(name)
	if i < 0 {
		return ""
	}
	return r.cells[i]
}
