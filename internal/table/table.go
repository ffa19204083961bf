// Package table holds the in-memory columnar model shared by the loader,
// the cleaning pipeline and the aggregation engine. Columns are typed and
// positionally aligned: row i is the i-th entry of every column.
package table

import "fmt"

// Table is an ordered collection of uniquely named, equal-length columns.
type Table struct {
	cols   []*Column
	byName map[string]int
}

// New builds an empty table.
func New() *Table {
	return &Table{byName: map[string]int{}}
}

// AddColumn appends a column; names must be unique and lengths must agree
// with columns already present.
func (t *Table) AddColumn(c *Column) error {
	if _, ok := t.byName[c.Name()]; ok {
		return fmt.Errorf("column %s already exists", c.Name())
	}
	if len(t.cols) > 0 && c.Len() != t.RowCount() {
		return fmt.Errorf("column %s has %d rows, table has %d", c.Name(), c.Len(), t.RowCount())
	}
	t.byName[c.Name()] = len(t.cols)
	t.cols = append(t.cols, c)
	return nil
}

// ReplaceColumn swaps a same-named column in place, or appends when absent.
func (t *Table) ReplaceColumn(c *Column) error {
	if idx, ok := t.byName[c.Name()]; ok {
		if c.Len() != t.RowCount() {
			return fmt.Errorf("column %s has %d rows, table has %d", c.Name(), c.Len(), t.RowCount())
		}
		t.cols[idx] = c
		return nil
	}
	return t.AddColumn(c)
}

// Column resolves a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return t.cols[idx], true
}

// HasColumn reports column presence without resolving it.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// ColumnNames returns names in column order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name()
	}
	return names
}

// RowCount returns the number of rows; zero for an empty table.
func (t *Table) RowCount() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.cols) }

// DropColumn removes a column by name; returns false when absent.
func (t *Table) DropColumn(name string) bool {
	idx, ok := t.byName[name]
	if !ok {
		return false
	}
	t.cols = append(t.cols[:idx], t.cols[idx+1:]...)
	delete(t.byName, name)
	for i := idx; i < len(t.cols); i++ {
		t.byName[t.cols[i].Name()] = i
	}
	return true
}

// Clone returns a deep copy; mutations on the copy never reach the original.
func (t *Table) Clone() *Table {
	dup := New()
	for _, c := range t.cols {
		// AddColumn cannot fail here: names and lengths come from a valid table.
		_ = dup.AddColumn(c.Clone())
	}
	return dup
}

// Retain filters rows in place, keeping those for which keep returns true.
func (t *Table) Retain(keep func(row int) bool) {
	n := t.RowCount()
	mask := make([]bool, n)
	for i := 0; i < n; i++ {
		mask[i] = keep(i)
	}
	for _, c := range t.cols {
		c.retain(mask)
	}
}

// Head returns a copy truncated to the first n rows.
func (t *Table) Head(n int) *Table {
	dup := t.Clone()
	if n < 0 {
		n = 0
	}
	if n >= dup.RowCount() {
		return dup
	}
	for _, c := range dup.cols {
		c.truncate(n)
	}
	return dup
}
