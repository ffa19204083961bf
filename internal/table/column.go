package table

import (
	"sort"
	"time"
)

// Kind enumerates the value types a column can hold.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindDate
)

// String returns a pandas-like dtype label for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int64"
	case KindFloat:
		return "float64"
	case KindDate:
		return "datetime"
	default:
		return "object"
	}
}

// Numeric reports whether the kind participates in numeric summaries.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Column is a homogeneous-typed sequence of values with a missing mask.
// A missing entry is distinct from an empty string or zero.
type Column struct {
	name    string
	kind    Kind
	text    []string
	ints    []int64
	floats  []float64
	dates   []time.Time
	missing []bool
}

// NewColumn allocates an empty column of the given kind.
func NewColumn(name string, kind Kind) *Column {
	return &Column{name: name, kind: kind}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the column value type.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of entries including missing ones.
func (c *Column) Len() int { return len(c.missing) }

// IsMissing reports whether the entry at row i is absent.
func (c *Column) IsMissing(i int) bool { return c.missing[i] }

// NullCount returns the number of missing entries.
func (c *Column) NullCount() int {
	n := 0
	for _, m := range c.missing {
		if m {
			n++
		}
	}
	return n
}

// Text returns the text value at row i; empty string when missing or non-text.
func (c *Column) Text(i int) string {
	if c.kind != KindText || c.missing[i] {
		return ""
	}
	return c.text[i]
}

// Int returns the integer value at row i and whether it is present.
func (c *Column) Int(i int) (int64, bool) {
	if c.kind != KindInt || c.missing[i] {
		return 0, false
	}
	return c.ints[i], true
}

// Float returns the numeric value at row i and whether it is present.
// Integer columns are widened so both numeric kinds share one accessor.
func (c *Column) Float(i int) (float64, bool) {
	if c.missing[i] {
		return 0, false
	}
	switch c.kind {
	case KindFloat:
		return c.floats[i], true
	case KindInt:
		return float64(c.ints[i]), true
	default:
		return 0, false
	}
}

// Date returns the date value at row i and whether it is present.
func (c *Column) Date(i int) (time.Time, bool) {
	if c.kind != KindDate || c.missing[i] {
		return time.Time{}, false
	}
	return c.dates[i], true
}

// AppendText grows the column with a present text value.
func (c *Column) AppendText(v string) {
	c.text = append(c.text, v)
	c.missing = append(c.missing, false)
}

// AppendInt grows the column with a present integer value.
func (c *Column) AppendInt(v int64) {
	c.ints = append(c.ints, v)
	c.missing = append(c.missing, false)
}

// AppendFloat grows the column with a present float value.
func (c *Column) AppendFloat(v float64) {
	c.floats = append(c.floats, v)
	c.missing = append(c.missing, false)
}

// AppendDate grows the column with a present date value.
func (c *Column) AppendDate(v time.Time) {
	c.dates = append(c.dates, v)
	c.missing = append(c.missing, false)
}

// AppendMissing grows the column with an absent entry.
func (c *Column) AppendMissing() {
	switch c.kind {
	case KindText:
		c.text = append(c.text, "")
	case KindInt:
		c.ints = append(c.ints, 0)
	case KindFloat:
		c.floats = append(c.floats, 0)
	case KindDate:
		c.dates = append(c.dates, time.Time{})
	}
	c.missing = append(c.missing, true)
}

// SetText overwrites row i with a present text value.
func (c *Column) SetText(i int, v string) {
	c.text[i] = v
	c.missing[i] = false
}

// SetInt overwrites row i with a present integer value.
func (c *Column) SetInt(i int, v int64) {
	c.ints[i] = v
	c.missing[i] = false
}

// SetFloat overwrites row i with a present float value.
func (c *Column) SetFloat(i int, v float64) {
	c.floats[i] = v
	c.missing[i] = false
}

// SetDate overwrites row i with a present date value.
func (c *Column) SetDate(i int, v time.Time) {
	c.dates[i] = v
	c.missing[i] = false
}

// SetMissing marks row i as absent.
func (c *Column) SetMissing(i int) {
	c.missing[i] = true
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	dup := &Column{name: c.name, kind: c.kind}
	dup.text = append([]string(nil), c.text...)
	dup.ints = append([]int64(nil), c.ints...)
	dup.floats = append([]float64(nil), c.floats...)
	dup.dates = append([]time.Time(nil), c.dates...)
	dup.missing = append([]bool(nil), c.missing...)
	return dup
}

// retain keeps only the rows flagged true, preserving order.
func (c *Column) retain(keep []bool) {
	out := 0
	for i, k := range keep {
		if !k {
			continue
		}
		switch c.kind {
		case KindText:
			c.text[out] = c.text[i]
		case KindInt:
			c.ints[out] = c.ints[i]
		case KindFloat:
			c.floats[out] = c.floats[i]
		case KindDate:
			c.dates[out] = c.dates[i]
		}
		c.missing[out] = c.missing[i]
		out++
	}
	c.truncate(out)
}

func (c *Column) truncate(n int) {
	if len(c.text) > n && c.kind == KindText {
		c.text = c.text[:n]
	}
	if len(c.ints) > n && c.kind == KindInt {
		c.ints = c.ints[:n]
	}
	if len(c.floats) > n && c.kind == KindFloat {
		c.floats = c.floats[:n]
	}
	if len(c.dates) > n && c.kind == KindDate {
		c.dates = c.dates[:n]
	}
	c.missing = c.missing[:n]
}

// presentFloats collects all non-missing numeric values in row order.
func (c *Column) presentFloats() []float64 {
	if !c.kind.Numeric() {
		return nil
	}
	vals := make([]float64, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Float(i); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// Median returns the median of present numeric values; ok is false when the
// column has no present values or is not numeric.
func (c *Column) Median() (float64, bool) {
	vals := c.presentFloats()
	if len(vals) == 0 {
		return 0, false
	}
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid], true
	}
	return (vals[mid-1] + vals[mid]) / 2, true
}

// Mean returns the mean of present numeric values; ok is false when empty.
func (c *Column) Mean() (float64, bool) {
	vals := c.presentFloats()
	if len(vals) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), true
}
