package table

import "sort"

// ColumnInfo is the per-column slice of a describe report.
type ColumnInfo struct {
	Name        string
	Dtype       string
	NonNull     int
	Nulls       int
	NullPercent float64
}

// NumericSummary captures descriptive statistics for one numeric column.
type NumericSummary struct {
	Name   string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	P25    float64
	Median float64
	P75    float64
}

// DescribeReport is the read-only diagnostic snapshot of a table.
type DescribeReport struct {
	RowCount       int
	ColumnCount    int
	EstimatedBytes int64
	Columns        []ColumnInfo
	Numeric        []NumericSummary
}

// Describe inspects shape, dtypes, null counts, memory footprint and
// numeric summaries without mutating the table.
func Describe(t *Table) DescribeReport {
	rep := DescribeReport{
		RowCount:    t.RowCount(),
		ColumnCount: t.ColumnCount(),
	}

	for _, name := range t.ColumnNames() {
		col, _ := t.Column(name)
		nulls := col.NullCount()
		info := ColumnInfo{
			Name:    name,
			Dtype:   col.Kind().String(),
			NonNull: col.Len() - nulls,
			Nulls:   nulls,
		}
		if col.Len() > 0 {
			info.NullPercent = float64(nulls) / float64(col.Len()) * 100
		}
		rep.Columns = append(rep.Columns, info)
		rep.EstimatedBytes += estimateBytes(col)

		if col.Kind().Numeric() {
			if summary, ok := summarize(col); ok {
				rep.Numeric = append(rep.Numeric, summary)
			}
		}
	}

	return rep
}

func summarize(c *Column) (NumericSummary, bool) {
	vals := c.presentFloats()
	if len(vals) == 0 {
		return NumericSummary{}, false
	}
	sort.Float64s(vals)

	sum := 0.0
	for _, v := range vals {
		sum += v
	}

	return NumericSummary{
		Name:   c.Name(),
		Count:  len(vals),
		Min:    vals[0],
		Max:    vals[len(vals)-1],
		Mean:   sum / float64(len(vals)),
		P25:    percentile(vals, 0.25),
		Median: percentile(vals, 0.50),
		P75:    percentile(vals, 0.75),
	}, true
}

// percentile interpolates linearly over sorted values, matching the
// default numpy/pandas quantile method.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func estimateBytes(c *Column) int64 {
	var total int64
	switch c.Kind() {
	case KindText:
		for _, s := range c.text {
			total += int64(len(s)) + 16
		}
	case KindInt, KindFloat:
		total = int64(c.Len()) * 8
	case KindDate:
		total = int64(c.Len()) * 24
	}
	total += int64(c.Len()) // missing mask
	return total
}
