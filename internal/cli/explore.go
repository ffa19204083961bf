package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/app"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

var flagHead int

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Load the raw dataset and print shape, dtypes and null counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := setup()
		session := app.NewSession(cfg, logger)

		raw, err := session.Load()
		if err != nil {
			return err
		}

		printDescribe(table.Describe(raw))
		if flagHead > 0 {
			printHead(raw.Head(flagHead))
		}
		return nil
	},
}

func init() {
	exploreCmd.Flags().IntVar(&flagHead, "head", 5, "print the first N rows (0 disables)")
	rootCmd.AddCommand(exploreCmd)
}

func printDescribe(rep table.DescribeReport) {
	fmt.Printf("shape: %d rows x %d columns (~%.2f MB)\n\n",
		rep.RowCount, rep.ColumnCount, float64(rep.EstimatedBytes)/(1024*1024))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "column\tdtype\tnon-null\tnull\tnull %")
	for _, col := range rep.Columns {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\n",
			col.Name, col.Dtype, col.NonNull, col.Nulls, col.NullPercent)
	}
	w.Flush()

	if len(rep.Numeric) > 0 {
		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "numeric\tcount\tmin\tp25\tmedian\tp75\tmax\tmean")
		for _, n := range rep.Numeric {
			fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%g\t%g\t%g\t%.2f\n",
				n.Name, n.Count, n.Min, n.P25, n.Median, n.P75, n.Max, n.Mean)
		}
		w.Flush()
	}
}

func printHead(t *table.Table) {
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	names := t.ColumnNames()
	for i, name := range names {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, name)
	}
	fmt.Fprintln(w)

	for row := 0; row < t.RowCount(); row++ {
		for i, name := range names {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			col, _ := t.Column(name)
			fmt.Fprint(w, previewCell(col, row))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func previewCell(col *table.Column, row int) string {
	if col.IsMissing(row) {
		return "<missing>"
	}
	switch col.Kind() {
	case table.KindInt:
		v, _ := col.Int(row)
		return fmt.Sprintf("%d", v)
	case table.KindFloat:
		v, _ := col.Float(row)
		return fmt.Sprintf("%g", v)
	case table.KindDate:
		d, _ := col.Date(row)
		return d.Format("2006-01-02")
	default:
		v := col.Text(row)
		if len(v) > 40 {
			return v[:37] + "..."
		}
		return v
	}
}
