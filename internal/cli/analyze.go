package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/analysis"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/app"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute and print all aggregates over the cleaned dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := setup()
		session := app.NewSession(cfg, logger)

		t, fromCache, err := session.LoadData()
		if err != nil {
			return err
		}
		if fromCache {
			fmt.Println("using pre-cleaned cache")
		}

		printReport(session.Analyze(t))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func printReport(rep analysis.Report) {
	s := rep.Summary
	fmt.Printf("papers: %d  unique titles: %d  journals: %d",
		s.TotalRows, s.DistinctTitles, s.DistinctJournals)
	if s.YearRange != "" {
		fmt.Printf("  years: %s", s.YearRange)
	}
	if s.HasAbstractMean {
		fmt.Printf("  avg abstract words: %.1f", s.MeanAbstractWord)
	}
	fmt.Println()

	printBuckets("publications by year", yearBuckets(rep.YearlyCounts))
	printBuckets("top journals", categoryBuckets(rep.TopJournals))
	printBuckets("top title words", wordBuckets(rep.TopWords))
	printBuckets("source distribution", categoryBuckets(rep.Sources))
	printBuckets("monthly trend", monthBuckets(rep.MonthlyTrend))
}

func printBuckets(title string, rows [][2]string) {
	if len(rows) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(w, "  %s\t%s\n", row[0], row[1])
	}
	w.Flush()
}

func yearBuckets(counts []analysis.YearCount) [][2]string {
	out := make([][2]string, len(counts))
	for i, c := range counts {
		out[i] = [2]string{strconv.Itoa(c.Year), strconv.Itoa(c.Count)}
	}
	return out
}

func categoryBuckets(counts []analysis.CategoryCount) [][2]string {
	out := make([][2]string, len(counts))
	for i, c := range counts {
		out[i] = [2]string{c.Category, strconv.Itoa(c.Count)}
	}
	return out
}

func wordBuckets(counts []analysis.WordCount) [][2]string {
	out := make([][2]string, len(counts))
	for i, c := range counts {
		out[i] = [2]string{c.Word, strconv.Itoa(c.Count)}
	}
	return out
}

func monthBuckets(counts []analysis.MonthCount) [][2]string {
	out := make([][2]string, len(counts))
	for i, c := range counts {
		out[i] = [2]string{c.Month, strconv.Itoa(c.Count)}
	}
	return out
}
