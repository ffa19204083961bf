// Package cli defines the cobra commands that drive a session: explore
// the raw dataset, clean it into the cache, analyze the aggregates and
// export them.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/config"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "cordexplorer",
	Short: "Clean and analyze CORD-19 research-paper metadata",
	Long: `cordexplorer loads the CORD-19 metadata table, runs the cleaning
pipeline (missing-value remediation, date normalization, derived text
features, row filtering) and computes descriptive aggregates: yearly
publication counts, top journals, title word frequencies, source
distribution and monthly trends.`,
	SilenceUsage: true,
}

var (
	flagData   string
	flagSample int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "path to the metadata file (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagSample, "sample", 0, "load only this many rows (overrides config)")
}

// Execute runs the CLI; errors have already been logged by the commands.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup() (config.Config, *slog.Logger) {
	cfg := config.Load()
	if flagData != "" {
		cfg.Data.Path = flagData
	}
	if flagSample > 0 {
		cfg.Data.SampleSize = flagSample
	}
	return cfg, logging.New(cfg.Logging.Level)
}
