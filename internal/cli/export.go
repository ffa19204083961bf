package cli

import (
	"github.com/spf13/cobra"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/app"
)

var (
	flagExportDir string
	flagSQLite    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Compute aggregates and export them as CSV (and optionally SQLite)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := setup()
		if flagExportDir != "" {
			cfg.Export.Dir = flagExportDir
		}
		if flagSQLite != "" {
			cfg.Export.SQLitePath = flagSQLite
		}
		session := app.NewSession(cfg, logger)

		t, _, err := session.LoadData()
		if err != nil {
			return err
		}

		return session.ExportReport(cmd.Context(), session.Analyze(t))
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDir, "out", "", "directory for aggregate CSV files (overrides config)")
	exportCmd.Flags().StringVar(&flagSQLite, "sqlite", "", "also save aggregates into this SQLite database")
	rootCmd.AddCommand(exportCmd)
}
