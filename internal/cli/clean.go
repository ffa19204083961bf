package cli

import (
	"github.com/spf13/cobra"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/app"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run the cleaning pipeline and write the pre-cleaned cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := setup()
		session := app.NewSession(cfg, logger)

		raw, err := session.Load()
		if err != nil {
			return err
		}

		cleaned := session.Clean(raw)
		return session.WriteCleanedCache(cleaned)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
