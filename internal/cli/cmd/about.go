package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/mytab/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version, build and storage information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		fields := []styles.AboutField{
			{Label: "Storage", Value: string(app.Config.Storage.Backend)},
		}
		if app.Config.Storage.Path != "" {
			fields = append(fields, styles.AboutField{Label: "Data", Value: app.Config.Storage.Path})
		}
		if path, err := configFilePath(); err == nil {
			fields = append(fields, styles.AboutField{Label: "Config", Value: path})
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo, fields...))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
