// Package cmd provides Cobra CLI commands for mytab.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/mytab/internal/cli"
	"github.com/bnema/mytab/internal/domain/build"
)

var (
	app         *cli.App
	buildInfo   build.Info
	rootOptions cli.Options
	rootCmd     = &cobra.Command{
		Use:   "mytab",
		Short: "A self-hosted new-tab page with bookmarks, wallpapers and search",
		Long: `mytab - the state behind a browser new-tab page.

mytab keeps bookmark groups, display preferences and the current wallpaper in
a local store and serves them to the new-tab page over a small HTTP API.

Features:
  - Bookmarks organized in named, iconized groups
  - Wallpapers from a curated catalog, Picsum, Unsplash seeds or Bing daily
  - Search with engine selection and bang shortcuts (!g, !ddg, ...)
  - Import from Chrome/Chromium or a Netscape bookmarks.html export
  - Versioned JSON export/import of the whole configuration

Use 'mytab serve' to start the API, or the subcommands to manage the same
state from the terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "__complete":
				return nil
			}

			var err error
			app, err = cli.NewApp(rootOptions)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootOptions.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/mytab/config.toml)")
	rootCmd.PersistentFlags().StringVar(&rootOptions.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if app != nil {
			fmt.Fprintln(os.Stderr, app.Theme.RenderError(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// services returns the store-backed use cases of the running app.
func services() (*cli.Services, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app.Services()
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
