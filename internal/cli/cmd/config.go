package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/cli/styles"
	"github.com/bnema/mytab/internal/infrastructure/config"
)

var (
	configSection  string
	configJSON     bool
	configDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Export, import and inspect configuration",
	Long: `Work with the two kinds of configuration mytab keeps:

  export/import   the new-tab state (groups, bookmarks, preferences) as a
                  versioned JSON document, compatible with the page's own
                  export button
  write/keys/path the config.toml that controls storage, logging, the
                  wallpaper resolver, favicons and the HTTP server`,
}

var configExportCmd = &cobra.Command{
	Use:   "export [file|dir]",
	Short: "Write the new-tab state as JSON (stdout when no path is given)",
	Long: `Write the current groups, bookmarks and preferences as a version 1 config
document. A directory argument receives a timestamped mytab-config-*.json file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		data, filename, err := svc.Transfer.ExportJSON(app.Ctx())
		if err != nil {
			return err
		}
		if len(args) == 0 {
			_, err := cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}

		target := args[0]
		if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
			target = filepath.Join(target, filename)
		}
		if err := os.WriteFile(target, data, 0o600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess("exported to "+target))
		return nil
	},
}

var configImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Replace the new-tab state with an exported document",
	Long: `Read a config document and apply it. The document is validated as a whole
first; nothing changes when any part of it is rejected. Use - for stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}

		var (
			r    io.Reader = cmd.InOrStdin()
			size int64     = -1
		)
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open config file: %w", err)
			}
			defer f.Close()
			if info, err := f.Stat(); err == nil {
				size = info.Size()
			}
			r = f
		}

		result, err := svc.Transfer.Import(app.Ctx(), r, size)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(result.Message))
		if result.ImportTime != "" {
			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("exported at "+result.ImportTime))
		}
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the export document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		data, err := svc.Transfer.DocumentSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Rewrite config.toml in canonical order with every key filled in",
	Long: `Rewrite config.toml from the effective configuration: keys missing from
the file are written with their defaults and sections are sorted. With
--defaults the file is replaced by the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		cfg := app.Config
		if configDefaults {
			cfg = config.DefaultConfig()
		}
		if err := config.WriteConfigOrdered(cfg, path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess("wrote "+path))
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every config.toml key with its type and default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
		out, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configSection})
		if err != nil {
			return err
		}

		renderer := styles.NewConfigSchemaRenderer(app.Theme)
		if configJSON {
			text, err := renderer.RenderJSON(out.Keys)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(out.Keys))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config.toml path in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func configFilePath() (string, error) {
	if rootOptions.ConfigFile != "" {
		return rootOptions.ConfigFile, nil
	}
	if app != nil && app.ConfigMgr != nil {
		if used := app.ConfigMgr.GetConfigFile(); used != "" {
			return used, nil
		}
	}
	return config.GetConfigFile()
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configExportCmd, configImportCmd, configSchemaCmd, configWriteCmd, configKeysCmd, configPathCmd)

	configWriteCmd.Flags().BoolVar(&configDefaults, "defaults", false, "write the built-in defaults instead")
	configKeysCmd.Flags().StringVarP(&configSection, "section", "s", "", "only keys of this section (storage, logging, ...)")
	configKeysCmd.Flags().BoolVar(&configJSON, "json", false, "print JSON")
}
