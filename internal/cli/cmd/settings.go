package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/cli/styles"
	"github.com/bnema/mytab/internal/domain/entity"
)

var (
	settingsJSON bool
	resetYes     bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change display preferences",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		snap := svc.Store.Snapshot()
		if settingsJSON {
			return printJSON(cmd, snap)
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.SettingsTable(app.Theme, snap))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one preference",
	Long: `Change one preference. Keys:

  searchEngine          engine id (google, bing, baidu, duckduckgo)
  wallpaperSource       local, random, unsplash, picsum or bing
  showClock             true/false
  showSeconds           true/false
  use24Hour             true/false
  backgroundBrightness  percent, clamped to 0-100
  backgroundBlur        pixels, negative values become 0
  hitokotoTypes         comma-separated category letters (a,b,c)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		patch, err := parsePreference(args[0], args[1])
		if err != nil {
			return err
		}
		if err := svc.Preferences.Apply(app.Ctx(), patch); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(fmt.Sprintf("%s updated", args[0])))
		return nil
	},
}

var settingsDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the raw stored values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		values, err := svc.Storage.Dump(app.Ctx())
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := cmd.OutOrStdout()
		for _, k := range keys {
			fmt.Fprintf(out, "%s%s = %s\n", svc.Storage.Prefix(), k, values[k])
		}
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every preference, group and bookmark to the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !resetYes {
			return fmt.Errorf("reset discards all bookmarks and groups; re-run with --yes")
		}
		svc, err := services()
		if err != nil {
			return err
		}
		svc.Store.Reset(app.Ctx())
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess("settings reset to defaults"))
		return nil
	},
}

// parsePreference turns a key/value pair into a single-field patch.
func parsePreference(key, value string) (usecase.PreferencesPatch, error) {
	var patch usecase.PreferencesPatch
	switch key {
	case entity.KeySearchEngine:
		patch.SearchEngine = &value
	case entity.KeyWallpaperSource:
		patch.WallpaperSource = &value
	case entity.KeyShowClock, entity.KeyShowSeconds, entity.KeyUse24Hour:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return patch, fmt.Errorf("%s expects true or false: %w", key, err)
		}
		switch key {
		case entity.KeyShowClock:
			patch.ShowClock = &b
		case entity.KeyShowSeconds:
			patch.ShowSeconds = &b
		default:
			patch.Use24Hour = &b
		}
	case entity.KeyBackgroundBrightness, entity.KeyBackgroundBlur:
		n, err := strconv.Atoi(value)
		if err != nil {
			return patch, fmt.Errorf("%s expects an integer: %w", key, err)
		}
		if key == entity.KeyBackgroundBlur {
			patch.BackgroundBlur = &n
		} else {
			patch.BackgroundBrightness = &n
		}
	case entity.KeyHitokotoTypes:
		var types []string
		for _, t := range strings.Split(value, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		patch.HitokotoTypes = &types
	default:
		return patch, fmt.Errorf("unknown setting %q", key)
	}
	return patch, nil
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsDumpCmd, settingsResetCmd)

	settingsShowCmd.Flags().BoolVar(&settingsJSON, "json", false, "print JSON")
	settingsResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "confirm the reset")
}
