package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/mytab/internal/cli/styles"
	"github.com/bnema/mytab/internal/domain/entity"
	domainurl "github.com/bnema/mytab/internal/domain/url"
)

var (
	wallpaperSource   string
	wallpaperCategory string
	wallpaperJSON     bool
)

var wallpaperCmd = &cobra.Command{
	Use:     "wallpaper",
	Aliases: []string{"wp"},
	Short:   "Pick and inspect new-tab wallpapers",
}

var wallpaperShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current background URL and source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, app.Theme.AccentBadge(styles.IconImage+" "+svc.Store.WallpaperSource.Get()))
		fmt.Fprintln(out, svc.Store.BackgroundURL.Get())
		return nil
	},
}

var wallpaperNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Resolve a new wallpaper and make it the background",
	Long: `Resolve a new wallpaper from the stored source, or from --source for this
call only. The image is preloaded before it replaces the background; Bing
falls back to Picsum when its feed is unavailable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		ctx := app.Ctx()

		var target string
		if wallpaperSource != "" {
			if !entity.IsWallpaperSource(wallpaperSource) {
				return fmt.Errorf("unknown wallpaper source %q", wallpaperSource)
			}
			target, err = svc.Wallpaper.Resolve(ctx, wallpaperSource, wallpaperCategory)
		} else {
			target, err = svc.Wallpaper.ResolveCurrent(ctx, wallpaperCategory)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(target))
		return nil
	},
}

var wallpaperSetCmd = &cobra.Command{
	Use:   "set <url>",
	Short: "Use a specific image as the background",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		target := domainurl.Normalize(args[0])
		if _, ok := domainurl.Hostname(target); !ok {
			return fmt.Errorf("invalid url %q", args[0])
		}
		loaded, err := svc.Wallpaper.SetBackground(app.Ctx(), target)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(loaded))
		return nil
	},
}

var wallpaperSourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List wallpaper sources; the selected one is starred",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		sources := svc.Wallpaper.Sources()
		if wallpaperJSON {
			return printJSON(cmd, sources)
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.WallpaperSourcesTable(app.Theme, sources, svc.Store.WallpaperSource.Get()))
		return nil
	},
}

var wallpaperCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List wallpaper categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		categories := svc.Wallpaper.Categories()
		if wallpaperJSON {
			return printJSON(cmd, categories)
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.CategoriesTable(app.Theme, categories))
		return nil
	},
}

var wallpaperListCmd = &cobra.Command{
	Use:     "list [category]",
	Aliases: []string{"ls"},
	Short:   "List curated wallpapers, optionally for one category",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		category := entity.CategoryAll
		if len(args) == 1 {
			category = args[0]
		}
		list := svc.Wallpaper.WallpapersByCategory(category)
		if wallpaperJSON {
			return printJSON(cmd, list)
		}
		rows := make([][]string, 0, len(list))
		for _, w := range list {
			rows = append(rows, []string{w.ID, w.Category, w.URL})
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewTable(app.Theme, []string{"ID", "Category", "URL"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wallpaperCmd)
	wallpaperCmd.AddCommand(wallpaperShowCmd, wallpaperNextCmd, wallpaperSetCmd,
		wallpaperSourcesCmd, wallpaperCategoriesCmd, wallpaperListCmd)

	wallpaperNextCmd.Flags().StringVarP(&wallpaperSource, "source", "s", "", "source for this call (local, random, unsplash, picsum, bing)")
	wallpaperNextCmd.Flags().StringVarP(&wallpaperCategory, "category", "c", entity.CategoryAll, "category for local and random sources")
	for _, c := range []*cobra.Command{wallpaperSourcesCmd, wallpaperCategoriesCmd, wallpaperListCmd} {
		c.Flags().BoolVar(&wallpaperJSON, "json", false, "print JSON")
	}
}
