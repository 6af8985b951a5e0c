package cmd

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/mytab/internal/cli/model"
	"github.com/bnema/mytab/internal/domain/entity"
)

var (
	importHTML  string
	importGroup string
	importAll   bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import bookmarks from the browser",
	Long: `Pick browser bookmarks to copy into a group (default: the default group).

Bookmarks are read from the Chrome/Chromium profile configured in
browser.chrome_bookmarks_path, or from a Netscape bookmarks.html export with
--html. URLs already present are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		if importGroup != "" && entity.FindGroup(svc.Bookmarks.ListGroups(), importGroup) < 0 {
			return fmt.Errorf("group %q not found", importGroup)
		}

		importer, source := svc.Import, "Chrome"
		if importHTML != "" {
			if importer, err = app.ImportFromHTML(importHTML); err != nil {
				return err
			}
			source = filepath.Base(importHTML)
		}

		ctx := app.Ctx()
		available := importer.ListBrowserBookmarks(ctx)
		if len(available) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderWarning("no bookmarks found in "+source))
			return nil
		}

		selected := available
		if !importAll {
			if selected, err = pickBookmarks(source, available); err != nil {
				return err
			}
			if selected == nil {
				fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("import cancelled"))
				return nil
			}
		}

		added := importer.ImportSelected(ctx, selected, importGroup)
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(importSummary(len(added), len(selected))))
		return nil
	},
}

// pickBookmarks runs the interactive picker. It returns nil when the user
// cancels.
func pickBookmarks(source string, available []entity.BrowserBookmark) ([]entity.BrowserBookmark, error) {
	picker := model.NewImportPickerModel(app.Theme, source, available)
	final, err := tea.NewProgram(picker, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("bookmark picker failed: %w", err)
	}
	result, ok := final.(*model.ImportPickerModel)
	if !ok || !result.Confirmed() {
		return nil, nil
	}
	return result.Selected(), nil
}

func importSummary(added, selected int) string {
	skipped := selected - added
	if skipped == 0 {
		return fmt.Sprintf("imported %d bookmarks", added)
	}
	return fmt.Sprintf("imported %d bookmarks, skipped %d already present", added, skipped)
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importHTML, "html", "", "read a Netscape bookmarks.html export instead of Chrome")
	importCmd.Flags().StringVarP(&importGroup, "group", "g", "", "target group id")
	importCmd.Flags().BoolVar(&importAll, "all", false, "import everything without the picker")
}
