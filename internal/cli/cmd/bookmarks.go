package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/cli/styles"
	"github.com/bnema/mytab/internal/domain/entity"
	domainurl "github.com/bnema/mytab/internal/domain/url"
)

var (
	bookmarkGroup string
	bookmarkTitle string
	bookmarkIcon  string
	bookmarkURL   string
	bookmarkJSON  bool
)

var bookmarksCmd = &cobra.Command{
	Use:     "bookmarks",
	Aliases: []string{"bm"},
	Short:   "Manage new-tab bookmarks",
}

var bookmarksListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bookmarks, optionally for one group",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		list := svc.Bookmarks.ListBookmarks()
		if bookmarkGroup != "" {
			list = svc.Bookmarks.GetBookmarksByGroup(bookmarkGroup)
		}
		if bookmarkJSON {
			return printJSON(cmd, list)
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.BookmarksTable(app.Theme, list, svc.Bookmarks.ListGroups()))
		return nil
	},
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a bookmark to a group (default: the active group)",
	Long: `Add a bookmark. The URL is normalized (https:// is assumed), the title
defaults to the hostname and the icon to the favicon proxy URL.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		if bookmarkGroup != "" && entity.FindGroup(svc.Bookmarks.ListGroups(), bookmarkGroup) < 0 {
			return fmt.Errorf("group %q not found", bookmarkGroup)
		}
		target := domainurl.Normalize(args[0])
		host, ok := domainurl.Hostname(target)
		if !ok {
			return fmt.Errorf("invalid url %q", args[0])
		}
		title := bookmarkTitle
		if title == "" {
			title = host
		}
		icon := bookmarkIcon
		if icon == "" {
			icon = app.Favicons.SafeURL(target)
		}

		bm := svc.Bookmarks.AddBookmark(app.Ctx(), usecase.BookmarkInput{
			Title:   title,
			URL:     target,
			Icon:    icon,
			GroupID: bookmarkGroup,
		})
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(fmt.Sprintf("added %s (%s) to %s", bm.Title, bm.ID, bm.GroupID)))
		return nil
	},
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:     "rm <id>...",
	Aliases: []string{"remove"},
	Short:   "Remove bookmarks by id",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		for _, id := range args {
			svc.Bookmarks.RemoveBookmark(app.Ctx(), id)
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(fmt.Sprintf("removed %d bookmark(s)", len(args))))
		return nil
	},
}

var bookmarksUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a bookmark's title, URL or icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		id := args[0]
		if entity.FindBookmark(svc.Bookmarks.ListBookmarks(), id) < 0 {
			return fmt.Errorf("bookmark %q not found", id)
		}

		var patch usecase.BookmarkPatch
		flags := cmd.Flags()
		if flags.Changed("title") {
			patch.Title = &bookmarkTitle
		}
		if flags.Changed("url") {
			normalized := domainurl.Normalize(bookmarkURL)
			patch.URL = &normalized
		}
		if flags.Changed("icon") {
			patch.Icon = &bookmarkIcon
		}
		svc.Bookmarks.UpdateBookmark(app.Ctx(), id, patch)
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess("updated "+id))
		return nil
	},
}

var bookmarksMoveCmd = &cobra.Command{
	Use:   "move <id> <group-id>",
	Short: "Move a bookmark to another group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		id, groupID := args[0], args[1]
		if entity.FindBookmark(svc.Bookmarks.ListBookmarks(), id) < 0 {
			return fmt.Errorf("bookmark %q not found", id)
		}
		if entity.FindGroup(svc.Bookmarks.ListGroups(), groupID) < 0 {
			return fmt.Errorf("group %q not found", groupID)
		}
		svc.Bookmarks.MoveBookmarkToGroup(app.Ctx(), id, groupID)
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(fmt.Sprintf("moved %s to %s", id, groupID)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd, bookmarksAddCmd, bookmarksRemoveCmd, bookmarksUpdateCmd, bookmarksMoveCmd)

	bookmarksListCmd.Flags().StringVarP(&bookmarkGroup, "group", "g", "", "only list this group")
	bookmarksListCmd.Flags().BoolVar(&bookmarkJSON, "json", false, "print JSON")

	bookmarksAddCmd.Flags().StringVarP(&bookmarkGroup, "group", "g", "", "target group id")
	bookmarksAddCmd.Flags().StringVarP(&bookmarkTitle, "title", "t", "", "bookmark title")
	bookmarksAddCmd.Flags().StringVar(&bookmarkIcon, "icon", "", "icon URL")

	bookmarksUpdateCmd.Flags().StringVarP(&bookmarkTitle, "title", "t", "", "new title")
	bookmarksUpdateCmd.Flags().StringVar(&bookmarkURL, "url", "", "new URL")
	bookmarksUpdateCmd.Flags().StringVar(&bookmarkIcon, "icon", "", "new icon URL")
}
