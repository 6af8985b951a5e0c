package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bnema/mytab/internal/application/usecase"
	"github.com/bnema/mytab/internal/cli/styles"
	"github.com/bnema/mytab/internal/domain/entity"
)

var (
	groupName string
	groupIcon string
	groupJSON bool
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage bookmark groups",
}

var groupsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List groups; the active one is starred",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		groups := svc.Bookmarks.ListGroups()
		if groupJSON {
			return printJSON(cmd, groups)
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.GroupsTable(app.Theme, groups, svc.Bookmarks.ListBookmarks(), svc.Store.ActiveGroupID.Get()))
		return nil
	},
}

var groupsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		if err := checkIcon(groupIcon); err != nil {
			return err
		}
		id := svc.Bookmarks.AddGroup(app.Ctx(), usecase.GroupInput{Name: args[0], Icon: groupIcon})
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(fmt.Sprintf("created group %s (%s)", args[0], id)))
		return nil
	},
}

var groupsRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Delete a group; its bookmarks move to the default group",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		id := args[0]
		if id == entity.DefaultGroupID {
			return fmt.Errorf("the default group cannot be deleted")
		}
		if !svc.Bookmarks.RemoveGroup(app.Ctx(), id) {
			return fmt.Errorf("group %q not found", id)
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess("deleted group "+id))
		return nil
	},
}

var groupsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a group or change its icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		id := args[0]
		if entity.FindGroup(svc.Bookmarks.ListGroups(), id) < 0 {
			return fmt.Errorf("group %q not found", id)
		}

		var patch usecase.GroupPatch
		if cmd.Flags().Changed("name") {
			patch.Name = &groupName
		}
		if cmd.Flags().Changed("icon") {
			if err := checkIcon(groupIcon); err != nil {
				return err
			}
			patch.Icon = &groupIcon
		}
		svc.Bookmarks.UpdateGroup(app.Ctx(), id, patch)
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess("updated group "+id))
		return nil
	},
}

var groupsUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Make a group the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		if !svc.Bookmarks.SetActiveGroup(app.Ctx(), args[0]) {
			return fmt.Errorf("group %q not found", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess("active group: "+args[0]))
		return nil
	},
}

var groupsIconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List the icon names a group can use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, icon := range entity.AvailableIcons() {
			fmt.Fprintln(cmd.OutOrStdout(), icon)
		}
		return nil
	},
}

func checkIcon(icon string) error {
	if icon == "" || slices.Contains(entity.AvailableIcons(), icon) {
		return nil
	}
	return fmt.Errorf("unknown icon %q (see `mytab groups icons`)", icon)
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.AddCommand(groupsListCmd, groupsAddCmd, groupsRemoveCmd, groupsUpdateCmd, groupsUseCmd, groupsIconsCmd)

	groupsListCmd.Flags().BoolVar(&groupJSON, "json", false, "print JSON")
	groupsAddCmd.Flags().StringVarP(&groupIcon, "icon", "i", "Folder", "Lucide icon name")
	groupsUpdateCmd.Flags().StringVarP(&groupName, "name", "n", "", "new name")
	groupsUpdateCmd.Flags().StringVarP(&groupIcon, "icon", "i", "", "new Lucide icon name")
}
