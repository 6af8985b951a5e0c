package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/mytab/internal/cli/styles"
	"github.com/bnema/mytab/internal/domain/entity"
)

var searchEnginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List search engines and their bang shortcuts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		current := svc.Search.CurrentEngine()
		engines := entity.SearchEngines()
		rows := make([][]string, 0, len(engines))
		for _, e := range engines {
			marker := ""
			if e.ID == current.ID {
				marker = styles.IconStar
			}
			rows = append(rows, []string{marker, e.ID, e.Name, "!" + e.Shortcut})
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewTable(app.Theme, []string{"", "ID", "Name", "Bang"}, rows))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Print the search URL for a query",
	Long: `Print the URL the new-tab search box would open. A leading !bang
(e.g. !ddg, !bd) picks that engine for this query only.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := services()
		if err != nil {
			return err
		}
		target := svc.Search.BuildURL(app.Ctx(), strings.Join(args, " "))
		if target == "" {
			return fmt.Errorf("empty query")
		}
		fmt.Fprintln(cmd.OutOrStdout(), target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchEnginesCmd)
}
