package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/college-schedule/internal/model"
)

func groupsCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "groups [query]",
		Short: "List known groups, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			favs := app.favorites.Current()
			out := cmd.OutOrStdout()
			for _, g := range model.FilterKnownGroups(query) {
				mark := " "
				if favs.Contains(g) {
					mark = favoriteStyle.Render(favoriteMark)
				}
				fmt.Fprintf(out, "%s %s\n", mark, g)
			}
			return nil
		},
	}
}
