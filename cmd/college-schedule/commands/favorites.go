package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
)

func favoritesCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "List favorite groups",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			groups := app.favorites.Current().Sorted()
			if len(groups) == 0 {
				fmt.Fprintln(out, mutedStyle.Render(app.localization.GetText(present.KeyNoFavorites)))
				return nil
			}
			for _, g := range groups {
				fmt.Fprintf(out, "%s %s\n", favoriteStyle.Render(favoriteMark), g)
			}
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <group>",
			Short: "Add a group to favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				group, err := groupArg(args[0])
				if err != nil {
					return err
				}
				if err := app.favorites.Add(group); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.localization.GetText(present.KeyFavoriteAdded), group)
				return nil
			},
		},
		&cobra.Command{
			Use:     "remove <group>",
			Aliases: []string{"rm"},
			Short:   "Remove a group from favorites",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				group, err := groupArg(args[0])
				if err != nil {
					return err
				}
				if err := app.favorites.Remove(group); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.localization.GetText(present.KeyFavoriteRemoved), group)
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <group>",
			Short: "Flip a group's favorite flag",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				group, err := groupArg(args[0])
				if err != nil {
					return err
				}
				favorite, err := app.favorites.Toggle(group)
				if err != nil {
					return err
				}
				key := present.KeyFavoriteRemoved
				if favorite {
					key = present.KeyFavoriteAdded
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.localization.GetText(key), group)
				return nil
			},
		},
	)
	return cmd
}

func groupArg(s string) (model.GroupID, error) {
	group := model.GroupID(s)
	if !group.Valid() {
		return "", fmt.Errorf("group identifier must not be empty")
	}
	return group, nil
}
