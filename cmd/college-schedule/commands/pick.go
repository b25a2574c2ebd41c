package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
)

func pickCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a group interactively and show its schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := app.lastGroup().String()
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title(app.localization.GetText(present.KeySelectGroup)).
						Description("Enter = confirm. Start typing to filter.").
						Options(groupOptions(app.favorites.Current())...).
						Value(&selected).
						Filtering(true).
						Height(12),
				),
			).WithTheme(pickTheme())

			if err := form.RunWithContext(cmd.Context()); err != nil {
				return err
			}
			return runSchedule(cmd, app, model.GroupID(selected), "", false)
		},
	}
}

// groupOptions lists favorites first, then the rest of the catalog
func groupOptions(favs model.FavoriteSet) []huh.Option[string] {
	var options []huh.Option[string]
	for _, g := range favs.Sorted() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s %s", favoriteMark, g), g.String()))
	}
	for _, g := range model.KnownGroups {
		if favs.Contains(g) {
			continue
		}
		options = append(options, huh.NewOption(g.String(), g.String()))
	}
	return options
}

func pickTheme() *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color("99")
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	return t
}
