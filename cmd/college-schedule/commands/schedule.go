package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/ytget/college-schedule/internal/export"
	"github.com/ytget/college-schedule/internal/loader"
	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/selection"
)

func scheduleCmd(app *appContext) *cobra.Command {
	var (
		exportPath string
		favorite   bool
	)

	cmd := &cobra.Command{
		Use:   "schedule [group]",
		Short: "Show this week's schedule for a group",
		Long:  `Show the current week's classes for a group. Without an argument the last viewed group is used.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := app.lastGroup()
			if len(args) == 1 {
				group = model.GroupID(args[0])
			}
			return runSchedule(cmd, app, group, exportPath, favorite)
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "write the week to an .ics file or into a directory")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "toggle the group's favorite flag before showing it")
	return cmd
}

// runSchedule loads group through the selection coordinator and prints the result
func runSchedule(cmd *cobra.Command, app *appContext, group model.GroupID, exportPath string, toggle bool) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	coord, err := selection.New(ctx, selection.Options{
		InitialGroup: group,
		WeekStart:    app.weekStart,
		Now:          app.now,
	}, app.favorites, loader.New[[]model.DaySchedule](), app.client.FetchSchedule)
	if err != nil {
		return err
	}
	defer coord.Close()

	if toggle {
		if _, err := coord.ToggleCurrentFavorite(); err != nil {
			return err
		}
	}

	view, err := awaitView(cmd.Context(), coord, isTerminal(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	if err := app.rememberGroup(group); err != nil {
		return fmt.Errorf("failed to remember group: %w", err)
	}

	out := cmd.OutOrStdout()
	renderSchedule(out, app.localization, view)

	if view.Schedule.Status == model.LoadStatusError {
		return fmt.Errorf("schedule for %s: %s", view.Group, view.Schedule.Message)
	}

	if exportPath != "" {
		path, err := exportWeek(app, view, exportPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nExported calendar to: %s\n", path)
	}
	return nil
}

// runSpinner shows a spinner titled title while action runs
var runSpinner = func(title string, action func()) error {
	return spinner.New().Title(title).Action(action).Run()
}

type awaited struct {
	view selection.View
	err  error
}

// awaitView waits for the load, with a spinner on interactive terminals.
// When the spinner cannot start, it waits without one.
func awaitView(ctx context.Context, coord *selection.Coordinator, interactive bool) (selection.View, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !interactive {
		return coord.Await(ctx)
	}

	result := make(chan awaited, 1)
	runErr := runSpinner(fmt.Sprintf("Fetching schedule for %s...", coord.Group()), func() {
		view, err := coord.Await(ctx)
		result <- awaited{view: view, err: err}
	})

	select {
	case r := <-result:
		if r.err == nil && runErr != nil {
			return r.view, fmt.Errorf("spinner: %w", runErr)
		}
		return r.view, r.err
	default:
		if runErr != nil {
			log.Printf("commands: spinner unavailable, waiting without it: %v", runErr)
		}
		return coord.Await(ctx)
	}
}

func exportWeek(app *appContext, view selection.View, target string) (string, error) {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, export.FileName(view.Group, view.Key.Window))
	}

	cal, skipped := export.Calendar(view.Group, view.Schedule.Value, time.Local, app.localization)
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d lessons without a parsable time were skipped\n", skipped)
	}
	if err := export.WriteFile(target, cal); err != nil {
		return "", err
	}
	return target, nil
}
