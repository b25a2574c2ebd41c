package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/college-schedule/internal/api"
	"github.com/ytget/college-schedule/internal/config"
	"github.com/ytget/college-schedule/internal/favorites"
	"github.com/ytget/college-schedule/internal/loader"
	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/selection"
	"github.com/ytget/college-schedule/internal/storage"
	"github.com/ytget/college-schedule/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.college-schedule"
	AppName = "College Schedule"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	favs, err := favorites.New(storage.NewPreferences(myApp.Preferences()))
	if err != nil {
		log.Fatalf("failed to load favorites: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := api.NewClient(settings.GetAPIBaseURL(), settings.RequestTimeout())
	coord, err := selection.New(ctx, selection.Options{
		InitialGroup: settings.GetDefaultGroup(),
		WeekStart:    settings.GetWeekStart(),
	}, favs, loader.New[[]model.DaySchedule](), client.FetchSchedule)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer coord.Close()

	rootUI := ui.NewRootUI(myWindow, myApp, coord, favs)
	defer rootUI.Close()

	myWindow.ShowAndRun()
}
