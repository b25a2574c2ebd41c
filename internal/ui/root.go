package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/college-schedule/internal/config"
	"github.com/ytget/college-schedule/internal/favorites"
	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
	"github.com/ytget/college-schedule/internal/selection"
)

// Coordinator is the selection state the schedule tab binds to
type Coordinator interface {
	SelectGroup(id model.GroupID) error
	ToggleCurrentFavorite() (bool, error)
	Refresh()
	View() selection.View
	Subscribe(fn func(selection.View)) (cancel func())
}

// FavoriteList is the favorites store as seen by the favorites tab
type FavoriteList interface {
	Remove(id model.GroupID) error
	Subscribe(fn func(model.FavoriteSet)) (cancel func())
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *present.Localization
	mobile       *MobileUI

	coord     Coordinator
	favorites FavoriteList

	tabs          *container.AppTabs
	scheduleTab   *container.TabItem
	favoritesTab  *container.TabItem
	profileTab    *container.TabItem
	scheduleView  *ScheduleView
	favoritesView *FavoritesView
	profileView   *ProfileView

	unsubscribe []func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, coord Coordinator, favs FavoriteList) *RootUI {
	settings := config.NewSettings(app)

	localization := present.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		coord:        coord,
		favorites:    favs,
	}

	window.SetTitle(localization.GetText(present.KeyAppTitle))

	ui.setupUI()

	ui.unsubscribe = append(ui.unsubscribe,
		coord.Subscribe(ui.onViewUpdate),
		favs.Subscribe(ui.onFavoritesUpdate),
	)
	log.Printf("ui: bound to group %s", coord.View().Group)
	return ui
}

// Close detaches the UI from its sources
func (ui *RootUI) Close() {
	for _, unsubscribe := range ui.unsubscribe {
		unsubscribe()
	}
	ui.unsubscribe = nil
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.scheduleView = NewScheduleView(ui.localization, ScheduleActions{
		SelectGroup:    ui.onSelectGroup,
		ToggleFavorite: ui.onToggleFavorite,
		Refresh:        ui.coord.Refresh,
	})
	ui.favoritesView = NewFavoritesView(ui.localization, ui.onOpenFavorite, ui.onRemoveFavorite)
	ui.profileView = NewProfileView(ui.localization, ui.onShowSettings)

	ui.scheduleTab = container.NewTabItemWithIcon(ui.localization.GetText(present.KeySchedule), theme.HomeIcon(), ui.scheduleView.Content())
	ui.favoritesTab = container.NewTabItemWithIcon(ui.localization.GetText(present.KeyFavorites), theme.ListIcon(), ui.favoritesView.Content())
	ui.profileTab = container.NewTabItemWithIcon(ui.localization.GetText(present.KeyProfile), theme.AccountIcon(), ui.profileView.Content())

	ui.tabs = container.NewAppTabs(ui.scheduleTab, ui.favoritesTab, ui.profileTab)
	ui.tabs.SetTabLocation(ui.mobile.TabLocation())

	ui.window.SetContent(ui.tabs)
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(present.KeySettings), ui.onShowSettings)
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(present.KeyRefresh), ui.coord.Refresh)

	languageMenu := fyne.NewMenu(ui.localization.GetText(present.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.settings.GetLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(present.KeySchedule), refreshItem, settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts re-applies localized strings after a language change
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(present.KeyAppTitle))
	ui.createMenu()

	ui.scheduleTab.Text = ui.localization.GetText(present.KeySchedule)
	ui.favoritesTab.Text = ui.localization.GetText(present.KeyFavorites)
	ui.profileTab.Text = ui.localization.GetText(present.KeyProfile)
	ui.tabs.Refresh()

	ui.scheduleView.Render(ui.coord.View(), true)
	ui.favoritesView.RefreshTexts()
	ui.profileView.RefreshTexts()
}

// onViewUpdate runs on the committing goroutine
func (ui *RootUI) onViewUpdate(v selection.View) {
	fyne.Do(func() {
		ui.scheduleView.Render(v, false)
		ui.profileView.SetGroup(v.Group)
	})
}

func (ui *RootUI) onFavoritesUpdate(set model.FavoriteSet) {
	sorted := set.Sorted()
	fyne.Do(func() {
		ui.favoritesView.SetFavorites(sorted)
	})
}

func (ui *RootUI) onSelectGroup(id model.GroupID) {
	if err := ui.coord.SelectGroup(id); err != nil {
		log.Printf("ui: select group %q: %v", id, err)
		return
	}
	ui.settings.SetDefaultGroup(id)
}

func (ui *RootUI) onToggleFavorite() {
	favorite, err := ui.coord.ToggleCurrentFavorite()
	if err != nil {
		ui.showFavoritesError(err)
		return
	}
	log.Printf("ui: favorite=%v for %s", favorite, ui.coord.View().Group)
}

func (ui *RootUI) onOpenFavorite(id model.GroupID) {
	ui.onSelectGroup(id)
	ui.tabs.Select(ui.scheduleTab)
}

func (ui *RootUI) onRemoveFavorite(id model.GroupID) {
	if err := ui.favorites.Remove(id); err != nil {
		ui.showFavoritesError(err)
	}
}

func (ui *RootUI) showFavoritesError(err error) {
	log.Printf("ui: favorites: %v", err)
	var perr *favorites.PersistenceError
	if errors.As(err, &perr) {
		err = fmt.Errorf("%s: %w", ui.localization.GetText(present.KeyErrorSavingFavorites), err)
	}
	dialog.ShowError(err, ui.window)
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}
