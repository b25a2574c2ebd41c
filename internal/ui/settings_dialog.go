package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/college-schedule/internal/config"
	"github.com/ytget/college-schedule/internal/present"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *present.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	apiURLEntry     *widget.Entry
	timeoutEntry    *widget.Entry
	weekStartSelect *widget.Select
	languageSelect  *widget.Select

	weekStarts map[string]time.Weekday
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, l *present.Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: l,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("1-120")

	sd.weekStarts = map[string]time.Weekday{
		l.GetText(present.KeyMonday): time.Monday,
		l.GetText(present.KeySunday): time.Sunday,
	}
	sd.weekStartSelect = widget.NewSelect([]string{l.GetText(present.KeyMonday), l.GetText(present.KeySunday)}, nil)

	var languageOptions []string
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(present.KeyAPIURL), sd.apiURLEntry),
		widget.NewFormItem(l.GetText(present.KeyTimeout), sd.timeoutEntry),
		widget.NewFormItem(l.GetText(present.KeyWeekStart), sd.weekStartSelect),
		widget.NewFormItem(l.GetText(present.KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(present.KeySettings),
		l.GetText(present.KeySave),
		l.GetText(present.KeyCancel),
		container.NewPadded(form),
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	l := sd.localization
	sd.apiURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeout()))
	if sd.settings.GetWeekStart() == time.Sunday {
		sd.weekStartSelect.SetSelected(l.GetText(present.KeySunday))
	} else {
		sd.weekStartSelect.SetSelected(l.GetText(present.KeyMonday))
	}
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAPIBaseURL(sd.apiURLEntry.Text)

	if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetRequestTimeout(seconds)
	}

	if start, ok := sd.weekStarts[sd.weekStartSelect.Selected]; ok {
		sd.settings.SetWeekStart(start)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	l := sd.localization
	dialog.ShowInformation(l.GetText(present.KeySettings),
		l.GetText(present.KeySettingsSaved)+"\n"+l.GetText(present.KeyRestartRequired), sd.window)
}
