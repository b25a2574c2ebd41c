package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
)

// ProfileView shows the current group and opens settings
type ProfileView struct {
	localization *present.Localization

	title       *widget.Label
	groupLabel  *widget.Label
	settingsBtn *widget.Button
	content     fyne.CanvasObject
}

// NewProfileView creates the profile tab
func NewProfileView(l *present.Localization, onSettings func()) *ProfileView {
	pv := &ProfileView{localization: l}
	pv.title = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	pv.groupLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	pv.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), onSettings)

	var header []fyne.CanvasObject
	if logo, err := LoadLogoResource(); err == nil {
		header = append(header, widget.NewIcon(logo))
	}
	header = append(header, pv.title, pv.groupLabel, pv.settingsBtn)

	pv.content = container.NewCenter(container.NewVBox(header...))
	pv.RefreshTexts()
	return pv
}

// Content returns the root canvas object of the tab
func (pv *ProfileView) Content() fyne.CanvasObject {
	return pv.content
}

// SetGroup shows the current group
func (pv *ProfileView) SetGroup(group model.GroupID) {
	pv.groupLabel.SetText(group.String())
}

// RefreshTexts re-applies localized strings
func (pv *ProfileView) RefreshTexts() {
	pv.title.SetText(pv.localization.GetText(present.KeyProfileText))
	pv.settingsBtn.SetText(pv.localization.GetText(present.KeySettings))
}
