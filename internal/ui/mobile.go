package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI adapts layout decisions to the current device
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// TabLocation puts navigation at the bottom on phones and on top on desktop
func (m *MobileUI) TabLocation() container.TabLocation {
	if m.IsMobileDevice() {
		return container.TabLocationBottom
	}
	return container.TabLocationTop
}
