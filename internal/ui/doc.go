// Package ui contains the Fyne user interface: a schedule tab bound to the
// selection coordinator, a favorites tab and a profile tab with settings.
// All UI strings are localized via present.Localization.
package ui
