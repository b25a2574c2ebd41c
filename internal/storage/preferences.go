package storage

import (
	"fyne.io/fyne/v2"
)

// Preferences stores string sets as Fyne preference string lists
type Preferences struct {
	prefs fyne.Preferences
}

// NewPreferences wraps the preferences of a Fyne app
func NewPreferences(prefs fyne.Preferences) *Preferences {
	return &Preferences{prefs: prefs}
}

// ReadSet returns the list stored under key, empty if absent
func (p *Preferences) ReadSet(key string) ([]string, error) {
	return p.prefs.StringList(key), nil
}

// WriteSet replaces the list stored under key. Fyne saves preferences to
// disk asynchronously and reports no failure, so this never returns an error.
func (p *Preferences) WriteSet(key string, values []string) error {
	p.prefs.SetStringList(key, values)
	return nil
}
