package config

import (
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/college-schedule/internal/api"
	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/week"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultGroup   = "default_group"
	KeyAPIBaseURL     = "api_base_url"
	KeyWeekStart      = "week_start"
	KeyRequestTimeout = "request_timeout_sec"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultGroup          = model.DefaultGroup
	DefaultAPIBaseURL     = api.DefaultBaseURL
	DefaultWeekStart      = week.StartMonday
	DefaultRequestTimeout = 10
	DefaultLanguage       = "system"

	MinRequestTimeout = 1
	MaxRequestTimeout = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultGroup returns the group opened on start, i.e. the last selected one
func (s *Settings) GetDefaultGroup() model.GroupID {
	group := model.GroupID(s.app.Preferences().String(KeyDefaultGroup))
	if !group.Valid() {
		s.SetDefaultGroup(DefaultGroup)
		return DefaultGroup
	}
	return group
}

// SetDefaultGroup stores the group opened on start; empty ids are ignored
func (s *Settings) SetDefaultGroup(group model.GroupID) {
	if !group.Valid() {
		return
	}
	s.app.Preferences().SetString(KeyDefaultGroup, group.String())
}

// GetAPIBaseURL returns the schedule service address
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the schedule service address
func (s *Settings) SetAPIBaseURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetWeekStart returns the configured first day of the week
func (s *Settings) GetWeekStart() time.Weekday {
	raw := s.app.Preferences().String(KeyWeekStart)
	start, err := week.ParseWeekStart(raw)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", KeyWeekStart, raw, err)
		start = DefaultWeekStart
	}
	if raw == "" || err != nil {
		s.SetWeekStart(start)
	}
	return start
}

// SetWeekStart sets the first day of the week
func (s *Settings) SetWeekStart(start time.Weekday) {
	s.app.Preferences().SetString(KeyWeekStart, week.FormatWeekStart(start))
}

// GetRequestTimeout returns the schedule request timeout in seconds
func (s *Settings) GetRequestTimeout() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeout sets the request timeout, clamped to 1..120 seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// RequestTimeout returns the timeout as a duration
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeout()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"ru":     "Русский",
		"en":     "English",
	}
}

// GetWeekStartOptions returns the supported first days of the week
func (s *Settings) GetWeekStartOptions() []time.Weekday {
	return []time.Weekday{week.StartMonday, week.StartSunday}
}
