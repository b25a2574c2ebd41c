package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings    = "⚙"
	IconFavoriteOn  = "♥"
	IconFavoriteOff = "♡"
	IconRefresh     = "↻"
	IconSubject     = "📚"
	IconTeacher     = "👤"
	IconLocation    = "📍"
	IconClose       = "×"
)

// Layout sizing
const (
	GroupSelectMinWidth float32 = 160
	LessonCardMinWidth  float32 = 280

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 380
)

// Gesture thresholds
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)
