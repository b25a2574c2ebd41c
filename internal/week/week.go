// Package week computes the current week window on calendar dates.
package week

import (
	"fmt"
	"strings"
	"time"

	"github.com/ytget/college-schedule/internal/model"
)

// Supported first days of the week
const (
	StartMonday = time.Monday
	StartSunday = time.Sunday
)

// CurrentWeek returns the inclusive window of the week containing now.
// The date of now is taken in now's own location, and the offset is applied
// in whole calendar days, so DST changes and year ends cannot shift it.
func CurrentWeek(now time.Time, start time.Weekday) model.WeekWindow {
	today := model.DateOf(now)
	offset := (int(today.Weekday()) - int(start) + 7) % 7
	first := today.AddDays(-offset)
	return model.WeekWindow{Start: first, End: first.AddDays(6)}
}

// ParseWeekStart parses a configured first day of the week
func ParseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monday", "mon", "пн":
		return StartMonday, nil
	case "sunday", "sun", "вс":
		return StartSunday, nil
	default:
		return 0, fmt.Errorf("unsupported week start %q (use monday or sunday)", s)
	}
}

// FormatWeekStart is the inverse of ParseWeekStart
func FormatWeekStart(start time.Weekday) string {
	if start == StartSunday {
		return "sunday"
	}
	return "monday"
}
