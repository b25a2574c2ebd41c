package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire and display layout of a calendar date
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day or location
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a normalized Date (e.g. Jan 32 becomes Feb 1)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns midnight of the date in loc
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n calendar days later (n may be negative)
func (d Date) AddDays(n int) Date {
	// noon UTC keeps the arithmetic away from any DST edge
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// Weekday returns the day of the week of d
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats d as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// WeekWindow is an inclusive range of seven calendar dates
type WeekWindow struct {
	Start Date
	End   Date
}

// Contains reports whether d falls inside the window (inclusive)
func (w WeekWindow) Contains(d Date) bool {
	return !d.Before(w.Start) && !w.End.Before(d)
}

// Days returns every date of the window in ascending order
func (w WeekWindow) Days() []Date {
	var days []Date
	for d := w.Start; !w.End.Before(d); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// String returns "start..end"
func (w WeekWindow) String() string {
	return w.Start.String() + ".." + w.End.String()
}

// RequestKey identifies one schedule request. Two keys are equal iff both
// the group and the window are equal, so keys compare with ==.
type RequestKey struct {
	Group  GroupID
	Window WeekWindow
}

// String returns a compact representation for logs
func (k RequestKey) String() string {
	return fmt.Sprintf("%s@%s", k.Group, k.Window)
}
