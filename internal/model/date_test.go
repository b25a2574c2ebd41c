package model

import (
	"testing"
	"time"
)

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		days     int
		expected Date
	}{
		{"same month", NewDate(2026, 10, 14), 3, NewDate(2026, 10, 17)},
		{"month boundary", NewDate(2026, 10, 30), 3, NewDate(2026, 11, 2)},
		{"year boundary", NewDate(2026, 12, 30), 4, NewDate(2027, 1, 3)},
		{"backwards over year", NewDate(2027, 1, 1), -4, NewDate(2026, 12, 28)},
		{"leap day", NewDate(2028, 2, 28), 1, NewDate(2028, 2, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.AddDays(tt.days); got != tt.expected {
				t.Errorf("%s.AddDays(%d) = %s, expected %s", tt.date, tt.days, got, tt.expected)
			}
		})
	}
}

func TestDateOf_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	instant := time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC) // 06:00 on the 19th in UTC+10

	if got := DateOf(instant.In(loc)); got != NewDate(2026, 10, 19) {
		t.Errorf("DateOf() = %s, expected 2026-10-19", got)
	}
	if got := DateOf(instant); got != NewDate(2026, 10, 18) {
		t.Errorf("DateOf() = %s, expected 2026-10-18", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-04")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d != NewDate(2026, 3, 4) {
		t.Errorf("ParseDate() = %s", d)
	}
	if d.String() != "2026-03-04" {
		t.Errorf("String() = %s", d.String())
	}

	if _, err := ParseDate("04.03.2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestWeekWindow_ContainsAndDays(t *testing.T) {
	w := WeekWindow{Start: NewDate(2026, 12, 28), End: NewDate(2027, 1, 3)}

	if !w.Contains(NewDate(2027, 1, 1)) {
		t.Error("window should contain Jan 1")
	}
	if w.Contains(NewDate(2027, 1, 4)) || w.Contains(NewDate(2026, 12, 27)) {
		t.Error("window should not contain dates outside the range")
	}

	days := w.Days()
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0] != w.Start || days[6] != w.End {
		t.Errorf("unexpected days: %v", days)
	}
}

func TestRequestKey_Equality(t *testing.T) {
	w := WeekWindow{Start: NewDate(2026, 10, 12), End: NewDate(2026, 10, 18)}
	a := RequestKey{Group: "ИС-12", Window: w}
	b := RequestKey{Group: "ИС-12", Window: WeekWindow{Start: NewDate(2026, 10, 12), End: NewDate(2026, 10, 18)}}
	c := RequestKey{Group: "ИС-13", Window: w}

	if a != b {
		t.Error("keys with equal components should be equal")
	}
	if a == c {
		t.Error("keys with different groups should differ")
	}
}
