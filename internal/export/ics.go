// Package export writes a loaded week as an iCalendar file.
package export

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
)

// ProductID identifies the generator in exported calendars
const ProductID = "-//college-schedule//schedule export//RU"

var timeRangePattern = regexp.MustCompile(`^\s*(\d{1,2})[:.](\d{2})\s*[-–—]\s*(\d{1,2})[:.](\d{2})\s*$`)

// ParseTimeRange parses "08:30-10:00" into offsets from midnight
func ParseTimeRange(s string) (start, end time.Duration, err error) {
	m := timeRangePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid time range %q", s)
	}
	start, err = clock(m[1], m[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time range %q: %w", s, err)
	}
	end, err = clock(m[3], m[4])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time range %q: %w", s, err)
	}
	if end <= start {
		return 0, 0, fmt.Errorf("invalid time range %q: end before start", s)
	}
	return start, end, nil
}

func clock(hh, mm string) (time.Duration, error) {
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%s:%s out of range", hh, mm)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

// Calendar builds one event per lesson part. Lessons whose time cannot be
// parsed are skipped and counted.
func Calendar(group model.GroupID, days []model.DaySchedule, loc *time.Location, l *present.Localization) (*ics.Calendar, int) {
	if loc == nil {
		loc = time.Local
	}
	if l == nil {
		l = present.NewLocalization()
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName(fmt.Sprintf("%s %s", l.GetText(present.KeySchedule), group))

	now := time.Now()
	skipped := 0
	for _, day := range days {
		midnight := day.Date.Time(loc)
		for _, lesson := range day.Lessons {
			from, to, err := ParseTimeRange(lesson.Time)
			if err != nil {
				skipped++
				continue
			}
			start := addClock(midnight, from)
			end := addClock(midnight, to)

			for _, pd := range lesson.OrderedParts() {
				event := cal.AddEvent(eventID(group, day.Date, lesson.Number, pd.Part))
				event.SetCreatedTime(now)
				event.SetDtStampTime(now)
				event.SetModifiedAt(now)
				event.SetStartAt(start)
				event.SetEndAt(end)
				event.SetSummary(summary(l, pd))
				if where := locationText(l, pd.Details); where != "" {
					event.SetLocation(where)
				}
				event.SetDescription(strings.Join(l.DetailLines(pd), "\n"))
			}
		}
	}
	return cal, skipped
}

// WriteFile serializes cal to path
func WriteFile(path string, cal *ics.Calendar) error {
	if err := os.WriteFile(path, []byte(cal.Serialize()), 0644); err != nil {
		return fmt.Errorf("could not write ics file: %w", err)
	}
	return nil
}

// FileName returns the default export file name for a group and week
func FileName(group model.GroupID, w model.WeekWindow) string {
	return fmt.Sprintf("schedule_%s_%s.ics", group, w.Start)
}

// addClock sets the wall clock on a civil midnight, staying correct across DST changes
func addClock(midnight time.Time, d time.Duration) time.Time {
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return time.Date(midnight.Year(), midnight.Month(), midnight.Day(), h, m, 0, 0, midnight.Location())
}

func eventID(group model.GroupID, d model.Date, number int, part model.LessonPart) string {
	return fmt.Sprintf("%s-%s-%d-%s@college-schedule", group, d, number, strings.ToLower(string(part)))
}

func summary(l *present.Localization, pd model.PartDetails) string {
	s := pd.Details.Subject
	if label := l.PartLabel(pd.Part); label != "" {
		s = fmt.Sprintf("%s (%s)", s, label)
	}
	return s
}

func locationText(l *present.Localization, d *model.LessonDetails) string {
	parts := make([]string, 0, 2)
	if line := l.LocationLine(d); line != "" {
		parts = append(parts, line)
	}
	if d.Address != "" {
		parts = append(parts, d.Address)
	}
	return strings.Join(parts, "; ")
}
