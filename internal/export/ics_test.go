package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
)

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		in        string
		wantStart time.Duration
		wantEnd   time.Duration
		wantErr   bool
	}{
		{"08:30-10:00", 8*time.Hour + 30*time.Minute, 10 * time.Hour, false},
		{" 8:30 – 10:00 ", 8*time.Hour + 30*time.Minute, 10 * time.Hour, false},
		{"13.00-14.30", 13 * time.Hour, 14*time.Hour + 30*time.Minute, false},
		{"10:00-08:30", 0, 0, true},
		{"25:00-26:00", 0, 0, true},
		{"", 0, 0, true},
		{"утро", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			start, end, err := ParseTimeRange(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ParseTimeRange(%q) = %v, %v", tt.in, start, end)
			}
		})
	}
}

func sampleWeek() []model.DaySchedule {
	return []model.DaySchedule{
		{
			Date:    model.NewDate(2026, 10, 12),
			Weekday: "понедельник",
			Lessons: []model.Lesson{
				{Number: 1, Time: "08:30-10:00", Parts: map[model.LessonPart]*model.LessonDetails{
					model.LessonPartFull: {Subject: "Математика", Teacher: "Иванов И.И.", Building: "1", Classroom: "101", Address: "ул. Ленина, 1"},
				}},
				{Number: 2, Time: "10:10-11:40", Parts: map[model.LessonPart]*model.LessonDetails{
					model.LessonPartSub1: {Subject: "Физика"},
					model.LessonPartSub2: {Subject: "Химия"},
				}},
				{Number: 3, Time: "по согласованию", Parts: map[model.LessonPart]*model.LessonDetails{
					model.LessonPartFull: {Subject: "Консультация"},
				}},
			},
		},
	}
}

func TestCalendar(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	cal, skipped := Calendar("ИС-12", sampleWeek(), loc, present.NewLocalization())

	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if n := len(cal.Events()); n != 3 {
		t.Fatalf("got %d events, want 3", n)
	}

	out := cal.Serialize()
	for _, want := range []string{
		"METHOD:PUBLISH",
		"SUMMARY:Математика",
		"SUMMARY:Физика (Подгруппа 1)",
		"SUMMARY:Химия (Подгруппа 2)",
		"DTSTART:20261012T053000Z",
		"ИС-12-2026-10-12-1-full@college-schedule",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized calendar missing %q", want)
		}
	}
	if strings.Contains(out, "Консультация") {
		t.Error("lesson with unparseable time should be skipped")
	}
}

func TestWriteFile(t *testing.T) {
	cal, _ := Calendar("ИС-12", sampleWeek(), time.UTC, nil)
	path := filepath.Join(t.TempDir(), FileName("ИС-12", model.WeekWindow{Start: model.NewDate(2026, 10, 12), End: model.NewDate(2026, 10, 18)}))

	if err := WriteFile(path, cal); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "BEGIN:VCALENDAR") {
		t.Errorf("unexpected file content: %.40q", data)
	}
	if filepath.Base(path) != "schedule_ИС-12_2026-10-12.ics" {
		t.Errorf("file name = %s", filepath.Base(path))
	}
}
