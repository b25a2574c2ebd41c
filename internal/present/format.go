package present

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ytget/college-schedule/internal/loader"
	"github.com/ytget/college-schedule/internal/model"
)

// DisplayDateLayout is used for dates shown to the user
const DisplayDateLayout = "02.01.2006"

var weekdayNames = map[string][7]string{
	LangRussian: {"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
	LangEnglish: {"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
}

func (l *Localization) tag() language.Tag {
	if l.currentLanguage == LangEnglish {
		return language.English
	}
	return language.Russian
}

// WeekdayName returns the capitalized weekday name of d
func (l *Localization) WeekdayName(wd time.Weekday) string {
	names, ok := weekdayNames[l.currentLanguage]
	if !ok {
		names = weekdayNames[DefaultLanguage]
	}
	return cases.Title(l.tag()).String(names[wd])
}

// DayHeader renders "Понедельник, 12.10.2026". The weekday sent by the
// server is preferred over the computed one.
func (l *Localization) DayHeader(day model.DaySchedule) string {
	name := cases.Title(l.tag()).String(strings.TrimSpace(day.Weekday))
	if name == "" {
		name = l.WeekdayName(day.Date.Weekday())
	}
	return fmt.Sprintf("%s, %s", name, FormatDate(day.Date))
}

// FormatDate renders d as DD.MM.YYYY
func FormatDate(d model.Date) string {
	return d.Time(time.UTC).Format(DisplayDateLayout)
}

// WeekTitle renders the window as "12.10.2026 - 18.10.2026"
func WeekTitle(w model.WeekWindow) string {
	return FormatDate(w.Start) + " - " + FormatDate(w.End)
}

// PartLabel returns the subgroup label, empty for a whole-group lesson
func (l *Localization) PartLabel(part model.LessonPart) string {
	switch part {
	case model.LessonPartSub1:
		return l.GetText(KeySubgroup1)
	case model.LessonPartSub2:
		return l.GetText(KeySubgroup2)
	default:
		return ""
	}
}

// LessonTitle renders "Пара 1 · 08:30-10:00"
func (l *Localization) LessonTitle(lesson model.Lesson) string {
	title := fmt.Sprintf(l.GetText(KeyLessonNumber), lesson.Number)
	if t := strings.TrimSpace(lesson.Time); t != "" {
		title += " · " + t
	}
	return title
}

// TeacherLine renders the teacher with the position in parentheses
func TeacherLine(d *model.LessonDetails) string {
	if d == nil || d.Teacher == "" {
		return ""
	}
	if d.TeacherPosition == "" {
		return d.Teacher
	}
	return fmt.Sprintf("%s (%s)", d.Teacher, d.TeacherPosition)
}

// LocationLine renders "1, ауд. 101"
func (l *Localization) LocationLine(d *model.LessonDetails) string {
	if d == nil {
		return ""
	}
	var parts []string
	if d.Building != "" {
		parts = append(parts, d.Building)
	}
	if d.Classroom != "" {
		parts = append(parts, l.GetText(KeyClassroom)+" "+d.Classroom)
	}
	return strings.Join(parts, ", ")
}

// DetailLines returns the non-empty lines describing one lesson part:
// subgroup label, subject, teacher, location and address.
func (l *Localization) DetailLines(pd model.PartDetails) []string {
	d := pd.Details
	if d == nil {
		return nil
	}
	candidates := []string{
		l.PartLabel(pd.Part),
		d.Subject,
		TeacherLine(d),
		l.LocationLine(d),
		d.Address,
	}
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			lines = append(lines, c)
		}
	}
	return lines
}

// StatusMessage returns the placeholder text for a schedule state, or ""
// when the state has days to show
func (l *Localization) StatusMessage(s model.LoadState[[]model.DaySchedule]) string {
	switch s.Status {
	case model.LoadStatusLoading:
		return l.GetText(KeyLoading)
	case model.LoadStatusError:
		msg := s.Message
		if msg == "" || msg == loader.UnknownErrorMessage {
			msg = l.GetText(KeyUnknownError)
		}
		return fmt.Sprintf("%s: %s", l.GetText(KeyErrorPrefix), msg)
	case model.LoadStatusSuccess:
		if len(s.Value) == 0 {
			return l.GetText(KeyEmptySchedule)
		}
		return ""
	default:
		return ""
	}
}

// FavoriteActionLabel returns the label of the favorite toggle for the current state
func (l *Localization) FavoriteActionLabel(favorite bool) string {
	if favorite {
		return l.GetText(KeyRemoveFavorite)
	}
	return l.GetText(KeyAddFavorite)
}
