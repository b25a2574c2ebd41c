package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
	"github.com/ytget/college-schedule/internal/selection"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0, 0, 0)
	weekStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).MarginTop(1)
	lessonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	subgroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true)
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	favoriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const favoriteMark = "♥"

// renderSchedule prints a selection view as text
func renderSchedule(w io.Writer, l *present.Localization, v selection.View) {
	title := v.Group.String()
	if v.Favorite {
		title += " " + favoriteStyle.Render(favoriteMark)
	}
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, weekStyle.Render(l.GetText(present.KeyWeek)+": "+present.WeekTitle(v.Key.Window)))

	if msg := l.StatusMessage(v.Schedule); msg != "" {
		style := mutedStyle
		if v.Schedule.Status == model.LoadStatusError {
			style = errorStyle
		}
		fmt.Fprintln(w, style.Render("\n"+msg))
		return
	}

	for _, day := range v.Schedule.Value {
		fmt.Fprintln(w, dayStyle.Render(l.DayHeader(day)))
		if len(day.Lessons) == 0 {
			fmt.Fprintln(w, mutedStyle.Render("  -"))
		}
		for _, lesson := range day.Lessons {
			fmt.Fprintln(w, "  "+lessonStyle.Render(l.LessonTitle(lesson)))
			for _, pd := range lesson.OrderedParts() {
				renderPart(w, l, pd)
			}
		}
	}
}

func renderPart(w io.Writer, l *present.Localization, pd model.PartDetails) {
	indent := "    "
	if label := l.PartLabel(pd.Part); label != "" {
		fmt.Fprintln(w, indent+subgroupStyle.Render(label))
		indent += "  "
	}
	d := pd.Details
	fmt.Fprintln(w, indent+d.Subject)

	var details []string
	if teacher := present.TeacherLine(d); teacher != "" {
		details = append(details, teacher)
	}
	if where := l.LocationLine(d); where != "" {
		details = append(details, where)
	}
	if d.Address != "" {
		details = append(details, d.Address)
	}
	if len(details) > 0 {
		fmt.Fprintln(w, indent+detailStyle.Render(strings.Join(details, " · ")))
	}
}
