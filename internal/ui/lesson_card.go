package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
)

// NewLessonCard renders one lesson with a block per group part
func NewLessonCard(lesson model.Lesson, l *present.Localization) *widget.Card {
	var rows []fyne.CanvasObject
	for i, pd := range lesson.OrderedParts() {
		if i > 0 {
			rows = append(rows, widget.NewSeparator())
		}
		rows = append(rows, newPartBlock(pd, l))
	}
	return widget.NewCard("", l.LessonTitle(lesson), container.NewVBox(rows...))
}

func newPartBlock(pd model.PartDetails, l *present.Localization) fyne.CanvasObject {
	d := pd.Details
	var objects []fyne.CanvasObject

	if label := l.PartLabel(pd.Part); label != "" {
		text := canvas.NewText(label, theme.Color(ColorNameSubgroup))
		text.TextStyle = fyne.TextStyle{Bold: true}
		text.TextSize = theme.CaptionTextSize()
		objects = append(objects, text)
	}

	objects = append(objects, wrappedLabel(IconSubject+" "+d.Subject, fyne.TextStyle{Bold: true}))

	if teacher := present.TeacherLine(d); teacher != "" {
		objects = append(objects, wrappedLabel(IconTeacher+" "+teacher, fyne.TextStyle{}))
	}
	if where := l.LocationLine(d); where != "" {
		objects = append(objects, wrappedLabel(IconLocation+" "+where, fyne.TextStyle{}))
	}
	if d.Address != "" {
		objects = append(objects, wrappedLabel(d.Address, fyne.TextStyle{Italic: true}))
	}
	return container.NewVBox(objects...)
}

func wrappedLabel(text string, style fyne.TextStyle) *widget.Label {
	label := widget.NewLabelWithStyle(text, fyne.TextAlignLeading, style)
	label.Wrapping = fyne.TextWrapWord
	return label
}

// newDayBlock renders a day header followed by its lesson cards
func newDayBlock(day model.DaySchedule, l *present.Localization) fyne.CanvasObject {
	header := widget.NewLabelWithStyle(l.DayHeader(day), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	objects := []fyne.CanvasObject{header}
	for _, lesson := range day.Lessons {
		objects = append(objects, NewLessonCard(lesson, l))
	}
	return container.NewVBox(objects...)
}
