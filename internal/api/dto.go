package api

import (
	"fmt"

	"github.com/ytget/college-schedule/internal/model"
)

// dayDTO is one element of the schedule response
type dayDTO struct {
	LessonDate string      `json:"lessonDate"`
	Weekday    string      `json:"weekday"`
	Lessons    []lessonDTO `json:"lessons"`
}

type lessonDTO struct {
	LessonNumber int                                        `json:"lessonNumber"`
	Time         string                                     `json:"time"`
	GroupParts   map[model.LessonPart]*model.LessonDetails `json:"groupParts"`
}

func (d dayDTO) toModel() (model.DaySchedule, error) {
	date, err := model.ParseDate(d.LessonDate)
	if err != nil {
		return model.DaySchedule{}, fmt.Errorf("lessonDate %q: %w", d.LessonDate, err)
	}

	lessons := make([]model.Lesson, 0, len(d.Lessons))
	for _, l := range d.Lessons {
		parts := make(map[model.LessonPart]*model.LessonDetails, len(l.GroupParts))
		for part, details := range l.GroupParts {
			switch part {
			case model.LessonPartFull, model.LessonPartSub1, model.LessonPartSub2:
				parts[part] = details
			default:
				// unknown parts are ignored
			}
		}
		lessons = append(lessons, model.Lesson{
			Number: l.LessonNumber,
			Time:   l.Time,
			Parts:  parts,
		})
	}

	return model.DaySchedule{
		Date:    date,
		Weekday: d.Weekday,
		Lessons: lessons,
	}, nil
}
