package model

// LessonPart tags which part of the group a lesson slot is for
type LessonPart string

const (
	// LessonPartFull is the whole group
	LessonPartFull LessonPart = "FULL"

	// LessonPartSub1 is the first subgroup
	LessonPartSub1 LessonPart = "SUB1"

	// LessonPartSub2 is the second subgroup
	LessonPartSub2 LessonPart = "SUB2"
)

// LessonParts lists parts in display order
var LessonParts = []LessonPart{LessonPartFull, LessonPartSub1, LessonPartSub2}

// IsSubgroup returns true for split-subgroup parts
func (p LessonPart) IsSubgroup() bool {
	return p == LessonPartSub1 || p == LessonPartSub2
}

// LessonDetails describes what happens in one part of a lesson slot
type LessonDetails struct {
	Subject         string `json:"subject"`
	Teacher         string `json:"teacher"`
	TeacherPosition string `json:"teacherPosition"`
	Building        string `json:"building"`
	Classroom       string `json:"classroom"`
	Address         string `json:"address"`
}

// Lesson is one numbered timetable slot
type Lesson struct {
	Number int                           `json:"lessonNumber"`
	Time   string                        `json:"time"` // "08:30-10:00"
	Parts  map[LessonPart]*LessonDetails `json:"groupParts"`
}

// PartDetails pairs a part with its details
type PartDetails struct {
	Part    LessonPart
	Details *LessonDetails
}

// OrderedParts returns the parts that carry details, FULL first
func (l Lesson) OrderedParts() []PartDetails {
	var out []PartDetails
	for _, part := range LessonParts {
		if d := l.Parts[part]; d != nil {
			out = append(out, PartDetails{Part: part, Details: d})
		}
	}
	return out
}

// IsSplit returns true when the slot has details for a subgroup
func (l Lesson) IsSplit() bool {
	for _, pd := range l.OrderedParts() {
		if pd.Part.IsSubgroup() {
			return true
		}
	}
	return false
}

// DaySchedule is the list of lessons for one date, in the order returned by
// the source (ascending lesson number).
type DaySchedule struct {
	Date    Date
	Weekday string
	Lessons []Lesson
}

// CountLessons returns the total number of lesson slots across days
func CountLessons(days []DaySchedule) int {
	n := 0
	for _, d := range days {
		n += len(d.Lessons)
	}
	return n
}
