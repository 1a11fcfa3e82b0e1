package models

// RawLesson matches one element of the array returned by GET /student_schedule.
// Every field arrives as a string.
type RawLesson struct {
	DateLesson   string `json:"date_lesson"` // "2025-01-06"
	DayNumber    string `json:"day_number"`
	LessonNumber string `json:"lesson_number"`
	Type         string `json:"type"`
	Subject      string `json:"subject"`
	TeacherName  string `json:"teacher_name"`
	Place        string `json:"place"`
	Subgroup     string `json:"subgroup"` // "0", "1" or "2"
}
