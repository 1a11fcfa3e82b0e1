package schedule

import (
	"fmt"
	"strconv"

	"timetable-server/models"
)

const (
	LESSON_NUMBER_FIELD = "lesson_number"
	SUBGROUP_FIELD      = "subgroup"
)

// Normalize converts one raw record into a display-ready lesson.
func Normalize(raw models.RawLesson) (models.Lesson, error) {
	position, err := strconv.ParseUint(raw.LessonNumber, 10, 8)
	if err != nil {
		return models.Lesson{}, &ParseError{Field: LESSON_NUMBER_FIELD, Value: raw.LessonNumber, Err: err}
	}

	subgroup, err := strconv.Atoi(raw.Subgroup)
	if err != nil {
		return models.Lesson{}, &ParseError{Field: SUBGROUP_FIELD, Value: raw.Subgroup, Err: err}
	}

	return models.Lesson{
		Position: uint8(position),
		Title:    fmt.Sprintf("%s %s%s", raw.Type, raw.Subject, subgroupSuffix(subgroup)),
		Teacher:  raw.TeacherName,
		Place:    raw.Place,
	}, nil
}

// subgroupSuffix is empty for whole-group lessons (0) and unknown values.
func subgroupSuffix(subgroup int) string {
	switch subgroup {
	case 1, 2:
		return fmt.Sprintf(", subgroup %d", subgroup)
	default:
		return ""
	}
}
