package schedule

import (
	"fmt"
	"sort"
	"time"

	"timetable-server/models"
)

// GroupByDay groups raw records by date and returns the days in ascending date order.
//
// Dates are sorted as strings, which matches chronological order only because the
// portal sends fixed-width zero-padded YYYY-MM-DD values. ParseDate rejects anything
// else, so a format change fails loudly instead of producing a misordered timetable.
//
// Lessons keep the relative order they had in records; they are not sorted by position.
// The first invalid field aborts the whole call.
func GroupByDay(records []models.RawLesson) ([]models.Day, error) {
	byDate := make(map[string][]models.RawLesson)
	for _, record := range records {
		byDate[record.DateLesson] = append(byDate[record.DateLesson], record)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]models.Day, 0, len(dates))
	for _, key := range dates {
		date, err := ParseDate(key)
		if err != nil {
			return nil, err
		}

		group := byDate[key]
		lessons := make([]models.Lesson, 0, len(group))
		for _, raw := range group {
			lesson, err := Normalize(raw)
			if err != nil {
				return nil, fmt.Errorf("lesson on %s: %w", key, err)
			}
			lessons = append(lessons, lesson)
		}

		days = append(days, models.Day{
			Date:         date,
			WeekdayIndex: WeekdayIndex(date),
			Lessons:      lessons,
		})
	}

	return days, nil
}

// ParseDate parses a zero-padded YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, &DateParseError{Value: value, Err: err}
	}
	return date, nil
}

// WeekdayIndex returns 1 for Monday through 7 for Sunday.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday())+6)%7 + 1
}
