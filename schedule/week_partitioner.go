package schedule

import (
	"time"

	"timetable-server/models"
)

// PartitionIntoWeeks splits days, which must be ascending by date, into Monday-Sunday weeks.
// A week only contains days present in the input.
func PartitionIntoWeeks(days []models.Day) ([]models.Week, error) {
	if len(days) == 0 {
		return nil, ErrEmptyInput
	}

	var weeks []models.Week
	var current []models.Day
	windowStart := WeekStart(days[0].Date)
	windowEnd := windowStart.AddDate(0, 0, 7)

	for _, day := range days {
		if day.Date.Before(windowStart) || !day.Date.Before(windowEnd) {
			weeks = append(weeks, models.Week{Days: current})
			current = nil
			windowStart = WeekStart(day.Date)
			windowEnd = windowStart.AddDate(0, 0, 7)
		}
		current = append(current, day)
	}

	return append(weeks, models.Week{Days: current}), nil
}

// WeekStart returns midnight of the Monday on or before date.
func WeekStart(date time.Time) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.AddDate(0, 0, 1-WeekdayIndex(date))
}
