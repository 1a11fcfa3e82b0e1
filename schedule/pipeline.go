// Package schedule turns raw portal lesson records into days and Monday-based weeks.
package schedule

import "timetable-server/models"

// Build runs GroupByDay followed by PartitionIntoWeeks.
func Build(records []models.RawLesson) ([]models.Week, error) {
	days, err := GroupByDay(records)
	if err != nil {
		return nil, err
	}
	return PartitionIntoWeeks(days)
}

// Flatten concatenates the days of all weeks in order.
func Flatten(weeks []models.Week) []models.Day {
	var days []models.Day
	for _, week := range weeks {
		days = append(days, week.Days...)
	}
	return days
}
