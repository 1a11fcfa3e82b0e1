package util

import (
	"encoding/json"
	"fmt"
	"os"

	"timetable-server/models"
)

// ReadRawLessonsFromJSON loads a portal schedule response from JSON on disk.
func ReadRawLessonsFromJSON(filePath string) ([]models.RawLesson, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var lessons []models.RawLesson
	if err := json.Unmarshal(data, &lessons); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raw lessons: %w", err)
	}
	return lessons, nil
}

// ReadTimetableFromJSON loads a timetable dump from JSON on disk.
func ReadTimetableFromJSON(filePath string) (*models.Timetable, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var t models.Timetable
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Timetable: %w", err)
	}
	return &t, nil
}

// WriteTimetableDump writes an indented JSON dump of the timetable to filePath.
func WriteTimetableDump(filePath string, t *models.Timetable) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal timetable dump: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write timetable dump %q: %w", filePath, err)
	}
	return nil
}

// PrintTimetablePartially prints key fields of a Timetable.
func PrintTimetablePartially(t *models.Timetable) {
	fmt.Printf("Group: %s (%s)\n", t.GroupName, t.GroupID)
	fmt.Printf("Weeks: %d\n", len(t.Weeks))
	for _, w := range t.Weeks {
		lessons := 0
		for _, d := range w.Days {
			lessons += len(d.Lessons)
		}
		fmt.Printf("Week of %s: %d days, %d lessons\n", w.Start(), len(w.Days), lessons)
	}
}
