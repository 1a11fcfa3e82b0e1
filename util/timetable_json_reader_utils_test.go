package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"timetable-server/models"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func sampleTimetable() *models.Timetable {
	return &models.Timetable{
		GroupID:     "6668",
		GroupName:   "CSb-231",
		GeneratedAt: time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC),
		Weeks: []models.Week{
			{Days: []models.Day{
				{
					Date:         time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
					WeekdayIndex: 1,
					Lessons: []models.Lesson{
						{Position: 1, Title: "Lecture Algebra", Teacher: "Ivanov I.I.", Place: "1-101"},
						{Position: 2, Title: "Lab Physics, subgroup 1", Teacher: "Petrova A.A.", Place: "2-204"},
					},
				},
			}},
			{Days: []models.Day{
				{
					Date:         time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
					WeekdayIndex: 1,
					Lessons: []models.Lesson{
						{Position: 3, Title: "Seminar History", Teacher: "Sidorov S.S.", Place: "3-301"},
					},
				},
			}},
		},
	}
}

func TestReadRawLessonsFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{
			"date_lesson": "2025-01-06",
			"day_number": "1",
			"lesson_number": "2",
			"type": "Lecture",
			"subject": "Algebra",
			"teacher_name": "Ivanov I.I.",
			"place": "1-101",
			"subgroup": "1"
		}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	lessons, err := ReadRawLessonsFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("Expected 1 lesson, got %d", len(lessons))
	}
	if lessons[0].DateLesson != "2025-01-06" {
		t.Errorf("Expected DateLesson '2025-01-06', got %s", lessons[0].DateLesson)
	}
	if lessons[0].TeacherName != "Ivanov I.I." {
		t.Errorf("Expected TeacherName 'Ivanov I.I.', got %s", lessons[0].TeacherName)
	}
	if lessons[0].Subgroup != "1" {
		t.Errorf("Expected Subgroup '1', got %s", lessons[0].Subgroup)
	}
}

func TestReadRawLessonsFromJSON_Malformed(t *testing.T) {
	tempFile := createTempFile(t, `[{"invalid_json`)
	defer os.Remove(tempFile)

	if _, err := ReadRawLessonsFromJSON(tempFile); err == nil {
		t.Fatalf("Expected an error, got nil")
	}
}

func TestWriteAndReadTimetableDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	expected := sampleTimetable()

	if err := WriteTimetableDump(path, expected); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	loaded, err := ReadTimetableFromJSON(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if loaded.GroupName != expected.GroupName {
		t.Errorf("Expected GroupName %s, got %s", expected.GroupName, loaded.GroupName)
	}
	if len(loaded.Weeks) != 2 {
		t.Fatalf("Expected 2 weeks, got %d", len(loaded.Weeks))
	}
	if !loaded.Weeks[1].Days[0].Date.Equal(expected.Weeks[1].Days[0].Date) {
		t.Errorf("Expected date %v, got %v", expected.Weeks[1].Days[0].Date, loaded.Weeks[1].Days[0].Date)
	}
	if loaded.Weeks[0].Days[0].Lessons[1].Title != "Lab Physics, subgroup 1" {
		t.Errorf("Unexpected lesson title %s", loaded.Weeks[0].Days[0].Lessons[1].Title)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read dump: %v", err)
	}
	if !contains(string(raw), `"date": "2025-01-13"`) {
		t.Errorf("Expected dump to carry plain dates, got %s", raw)
	}
}

func TestPrintTimetablePartially(t *testing.T) {
	// This test validates that the function doesn't panic.
	PrintTimetablePartially(sampleTimetable())
}
