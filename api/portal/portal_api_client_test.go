package portal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-server/api"
	"timetable-server/models"
)

const scheduleJSON = `[
	{"date_lesson": "2025-01-06", "day_number": "1", "lesson_number": "1", "type": "Lecture",
	 "subject": "Algebra", "teacher_name": "Ivanov I.I.", "place": "1-101", "subgroup": "0"},
	{"date_lesson": "2025-01-07", "day_number": "2", "lesson_number": "3", "type": "Lab",
	 "subject": "Physics", "teacher_name": "Petrova A.A.", "place": "2-204", "subgroup": "2"}
]`

func TestGetStudentSchedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/api/student_schedule" {
			t.Errorf("expected path /api/student_schedule; got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("group_id"); got != "6668" {
			t.Errorf("group_id = %q; want 6668", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(scheduleJSON))
	}))
	defer srv.Close()

	client := NewPortalApiClient(api.NewHTTPClient(srv.URL + "/api"))

	got, err := client.GetStudentSchedule(context.Background(), "6668")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.RawLesson{
		DateLesson:   "2025-01-07",
		DayNumber:    "2",
		LessonNumber: "3",
		Type:         "Lab",
		Subject:      "Physics",
		TeacherName:  "Petrova A.A.",
		Place:        "2-204",
		Subgroup:     "2",
	}, got[1])
}

func TestGetStudentSchedule_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewPortalApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetStudentSchedule(context.Background(), "6668")

	var statusErr *api.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Nil(t, got)
}
