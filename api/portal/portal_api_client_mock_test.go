package portal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-server/util"
)

func TestPortalApiClientMock_GetStudentSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "student_schedule.json")
	require.NoError(t, os.WriteFile(path, []byte(scheduleJSON), 0644))

	expected, err := util.ReadRawLessonsFromJSON(path)
	require.NoError(t, err)

	got, err := NewPortalApiClientMock(path).GetStudentSchedule(context.Background(), "any")

	require.NoError(t, err)
	assert.Equal(t, expected, got, "Responses dont match")
}

func TestPortalApiClientMock_MissingFixture(t *testing.T) {
	got, err := NewPortalApiClientMock(filepath.Join(t.TempDir(), "missing.json")).GetStudentSchedule(context.Background(), "any")

	assert.Error(t, err)
	assert.Nil(t, got)
}
