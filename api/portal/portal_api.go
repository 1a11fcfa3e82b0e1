package portal

import (
	"context"

	"timetable-server/models"
)

// PortalAPI defines the interface for interacting with the university portal timetable API
type PortalAPI interface {
	GetStudentSchedule(ctx context.Context, groupID string) ([]models.RawLesson, error)
}
