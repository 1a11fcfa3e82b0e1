package portal

import (
	"context"
	"log"

	"timetable-server/models"
	"timetable-server/util"
)

// PortalApiClientMock serves the schedule stored in a JSON fixture for every group
type PortalApiClientMock struct {
	schedulePath string
}

// NewPortalApiClientMock creates a new instance of PortalApiClientMock
func NewPortalApiClientMock(schedulePath string) *PortalApiClientMock {
	return &PortalApiClientMock{schedulePath: schedulePath}
}

// GetStudentSchedule reads the fixture, ignoring groupID
func (c *PortalApiClientMock) GetStudentSchedule(ctx context.Context, groupID string) ([]models.RawLesson, error) {
	response, err := util.ReadRawLessonsFromJSON(c.schedulePath)
	if err != nil {
		log.Printf("[PortalApiClientMock] Could not read student schedule for group %s: %v", groupID, err)
		return nil, err
	}
	return response, nil
}
