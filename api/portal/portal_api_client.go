package portal

import (
	"context"
	"fmt"
	"net/url"

	"timetable-server/api"
	"timetable-server/models"
)

const STUDENT_SCHEDULE_ENDPOINT = "/student_schedule"
const GROUP_ID_QUERY_ARG = "group_id"

// PortalApiClient embeds the common HTTPClient
type PortalApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewPortalApiClient creates a new instance of PortalApiClient
func NewPortalApiClient(httpClient *api.HTTPClient) *PortalApiClient {
	return &PortalApiClient{
		HTTPClient: httpClient,
	}
}

// GetStudentSchedule retrieves the flat list of lessons for a student group
func (c *PortalApiClient) GetStudentSchedule(ctx context.Context, groupID string) ([]models.RawLesson, error) {
	var response []models.RawLesson
	query := url.Values{GROUP_ID_QUERY_ARG: {groupID}}
	if err := c.Request(ctx, "GET", STUDENT_SCHEDULE_ENDPOINT, query, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to get schedule for group %s: %w", groupID, err)
	}
	return response, nil
}
