package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"timetable-server/api/portal"
	"timetable-server/dao/redis"
	"timetable-server/models"
	"timetable-server/schedule"
)

// FetchError wraps a failure of the remote timetable portal.
type FetchError struct {
	GroupID string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch schedule for group %s: %v", e.GroupID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type TimetableService struct {
	timetableDao *redis.RedisTimetableDAO
	portalAPI    portal.PortalAPI
	now          func() time.Time
}

// NewTimetableService constructs a new TimetableService with Redis dependency injection.
func NewTimetableService(
	timetableDao *redis.RedisTimetableDAO,
	portalAPI portal.PortalAPI) *TimetableService {

	return &TimetableService{
		timetableDao: timetableDao,
		portalAPI:    portalAPI,
		now:          time.Now,
	}
}

// BuildTimetable fetches the raw lessons of a group and groups them into weeks.
// The result is also stored as the group's debug dump; a failed dump is only logged.
func (ts *TimetableService) BuildTimetable(ctx context.Context, group models.Group) (*models.Timetable, error) {
	log.Printf("[TimetableService] Fetching schedule for group_id=%s", group.ID)
	raw, err := ts.portalAPI.GetStudentSchedule(ctx, group.ID)
	if err != nil {
		return nil, &FetchError{GroupID: group.ID, Err: err}
	}

	weeks, err := schedule.Build(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to build timetable for group %s: %w", group.ID, err)
	}

	t := &models.Timetable{
		GroupID:     group.ID,
		GroupName:   group.Name,
		GeneratedAt: ts.now().UTC(),
		Weeks:       weeks,
	}
	log.Printf("[TimetableService] Built timetable for group_id=%s: %d records, %d weeks", group.ID, len(raw), len(weeks))

	if err := ts.timetableDao.SaveDump(t); err != nil {
		log.Printf("[TimetableService] Failed to store dump for group_id=%s: %v", group.ID, err)
	}

	return t, nil
}

// GetDump returns the last timetable built for a group.
func (ts *TimetableService) GetDump(groupID string) (*models.Timetable, error) {
	return ts.timetableDao.GetDump(groupID)
}

// ListDumpedGroupIDs returns the groups with a stored dump.
func (ts *TimetableService) ListDumpedGroupIDs() ([]string, error) {
	return ts.timetableDao.ListDumpedGroupIDs()
}
