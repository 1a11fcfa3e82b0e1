package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"timetable-server/models"
)

// TimetableRefresherService periodically rebuilds the timetables of the configured groups.
type TimetableRefresherService struct {
	timetableService *TimetableService
	groups           []models.Group
	dispatcher       *cron.Cron
}

// NewTimetableRefresherService constructs a new refresher with dependencies.
func NewTimetableRefresherService(
	timetableService *TimetableService,
	groups []models.Group,
) *TimetableRefresherService {
	return &TimetableRefresherService{
		timetableService: timetableService,
		groups:           groups,
		dispatcher: cron.New(
			cron.WithChain(cron.Recover(cron.DefaultLogger)),
		),
	}
}

// Start schedules RefreshAll with a cron spec (e.g. "@every 6h") and starts the dispatcher.
func (tr *TimetableRefresherService) Start(spec string) error {
	_, err := tr.dispatcher.AddFunc(spec, func() {
		log.Println("[TimetableRefresherService] Running periodic timetable refresher job.")
		if err := tr.RefreshAll(context.Background()); err != nil {
			log.Printf("[TimetableRefresherService] RefreshAll returned error: %v", err)
		} else {
			log.Println("[TimetableRefresherService] RefreshAll completed successfully.")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	tr.dispatcher.Start()
	log.Printf("[TimetableRefresherService] Scheduled refresh %q for %d groups", spec, len(tr.groups))
	return nil
}

// Stop stops the dispatcher; the returned context is done once a running job finishes.
func (tr *TimetableRefresherService) Stop() context.Context {
	return tr.dispatcher.Stop()
}

// RefreshAll rebuilds every group. A failing group does not stop the others.
func (tr *TimetableRefresherService) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, group := range tr.groups {
		if _, err := tr.timetableService.BuildTimetable(ctx, group); err != nil {
			log.Printf("[TimetableRefresherService] Refresh failed for group_id=%s: %v", group.ID, err)
			errs = append(errs, err)
			continue
		}
		log.Printf("[TimetableRefresherService] Refreshed group_id=%s", group.ID)
	}
	return errors.Join(errs...)
}
