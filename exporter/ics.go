package exporter

import (
	"fmt"
	"io"

	ics "github.com/arran4/golang-ical"

	"timetable-server/models"
)

const PRODUCT_ID = "-//timetable-server//Timetable Export//EN"

// GenerateICS writes one all-day event per lesson of the timetable to w.
// The portal does not publish lesson times, so events carry the lesson position in their summary.
func GenerateICS(t *models.Timetable, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(PRODUCT_ID)

	for _, week := range t.Weeks {
		for _, day := range week.Days {
			dateStr := day.Date.Format(models.DateLayout)
			for i, lesson := range day.Lessons {
				event := cal.AddEvent(fmt.Sprintf("%s-%s-%d", t.GroupID, dateStr, i))
				event.SetDtStampTime(t.GeneratedAt)
				event.SetAllDayStartAt(day.Date)
				event.SetAllDayEndAt(day.Date.AddDate(0, 0, 1))
				event.SetSummary(fmt.Sprintf("%d. %s", lesson.Position, lesson.Title))
				event.SetLocation(lesson.Place)
				event.SetDescription(fmt.Sprintf("Teacher: %s\nGroup: %s", lesson.Teacher, t.GroupName))
			}
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}
