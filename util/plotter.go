package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"timetable-server/models"
)

var weekdayShortLabels = [...]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// PlotLessonLoad renders an HTML bar chart with the number of lessons on every day of the timetable.
func PlotLessonLoad(w io.Writer, t *models.Timetable) error {
	var labels []string
	var counts []opts.BarData
	for _, week := range t.Weeks {
		for _, day := range week.Days {
			labels = append(labels, fmt.Sprintf("%s %s", day.Date.Format(models.DateLayout), weekdayShortLabels[day.WeekdayIndex]))
			counts = append(counts, opts.BarData{Value: len(day.Lessons)})
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Lesson load " + t.GroupName,
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    t.GroupName,
			Subtitle: "Lessons per day",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(labels).
		AddSeries("Lessons", counts,
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(true),
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render lesson load chart: %w", err)
	}
	return nil
}
