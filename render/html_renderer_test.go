package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-server/models"
)

func TestHTMLRenderer_Render(t *testing.T) {
	renderer, err := NewHTMLRenderer()
	require.NoError(t, err)

	weeks := []models.Week{
		{Days: []models.Day{
			{
				Date:         time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
				WeekdayIndex: 1,
				Lessons: []models.Lesson{
					{Position: 1, Title: "Lecture Algebra, subgroup 1", Teacher: "Ivanov I.I.", Place: "1-101"},
				},
			},
			{
				Date:         time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC),
				WeekdayIndex: 2,
				Lessons: []models.Lesson{
					{Position: 2, Title: "Lab <Physics>", Teacher: "Petrova A.A.", Place: "2-204"},
				},
			},
		}},
		{Days: []models.Day{
			{Date: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), WeekdayIndex: 1},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, "ЦСб-231", weeks))

	html := buf.String()
	assert.Contains(t, html, "<h1>ЦСб-231</h1>")
	assert.Contains(t, html, "Week 1: 2025-01-06")
	assert.Contains(t, html, "Week 2: 2025-01-13")
	assert.Contains(t, html, "Monday, 2025-01-06")
	assert.Contains(t, html, "Tuesday, 2025-01-07")
	assert.Contains(t, html, "Lecture Algebra, subgroup 1")
	assert.Contains(t, html, "Lab &lt;Physics&gt;")
	assert.NotContains(t, html, "No lessons scheduled.")
}

func TestHTMLRenderer_RenderNoWeeks(t *testing.T) {
	renderer, err := NewHTMLRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, "CSb-231", nil))

	assert.Contains(t, buf.String(), "No lessons scheduled.")
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Monday", WeekdayLabel(1))
	assert.Equal(t, "Sunday", WeekdayLabel(7))
	assert.Equal(t, "", WeekdayLabel(0))
	assert.Equal(t, "", WeekdayLabel(8))
}
