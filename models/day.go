package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of lesson dates.
const DateLayout = "2006-01-02"

// Day holds all lessons of one calendar date.
type Day struct {
	Date         time.Time `json:"date"`
	WeekdayIndex int       `json:"weekday_index"` // 1 = Monday ... 7 = Sunday
	Lessons      []Lesson  `json:"lessons"`
}

// MarshalJSON writes Date as "YYYY-MM-DD" instead of RFC 3339.
func (d Day) MarshalJSON() ([]byte, error) {
	type Alias Day
	return json.Marshal(&struct {
		Date string `json:"date"`
		Alias
	}{
		Date:  d.Date.Format(DateLayout),
		Alias: Alias(d),
	})
}

// UnmarshalJSON reads the "YYYY-MM-DD" date written by MarshalJSON.
func (d *Day) UnmarshalJSON(data []byte) error {
	type Alias Day
	aux := &struct {
		Date string `json:"date"`
		*Alias
	}{
		Alias: (*Alias)(d),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	date, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		return fmt.Errorf("invalid day date %q: %w", aux.Date, err)
	}
	d.Date = date
	return nil
}
