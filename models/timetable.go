package models

import "time"

// Group identifies a student group on the timetable portal.
type Group struct {
	ID   string `json:"group_id"`
	Name string `json:"group_name"`
}

// Timetable is everything a renderer needs for one group.
type Timetable struct {
	GroupID     string    `json:"group_id"`
	GroupName   string    `json:"group_name"`
	GeneratedAt time.Time `json:"generated_at"`
	Weeks       []Week    `json:"weeks"`
}
