package models

// Week is a non-empty run of Days inside one Monday-Sunday window.
type Week struct {
	Days []Day `json:"days"`
}

// Start returns the date of the first day in the week.
func (w Week) Start() string {
	if len(w.Days) == 0 {
		return ""
	}
	return w.Days[0].Date.Format(DateLayout)
}
