package models

// Lesson is a display-ready lesson built from a RawLesson.
type Lesson struct {
	Position uint8  `json:"position"`
	Title    string `json:"title"`
	Teacher  string `json:"teacher"`
	Place    string `json:"place"`
}
