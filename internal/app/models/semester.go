package models

// Semester represents one academic term in the planning horizon.
type Semester struct {
	ID       int64  `json:"id" db:"id"`
	Year     int    `json:"year" db:"year"`
	Term     int    `json:"term" db:"term"`
	Name     string `json:"name" db:"name"`
	Position int    `json:"position" db:"position"`
}
