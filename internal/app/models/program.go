package models

// Program represents a degree program and its required course set.
type Program struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
