package models

// Course represents a catalog course node in the prerequisite graph.
type Course struct {
	ID         int64  `json:"id" db:"id"`
	Code       string `json:"code" db:"code"`
	Name       string `json:"name" db:"name"`
	Credits    int    `json:"credits" db:"credits"`
	Department string `json:"department" db:"department"`
}

// Prerequisite represents one directed edge: CourseCode requires
// PrerequisiteCode before enrollment.
type Prerequisite struct {
	CourseCode       string `json:"courseCode" db:"course_code"`
	PrerequisiteCode string `json:"prerequisiteCode" db:"prerequisite_code"`
}
