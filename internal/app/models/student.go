package models

// Student represents a student whose academic record drives planning.
type Student struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CourseRecord links a student to a course they completed or are currently
// enrolled in.
type CourseRecord struct {
	StudentID  string `json:"studentId" db:"student_id"`
	CourseCode string `json:"courseCode" db:"course_code"`
	// Status is "completed" or "enrolled".
	Status string `json:"status" db:"status"`
}

// Course record statuses.
const (
	RecordCompleted = "completed"
	RecordEnrolled  = "enrolled"
)
