package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursegraph/internal/app/models"
	"github.com/yigit/coursegraph/internal/planner"
)

// Student error types
var (
	ErrStudentNotFound = errors.New("student not found")
)

// StudentRepository handles database operations for students and their
// academic records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
	`

	_, err := r.db.Exec(ctx, query, student.ID, student.Name)
	return err
}

// AddRecord records a completed or enrolled course for a student
func (r *StudentRepository) AddRecord(ctx context.Context, record models.CourseRecord) error {
	query := `
		INSERT INTO course_records (student_id, course_code, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (student_id, course_code) DO UPDATE SET status = EXCLUDED.status
	`

	_, err := r.db.Exec(ctx, query, record.StudentID, record.CourseCode, record.Status)
	return err
}

// GetState retrieves a student's planning state: identity plus completed and
// enrolled course codes
func (r *StudentRepository) GetState(ctx context.Context, studentID string) (planner.StudentState, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM students WHERE id = $1`, studentID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return planner.StudentState{}, ErrStudentNotFound
	}
	if err != nil {
		return planner.StudentState{}, fmt.Errorf("error retrieving student: %w", err)
	}

	query := `
		SELECT course_code, status
		FROM course_records
		WHERE student_id = $1
		ORDER BY course_code
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return planner.StudentState{}, err
	}
	defer rows.Close()

	state := planner.StudentState{ID: studentID}
	for rows.Next() {
		var code, status string
		if err := rows.Scan(&code, &status); err != nil {
			return planner.StudentState{}, err
		}
		switch status {
		case models.RecordCompleted:
			state.Completed = append(state.Completed, code)
		case models.RecordEnrolled:
			state.Enrolled = append(state.Enrolled, code)
		}
	}

	return state, rows.Err()
}
