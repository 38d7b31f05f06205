package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursegraph/internal/app/models"
	"github.com/yigit/coursegraph/internal/planner"
)

// Semester error types
var (
	ErrSemesterNotFound = errors.New("semester not found")
)

// SemesterRepository handles database operations for semesters and offerings
type SemesterRepository struct {
	db *pgxpool.Pool
}

// NewSemesterRepository creates a new semester repository
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{
		db: db,
	}
}

// Create creates a new semester
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	query := `
		INSERT INTO semesters (year, term, name, position)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (year, term) DO UPDATE SET name = EXCLUDED.name, position = EXCLUDED.position
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, semester.Year, semester.Term, semester.Name, semester.Position).Scan(&semester.ID)
}

// AddOffering records that a course is taught in a semester
func (r *SemesterRepository) AddOffering(ctx context.Context, semesterID int64, courseCode string) error {
	query := `
		INSERT INTO offerings (semester_id, course_code)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, semesterID, courseCode)
	return err
}

// GetPlanningHorizon retrieves every semester with its offered courses,
// ordered by position
func (r *SemesterRepository) GetPlanningHorizon(ctx context.Context) ([]planner.SemesterOffering, error) {
	query := `
		SELECT s.id, s.year, s.term, s.name, s.position
		FROM semesters s
		ORDER BY s.position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []planner.SemesterOffering
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		var sem planner.SemesterOffering
		if err := rows.Scan(&id, &sem.Year, &sem.Term, &sem.Name, &sem.Position); err != nil {
			return nil, err
		}
		semesters = append(semesters, sem)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		courses, err := r.getOfferedCourses(ctx, id)
		if err != nil {
			return nil, err
		}
		semesters[i].Courses = courses
	}

	return semesters, nil
}

func (r *SemesterRepository) getOfferedCourses(ctx context.Context, semesterID int64) ([]string, error) {
	query := `
		SELECT course_code
		FROM offerings
		WHERE semester_id = $1
		ORDER BY course_code
	`

	rows, err := r.db.Query(ctx, query, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		courses = append(courses, code)
	}

	return courses, rows.Err()
}
