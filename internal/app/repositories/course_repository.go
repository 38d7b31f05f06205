package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursegraph/internal/app/models"
)

// Course error types
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this code already exists")
)

// CourseRepository handles database operations for catalog courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, credits, department)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, credits = EXCLUDED.credits, department = EXCLUDED.department
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.Code, course.Name, course.Credits, course.Department).Scan(&course.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByCode retrieves a course by its catalog code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := `
		SELECT id, code, name, credits, department
		FROM courses
		WHERE code = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, code).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Credits,
		&course.Department,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves all catalog courses ordered by code
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, code, name, credits, department
		FROM courses
		ORDER BY code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Credits,
			&course.Department,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// AddPrerequisite records that course requires prerequisite
func (r *CourseRepository) AddPrerequisite(ctx context.Context, courseCode, prerequisiteCode string) error {
	query := `
		INSERT INTO prerequisites (course_code, prerequisite_code)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, courseCode, prerequisiteCode)
	return err
}

// GetAllPrerequisites retrieves every prerequisite edge in the catalog
func (r *CourseRepository) GetAllPrerequisites(ctx context.Context) ([]models.Prerequisite, error) {
	query := `
		SELECT course_code, prerequisite_code
		FROM prerequisites
		ORDER BY course_code, prerequisite_code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []models.Prerequisite
	for rows.Next() {
		var edge models.Prerequisite
		if err := rows.Scan(&edge.CourseCode, &edge.PrerequisiteCode); err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}
