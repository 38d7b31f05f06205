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

// Program error types
var (
	ErrProgramNotFound = errors.New("program not found")
)

// ProgramRepository handles database operations for degree programs
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
	}
}

// Create creates a new program
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programs (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, program.Name).Scan(&program.ID)
}

// AddCourse adds a required course to a program
func (r *ProgramRepository) AddCourse(ctx context.Context, programID int64, courseCode string) error {
	query := `
		INSERT INTO program_courses (program_id, course_code)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, programID, courseCode)
	return err
}

// GetRequirement retrieves a program's requirement set by name
func (r *ProgramRepository) GetRequirement(ctx context.Context, name string) (planner.ProgramRequirement, error) {
	req := planner.ProgramRequirement{Name: name}

	var programID int64
	err := r.db.QueryRow(ctx, `SELECT id FROM programs WHERE name = $1`, name).Scan(&programID)
	if errors.Is(err, pgx.ErrNoRows) {
		return req, ErrProgramNotFound
	}
	if err != nil {
		return req, fmt.Errorf("error retrieving program: %w", err)
	}

	query := `
		SELECT course_code
		FROM program_courses
		WHERE program_id = $1
		ORDER BY course_code
	`

	rows, err := r.db.Query(ctx, query, programID)
	if err != nil {
		return req, err
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return req, err
		}
		req.Courses = append(req.Courses, code)
	}

	return req, rows.Err()
}
