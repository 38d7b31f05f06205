package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository   *CourseRepository
	SemesterRepository *SemesterRepository
	StudentRepository  *StudentRepository
	ProgramRepository  *ProgramRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:   NewCourseRepository(db),
		SemesterRepository: NewSemesterRepository(db),
		StudentRepository:  NewStudentRepository(db),
		ProgramRepository:  NewProgramRepository(db),
	}
}
