package repositories

import (
	"context"

	"github.com/yigit/coursegraph/internal/planner"
)

// SnapshotSource loads a consistent catalog snapshot for the planning engine.
type SnapshotSource interface {
	LoadSnapshot(ctx context.Context) (planner.Snapshot, error)
	Name() string
}

// PostgresSnapshotSource assembles a snapshot from the relational tables.
type PostgresSnapshotSource struct {
	courses   *CourseRepository
	semesters *SemesterRepository
}

// NewPostgresSnapshotSource creates a snapshot source over the repositories
func NewPostgresSnapshotSource(courses *CourseRepository, semesters *SemesterRepository) *PostgresSnapshotSource {
	return &PostgresSnapshotSource{courses: courses, semesters: semesters}
}

// Name identifies the source in logs and admin responses
func (s *PostgresSnapshotSource) Name() string {
	return "postgres"
}

// LoadSnapshot reads courses, prerequisite edges and the semester horizon
func (s *PostgresSnapshotSource) LoadSnapshot(ctx context.Context) (planner.Snapshot, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return planner.Snapshot{}, err
	}
	edges, err := s.courses.GetAllPrerequisites(ctx)
	if err != nil {
		return planner.Snapshot{}, err
	}
	semesters, err := s.semesters.GetPlanningHorizon(ctx)
	if err != nil {
		return planner.Snapshot{}, err
	}

	snap := planner.Snapshot{Semesters: semesters}
	for _, c := range courses {
		snap.Courses = append(snap.Courses, planner.Course{
			Code:       c.Code,
			Name:       c.Name,
			Credits:    c.Credits,
			Department: c.Department,
		})
	}
	for _, e := range edges {
		snap.Edges = append(snap.Edges, planner.PrerequisiteEdge{
			From: e.CourseCode,
			To:   e.PrerequisiteCode,
		})
	}

	return snap, nil
}
