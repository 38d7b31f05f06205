package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/coursegraph/internal/app/models/dto"
	"github.com/yigit/coursegraph/internal/app/repositories"
	"github.com/yigit/coursegraph/internal/pkg/apperrors"
	"github.com/yigit/coursegraph/internal/planner"
)

// PlannerService runs student-facing planning computations: readiness,
// eligibility, schedule optimization and graduation path exploration.
type PlannerService struct {
	snapshots   *SnapshotProvider
	studentRepo *repositories.StudentRepository
	programRepo *repositories.ProgramRepository
	defaults    planner.Constraints
}

// NewPlannerService creates a new planner service instance
func NewPlannerService(
	snapshots *SnapshotProvider,
	studentRepo *repositories.StudentRepository,
	programRepo *repositories.ProgramRepository,
	defaults planner.Constraints,
) *PlannerService {
	return &PlannerService{
		snapshots:   snapshots,
		studentRepo: studentRepo,
		programRepo: programRepo,
		defaults:    defaults,
	}
}

// Readiness scores how close a student is to taking a course
func (s *PlannerService) Readiness(ctx context.Context, studentID, courseCode string) (planner.ReadinessReport, error) {
	graph, student, err := s.load(ctx, studentID)
	if err != nil {
		return planner.ReadinessReport{}, err
	}

	scorer := planner.NewReadinessScorer(graph, planner.NewReachabilityIndex(graph))
	return scorer.Score(student, courseCode)
}

// Eligibility checks the full transitive prerequisite chain of a course
// against a student's completions
func (s *PlannerService) Eligibility(ctx context.Context, studentID, courseCode string) (planner.EligibilityReport, error) {
	graph, student, err := s.load(ctx, studentID)
	if err != nil {
		return planner.EligibilityReport{}, err
	}

	scorer := planner.NewReadinessScorer(graph, planner.NewReachabilityIndex(graph))
	return scorer.Eligibility(student, courseCode)
}

// Schedule optimizes the student's remaining required courses across the
// planning horizon. Request constraints override configured defaults
// field by field.
func (s *PlannerService) Schedule(ctx context.Context, studentID string, req dto.ScheduleRequest) (planner.SchedulePlan, error) {
	graph, student, err := s.load(ctx, studentID)
	if err != nil {
		return planner.SchedulePlan{}, err
	}

	semesters, err := s.snapshots.Semesters(ctx)
	if err != nil {
		return planner.SchedulePlan{}, err
	}

	cons := req.Constraints
	if cons.MaxCoursesPerSemester <= 0 {
		cons.MaxCoursesPerSemester = s.defaults.MaxCoursesPerSemester
	}
	if cons.MaxCreditsPerSemester <= 0 {
		cons.MaxCreditsPerSemester = s.defaults.MaxCreditsPerSemester
	}
	if cons.TargetSemesters <= 0 {
		cons.TargetSemesters = s.defaults.TargetSemesters
	}

	optimizer := planner.NewScheduleOptimizer(graph, planner.NewReachabilityIndex(graph))
	return optimizer.Optimize(student, req.RequiredCourses, semesters, cons)
}

// GraduationPaths explores up to k alternative course orderings toward a
// program's requirements
func (s *PlannerService) GraduationPaths(ctx context.Context, studentID, program string, k int) ([][]string, error) {
	graph, student, err := s.load(ctx, studentID)
	if err != nil {
		return nil, err
	}

	requirement, err := s.requirement(ctx, program)
	if err != nil {
		return nil, err
	}

	explorer := planner.NewPathExplorer(graph, planner.NewReachabilityIndex(graph))
	paths, err := explorer.Explore(student, requirement.Courses, k)
	if err != nil {
		return nil, err
	}
	if paths == nil {
		paths = [][]string{}
	}
	return paths, nil
}

// ProgramPlan builds the recommended level-by-level sequence for a program.
// With a student ID, completed courses are excluded; without one the full
// requirement set is sequenced.
func (s *PlannerService) ProgramPlan(ctx context.Context, program, studentID string) ([][]string, error) {
	requirement, err := s.requirement(ctx, program)
	if err != nil {
		return nil, err
	}

	var student planner.StudentState
	graph, err := s.snapshots.Graph(ctx)
	if err != nil {
		return nil, err
	}
	if studentID != "" {
		graph, student, err = s.load(ctx, studentID)
		if err != nil {
			return nil, err
		}
	}

	explorer := planner.NewPathExplorer(graph, planner.NewReachabilityIndex(graph))
	seq, err := explorer.RecommendedSequence(student, requirement.Courses)
	if err != nil {
		return nil, err
	}
	if seq == nil {
		seq = [][]string{}
	}
	return seq, nil
}

// RefreshSnapshot reloads the catalog snapshot on demand
func (s *PlannerService) RefreshSnapshot(ctx context.Context) (SnapshotInfo, error) {
	return s.snapshots.Refresh(ctx)
}

// load fetches the graph and the student's planning state together
func (s *PlannerService) load(ctx context.Context, studentID string) (*planner.Graph, planner.StudentState, error) {
	graph, err := s.snapshots.Graph(ctx)
	if err != nil {
		return nil, planner.StudentState{}, err
	}

	student, err := s.studentRepo.GetState(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, planner.StudentState{}, apperrors.NewCustomError(apperrors.ErrStudentNotFound, fmt.Sprintf("student not found: %s", studentID))
		}
		return nil, planner.StudentState{}, err
	}

	return graph, student, nil
}

func (s *PlannerService) requirement(ctx context.Context, program string) (planner.ProgramRequirement, error) {
	requirement, err := s.programRepo.GetRequirement(ctx, program)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return requirement, apperrors.NewCustomError(apperrors.ErrProgramNotFound, fmt.Sprintf("program not found: %s", program))
		}
		return requirement, err
	}
	return requirement, nil
}
