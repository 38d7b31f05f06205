package services

import (
	"context"

	"github.com/yigit/coursegraph/internal/app/models/dto"
	"github.com/yigit/coursegraph/internal/planner"
)

// CatalogService answers structural queries over the prerequisite graph.
type CatalogService struct {
	snapshots *SnapshotProvider
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(snapshots *SnapshotProvider) *CatalogService {
	return &CatalogService{snapshots: snapshots}
}

// ListCourses returns every catalog course ordered by code
func (s *CatalogService) ListCourses(ctx context.Context) (dto.CourseListResponse, error) {
	graph, err := s.snapshots.Graph(ctx)
	if err != nil {
		return dto.CourseListResponse{}, err
	}

	resp := dto.CourseListResponse{Courses: []dto.CourseResponse{}}
	for _, code := range graph.Codes() {
		course, _ := graph.Course(code)
		resp.Courses = append(resp.Courses, dto.CourseResponse{
			Code:       course.Code,
			Name:       course.Name,
			Credits:    graph.Credits(code),
			Department: course.Department,
		})
	}
	resp.Total = len(resp.Courses)
	return resp, nil
}

// GetCourse returns one catalog course by code
func (s *CatalogService) GetCourse(ctx context.Context, code string) (dto.CourseResponse, error) {
	graph, err := s.snapshots.Graph(ctx)
	if err != nil {
		return dto.CourseResponse{}, err
	}

	course, err := graph.Course(code)
	if err != nil {
		return dto.CourseResponse{}, err
	}
	return dto.CourseResponse{
		Code:       course.Code,
		Name:       course.Name,
		Credits:    graph.Credits(code),
		Department: course.Department,
	}, nil
}

// GetPrerequisites returns direct or transitive prerequisites of a course.
// maxDepth only applies to transitive queries; zero means unbounded.
func (s *CatalogService) GetPrerequisites(ctx context.Context, code string, transitive bool, maxDepth int) (dto.PrerequisitesResponse, error) {
	graph, err := s.snapshots.Graph(ctx)
	if err != nil {
		return dto.PrerequisitesResponse{}, err
	}

	if !transitive {
		if !graph.Has(code) {
			return dto.PrerequisitesResponse{}, planner.NewCourseNotFound(code)
		}
		return dto.PrerequisitesResponse{
			Course:        code,
			Prerequisites: graph.DirectPrerequisites(code),
		}, nil
	}

	reach := planner.NewReachabilityIndex(graph)
	res, err := reach.TransitivePrerequisites(code, maxDepth)
	if err != nil {
		return dto.PrerequisitesResponse{}, err
	}
	return dto.PrerequisitesResponse{
		Course:        code,
		Prerequisites: res.Courses,
		Transitive:    true,
		ChainDepth:    res.ChainDepth,
		Partial:       res.Partial,
	}, nil
}

// GetDependents returns the courses a course unlocks, directly or
// transitively. maxDepth only applies to transitive queries; zero means
// unbounded.
func (s *CatalogService) GetDependents(ctx context.Context, code string, transitive bool, maxDepth int) (dto.DependentsResponse, error) {
	graph, err := s.snapshots.Graph(ctx)
	if err != nil {
		return dto.DependentsResponse{}, err
	}

	if !transitive {
		if !graph.Has(code) {
			return dto.DependentsResponse{}, planner.NewCourseNotFound(code)
		}
		return dto.DependentsResponse{
			Course:     code,
			Dependents: graph.DirectDependents(code),
		}, nil
	}

	reach := planner.NewReachabilityIndex(graph)
	res, err := reach.TransitiveDependents(code, maxDepth)
	if err != nil {
		return dto.DependentsResponse{}, err
	}
	return dto.DependentsResponse{
		Course:     code,
		Dependents: res.Courses,
		Transitive: true,
		Partial:    res.Partial,
	}, nil
}

// DetectCycles reports every prerequisite cycle in the catalog
func (s *CatalogService) DetectCycles(ctx context.Context) (dto.CyclesResponse, error) {
	graph, err := s.snapshots.Graph(ctx)
	if err != nil {
		return dto.CyclesResponse{}, err
	}

	cycles := graph.DetectCycles()
	if cycles == nil {
		cycles = [][]string{}
	}
	return dto.CyclesResponse{Cycles: cycles, Count: len(cycles)}, nil
}
