package services

import (
	"context"

	"github.com/yigit/coursegraph/internal/app/models/dto"
	"github.com/yigit/coursegraph/internal/planner"
)

// AnalysisService runs catalog-wide structural analyses.
type AnalysisService struct {
	snapshots *SnapshotProvider
}

// NewAnalysisService creates a new analysis service instance
func NewAnalysisService(snapshots *SnapshotProvider) *AnalysisService {
	return &AnalysisService{snapshots: snapshots}
}

// Bottlenecks ranks the gateway courses of the catalog
func (s *AnalysisService) Bottlenecks(ctx context.Context, opts planner.BottleneckOptions) (dto.BottlenecksResponse, error) {
	graph, err := s.snapshots.Graph(ctx)
	if err != nil {
		return dto.BottlenecksResponse{}, err
	}

	analyzer := planner.NewBottleneckAnalyzer(graph, planner.NewReachabilityIndex(graph))
	ranked, err := analyzer.Rank(opts)
	if err != nil {
		return dto.BottlenecksResponse{}, err
	}
	if ranked == nil {
		ranked = []planner.BottleneckCourse{}
	}
	return dto.BottlenecksResponse{Bottlenecks: ranked}, nil
}

// Difficulty measures every course's difficulty and impact, optionally
// filtered by department
func (s *AnalysisService) Difficulty(ctx context.Context, department string) (dto.DifficultyResponse, error) {
	graph, err := s.snapshots.Graph(ctx)
	if err != nil {
		return dto.DifficultyResponse{}, err
	}

	analyzer := planner.NewDifficultyAnalyzer(graph, planner.NewReachabilityIndex(graph))
	metrics, err := analyzer.Analyze(department)
	if err != nil {
		return dto.DifficultyResponse{}, err
	}
	if metrics == nil {
		metrics = []planner.CourseMetrics{}
	}
	return dto.DifficultyResponse{Courses: metrics}, nil
}
