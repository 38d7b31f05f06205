package dto

import "github.com/yigit/coursegraph/internal/planner"

// CourseResponse represents basic course information
type CourseResponse struct {
	Code       string `json:"code" example:"CS225"`
	Name       string `json:"name" example:"Data Structures"`
	Credits    int    `json:"credits" example:"4"`
	Department string `json:"department,omitempty" example:"CS"`
}

// CourseListResponse represents the full catalog
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total" example:"120"`
}

// PrerequisitesResponse represents the prerequisites of one course,
// direct or transitive depending on the query
type PrerequisitesResponse struct {
	Course        string   `json:"course" example:"CS374"`
	Prerequisites []string `json:"prerequisites"`
	Transitive    bool     `json:"transitive"`
	ChainDepth    int      `json:"chainDepth,omitempty"`
	Partial       bool     `json:"partial,omitempty"`
}

// DependentsResponse represents the courses unlocked by one course
type DependentsResponse struct {
	Course     string   `json:"course" example:"CS125"`
	Dependents []string `json:"dependents"`
	Transitive bool     `json:"transitive"`
	Partial    bool     `json:"partial,omitempty"`
}

// CyclesResponse reports prerequisite cycles found in the catalog
type CyclesResponse struct {
	Cycles [][]string `json:"cycles"`
	Count  int        `json:"count" example:"0"`
}

// BottlenecksResponse ranks the gateway courses of the catalog
type BottlenecksResponse struct {
	Bottlenecks []planner.BottleneckCourse `json:"bottlenecks"`
}

// DifficultyResponse lists per-course difficulty and impact metrics
type DifficultyResponse struct {
	Courses []planner.CourseMetrics `json:"courses"`
}

// ScheduleRequest asks for an optimized multi-semester plan
type ScheduleRequest struct {
	RequiredCourses []string            `json:"requiredCourses" binding:"required,min=1" validate:"required,min=1"`
	Constraints     planner.Constraints `json:"constraints"`
}

// ScheduleResponse wraps the optimizer's plan
type ScheduleResponse struct {
	StudentID string               `json:"studentId" example:"stu-42"`
	Plan      planner.SchedulePlan `json:"plan"`
}

// GraduationPathsResponse lists alternative course orderings toward a program
type GraduationPathsResponse struct {
	StudentID string     `json:"studentId" example:"stu-42"`
	Program   string     `json:"program" example:"CS-BS"`
	Paths     [][]string `json:"paths"`
}

// ProgramPlanResponse is the recommended level-by-level sequence for a program
type ProgramPlanResponse struct {
	Program   string     `json:"program" example:"CS-BS"`
	StudentID string     `json:"studentId,omitempty" example:"stu-42"`
	Sequence  [][]string `json:"sequence"`
}

// SnapshotRefreshResponse reports the result of an admin snapshot reload
type SnapshotRefreshResponse struct {
	Courses   int    `json:"courses" example:"120"`
	Edges     int    `json:"edges" example:"240"`
	Semesters int    `json:"semesters" example:"8"`
	Source    string `json:"source" example:"postgres"`
}
