package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursegraph/internal/app/models/dto"
	"github.com/yigit/coursegraph/internal/app/services"
	"github.com/yigit/coursegraph/internal/middleware"
)

// PlannerController handles student-facing planning endpoints
type PlannerController struct {
	plannerService *services.PlannerService
}

// NewPlannerController creates a new PlannerController
func NewPlannerController(plannerService *services.PlannerService) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// GetReadiness scores a student's readiness for a course
// @Summary Get readiness score
// @Description Scores 0-100 how close a student is to taking a course based on direct prerequisites
// @Tags planning
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=planner.ReadinessReport} "Readiness retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/readiness/{code} [get]
func (c *PlannerController) GetReadiness(ctx *gin.Context) {
	report, err := c.plannerService.Readiness(ctx, ctx.Param("id"), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// GetEligibility checks enrollment eligibility for a course
// @Summary Check course eligibility
// @Description Checks whether the full transitive prerequisite chain of a course is completed
// @Tags planning
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=planner.EligibilityReport} "Eligibility retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Prerequisite cycle detected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/eligibility/{code} [get]
func (c *PlannerController) GetEligibility(ctx *gin.Context) {
	report, err := c.plannerService.Eligibility(ctx, ctx.Param("id"), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// CreateSchedule optimizes a multi-semester plan
// @Summary Optimize a schedule
// @Description Assigns the student's remaining required courses across the planning horizon under per-semester caps. Courses that cannot be placed are reported as unscheduled or unreachable, not errors.
// @Tags planning
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.ScheduleRequest true "Required courses and constraints"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Prerequisite cycle detected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/schedule [post]
func (c *PlannerController) CreateSchedule(ctx *gin.Context) {
	body, exists := ctx.Get(middleware.ValidatedBodyKey)
	req, ok := body.(*dto.ScheduleRequest)
	if !exists || !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule request")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	studentID := ctx.Param("id")
	plan, err := c.plannerService.Schedule(ctx, studentID, *req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ScheduleResponse{StudentID: studentID, Plan: plan},
		Timestamp: time.Now(),
	})
}

// GetGraduationPaths explores alternative course orderings
// @Summary Explore graduation paths
// @Description Returns up to k distinct valid orderings of the program's remaining courses
// @Tags planning
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param program query string true "Program name"
// @Param k query int false "Maximum number of paths (default 5)"
// @Success 200 {object} dto.APIResponse{data=dto.GraduationPathsResponse} "Paths retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "Student, program or course not found"
// @Failure 409 {object} dto.ErrorResponse "Prerequisite cycle detected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/graduation-paths [get]
func (c *PlannerController) GetGraduationPaths(ctx *gin.Context) {
	program := ctx.Query("program")
	if program == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Program is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	k := 0
	if raw := ctx.Query("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid k")
			errorDetail = errorDetail.WithDetails("k must be a positive integer")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		k = parsed
	}

	studentID := ctx.Param("id")
	paths, err := c.plannerService.GraduationPaths(ctx, studentID, program, k)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.GraduationPathsResponse{StudentID: studentID, Program: program, Paths: paths},
		Timestamp: time.Now(),
	})
}

// GetProgramPlan builds the recommended sequence for a program
// @Summary Get recommended program sequence
// @Description Groups a program's remaining courses into prerequisite levels; each batch can be taken once the previous batches are done
// @Tags planning
// @Accept json
// @Produce json
// @Param name path string true "Program name"
// @Param studentId query string false "Exclude this student's completed courses"
// @Success 200 {object} dto.APIResponse{data=dto.ProgramPlanResponse} "Plan retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Program or student not found"
// @Failure 409 {object} dto.ErrorResponse "Prerequisite cycle detected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{name}/plan [get]
func (c *PlannerController) GetProgramPlan(ctx *gin.Context) {
	program := ctx.Param("name")
	studentID := ctx.Query("studentId")

	sequence, err := c.plannerService.ProgramPlan(ctx, program, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ProgramPlanResponse{Program: program, StudentID: studentID, Sequence: sequence},
		Timestamp: time.Now(),
	})
}

// RefreshSnapshot reloads the catalog snapshot
// @Summary Refresh catalog snapshot
// @Description Reloads courses, prerequisites and semesters from the configured source and swaps the in-memory graph
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SnapshotRefreshResponse} "Snapshot refreshed successfully"
// @Failure 422 {object} dto.ErrorResponse "Snapshot is malformed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/snapshot/refresh [post]
func (c *PlannerController) RefreshSnapshot(ctx *gin.Context) {
	info, err := c.plannerService.RefreshSnapshot(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SnapshotRefreshResponse{
			Courses:   info.Courses,
			Edges:     info.Edges,
			Semesters: info.Semesters,
			Source:    info.Source,
		},
		Timestamp: time.Now(),
	})
}
