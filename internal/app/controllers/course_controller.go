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

// CourseController handles catalog and prerequisite graph queries
type CourseController struct {
	catalogService *services.CatalogService
}

// NewCourseController creates a new CourseController
func NewCourseController(catalogService *services.CatalogService) *CourseController {
	return &CourseController{
		catalogService: catalogService,
	}
}

// GetAllCourses retrieves the full course catalog
// @Summary Get all courses
// @Description Retrieves every catalog course ordered by course code
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.catalogService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCourse retrieves a single course
// @Summary Get a course
// @Description Retrieves one catalog course by its code
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.catalogService.GetCourse(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetPrerequisites retrieves the prerequisites of a course
// @Summary Get course prerequisites
// @Description Retrieves direct prerequisites, or the transitive chain when transitive=true. maxDepth bounds transitive traversal; 0 means unbounded.
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code"
// @Param transitive query bool false "Follow the full prerequisite chain"
// @Param maxDepth query int false "Depth bound for transitive queries"
// @Success 200 {object} dto.APIResponse{data=dto.PrerequisitesResponse} "Prerequisites retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Prerequisite cycle detected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code}/prerequisites [get]
func (c *CourseController) GetPrerequisites(ctx *gin.Context) {
	code := ctx.Param("code")
	transitive := ctx.Query("transitive") == "true"

	maxDepth, ok := parseMaxDepth(ctx)
	if !ok {
		return
	}

	prereqs, err := c.catalogService.GetPrerequisites(ctx, code, transitive, maxDepth)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      prereqs,
		Timestamp: time.Now(),
	})
}

// GetDependents retrieves the courses a course unlocks
// @Summary Get course dependents
// @Description Retrieves the courses that require this course, directly or transitively
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code"
// @Param transitive query bool false "Follow the full dependent chain"
// @Param maxDepth query int false "Depth bound for transitive queries"
// @Success 200 {object} dto.APIResponse{data=dto.DependentsResponse} "Dependents retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Prerequisite cycle detected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code}/dependents [get]
func (c *CourseController) GetDependents(ctx *gin.Context) {
	code := ctx.Param("code")
	transitive := ctx.Query("transitive") == "true"

	maxDepth, ok := parseMaxDepth(ctx)
	if !ok {
		return
	}

	dependents, err := c.catalogService.GetDependents(ctx, code, transitive, maxDepth)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dependents,
		Timestamp: time.Now(),
	})
}

// parseMaxDepth reads the optional maxDepth query parameter, writing a 400
// response when it is not a non-negative integer
func parseMaxDepth(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("maxDepth")
	if raw == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid maxDepth")
		errorDetail = errorDetail.WithDetails("maxDepth must be a non-negative integer")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return parsed, true
}

// GetCycles reports prerequisite cycles in the catalog
// @Summary Detect prerequisite cycles
// @Description Lists every prerequisite cycle in the catalog; an empty list means the graph is valid
// @Tags graph
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CyclesResponse} "Cycles retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /graph/cycles [get]
func (c *CourseController) GetCycles(ctx *gin.Context) {
	cycles, err := c.catalogService.DetectCycles(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      cycles,
		Timestamp: time.Now(),
	})
}
