package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursegraph/internal/app/models/dto"
	"github.com/yigit/coursegraph/internal/app/services"
	"github.com/yigit/coursegraph/internal/middleware"
	"github.com/yigit/coursegraph/internal/planner"
)

// AnalysisController handles catalog-wide structural analyses
type AnalysisController struct {
	analysisService *services.AnalysisService
}

// NewAnalysisController creates a new AnalysisController
func NewAnalysisController(analysisService *services.AnalysisService) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
	}
}

// GetBottlenecks ranks gateway courses
// @Summary Rank bottleneck courses
// @Description Ranks courses that many others wait on, ordered by unlock count
// @Tags analysis
// @Accept json
// @Produce json
// @Param minDependents query int false "Minimum direct dependents (default 3)"
// @Param minPrerequisites query int false "Minimum transitive prerequisites (default 2)"
// @Param depth query int false "Prerequisite depth bound, 1-3 (default 3)"
// @Success 200 {object} dto.APIResponse{data=dto.BottlenecksResponse} "Bottlenecks retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 409 {object} dto.ErrorResponse "Prerequisite cycle detected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analysis/bottlenecks [get]
func (c *AnalysisController) GetBottlenecks(ctx *gin.Context) {
	opts := planner.BottleneckOptions{}
	var err error
	if opts.MinDependents, err = queryInt(ctx, "minDependents"); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid minDependents")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if opts.MinPrerequisites, err = queryInt(ctx, "minPrerequisites"); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid minPrerequisites")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if opts.Depth, err = queryInt(ctx, "depth"); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid depth")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	bottlenecks, err := c.analysisService.Bottlenecks(ctx, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      bottlenecks,
		Timestamp: time.Now(),
	})
}

// GetDifficulty measures course difficulty and impact
// @Summary Analyze course difficulty
// @Description Scores every course by prerequisite burden and catalog impact, hardest first
// @Tags analysis
// @Accept json
// @Produce json
// @Param department query string false "Filter by department code"
// @Success 200 {object} dto.APIResponse{data=dto.DifficultyResponse} "Difficulty metrics retrieved successfully"
// @Failure 409 {object} dto.ErrorResponse "Prerequisite cycle detected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analysis/difficulty [get]
func (c *AnalysisController) GetDifficulty(ctx *gin.Context) {
	difficulty, err := c.analysisService.Difficulty(ctx, ctx.Query("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      difficulty,
		Timestamp: time.Now(),
	})
}

// queryInt parses an optional non-negative integer query parameter
func queryInt(ctx *gin.Context, name string) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, strconv.ErrSyntax
	}
	return value, nil
}
