package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursegraph/internal/app/controllers"
	"github.com/yigit/coursegraph/internal/app/models/dto"
	"github.com/yigit/coursegraph/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	analysisController *controllers.AnalysisController,
	plannerController *controllers.PlannerController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Catalog routes
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:code", courseController.GetCourse)
		courses.GET("/:code/prerequisites", courseController.GetPrerequisites)
		courses.GET("/:code/dependents", courseController.GetDependents)
	}

	// Graph validation routes
	graph := v1.Group("/graph")
	{
		graph.GET("/cycles", courseController.GetCycles)
	}

	// Analysis routes
	analysis := v1.Group("/analysis")
	{
		analysis.GET("/bottlenecks", analysisController.GetBottlenecks)
		analysis.GET("/difficulty", analysisController.GetDifficulty)
	}

	// Student planning routes
	students := v1.Group("/students")
	{
		students.GET("/:id/readiness/:code", plannerController.GetReadiness)
		students.GET("/:id/eligibility/:code", plannerController.GetEligibility)
		students.GET("/:id/graduation-paths", plannerController.GetGraduationPaths)
		students.POST("/:id/schedule",
			middleware.ValidateRequest(func() interface{} { return &dto.ScheduleRequest{} }),
			plannerController.CreateSchedule)
	}

	// Program routes
	programs := v1.Group("/programs")
	{
		programs.GET("/:name/plan", plannerController.GetProgramPlan)
	}

	// Admin routes
	admin := v1.Group("/admin")
	{
		admin.POST("/snapshot/refresh", plannerController.RefreshSnapshot)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
