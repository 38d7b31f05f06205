package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/coursegraph/internal/app/controllers"
	appMigrations "github.com/yigit/coursegraph/internal/app/migrations"
	appRepos "github.com/yigit/coursegraph/internal/app/repositories"
	appRoutes "github.com/yigit/coursegraph/internal/app/routes"
	appServices "github.com/yigit/coursegraph/internal/app/services"
	"github.com/yigit/coursegraph/internal/config"
	"github.com/yigit/coursegraph/internal/db"
	"github.com/yigit/coursegraph/internal/graphdb"
	appMiddleware "github.com/yigit/coursegraph/internal/middleware"
	"github.com/yigit/coursegraph/internal/pkg/logger"
	"github.com/yigit/coursegraph/internal/planner"
	"github.com/yigit/coursegraph/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SnapshotProvider   *appServices.SnapshotProvider
	CatalogService     *appServices.CatalogService
	PlannerService     *appServices.PlannerService
	AnalysisService    *appServices.AnalysisService
	CourseController   *appControllers.CourseController
	AnalysisController *appControllers.AnalysisController
	PlannerController  *appControllers.PlannerController
	Repos              *appRepos.Repositories
	GraphDB            *graphdb.Client
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed catalog data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg.Planner.SeedFile, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to seed catalog data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Choose the snapshot source: Postgres by default, Neo4j when enabled
	var source appRepos.SnapshotSource = appRepos.NewPostgresSnapshotSource(
		deps.Repos.CourseRepository,
		deps.Repos.SemesterRepository,
	)
	if cfg.Neo4j.Enabled {
		client, err := graphdb.NewClient(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to Neo4j")
			return nil, fmt.Errorf("failed to connect to neo4j: %w", err)
		}
		deps.GraphDB = client
		source = appRepos.NewNeo4jSnapshotSource(client)
		lgr.Info().Str("uri", cfg.Neo4j.URI).Msg("Using Neo4j snapshot source")
	}

	deps.SnapshotProvider = appServices.NewSnapshotProvider(source)

	deps.CatalogService = appServices.NewCatalogService(deps.SnapshotProvider)
	deps.AnalysisService = appServices.NewAnalysisService(deps.SnapshotProvider)
	deps.PlannerService = appServices.NewPlannerService(
		deps.SnapshotProvider,
		deps.Repos.StudentRepository,
		deps.Repos.ProgramRepository,
		planner.Constraints{
			MaxCoursesPerSemester: cfg.Planner.MaxCoursesPerSemester,
			MaxCreditsPerSemester: cfg.Planner.MaxCreditsPerSemester,
			TargetSemesters:       cfg.Planner.TargetSemesters,
		},
	)

	deps.CourseController = appControllers.NewCourseController(deps.CatalogService)
	deps.AnalysisController = appControllers.NewAnalysisController(deps.AnalysisService)
	deps.PlannerController = appControllers.NewPlannerController(deps.PlannerService)

	// Load the initial snapshot so the first request does not pay for it
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := deps.SnapshotProvider.Refresh(ctx); err != nil {
		lgr.Warn().Err(err).Msg("Initial snapshot load failed, will retry lazily")
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.AnalysisController,
		deps.PlannerController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
