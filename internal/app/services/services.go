package services

// Services defined in this package:
// - CatalogService: structural queries over the prerequisite graph
// - PlannerService: per-student readiness, eligibility, schedules and paths
// - AnalysisService: catalog-wide bottleneck and difficulty analyses
// - SnapshotProvider: owns the immutable catalog graph shared by the above
