package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/coursegraph/internal/app/models"
	appRepos "github.com/yigit/coursegraph/internal/app/repositories"
)

// CreateDefaultData populates the catalog on first start. When a seed file is
// configured it is imported; otherwise a small demo catalog is created. An
// already-populated catalog is left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, seedFile string, lgr zerolog.Logger) error {
	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect catalog: %w", err)
	}
	if count > 0 {
		lgr.Info().Int("courses", count).Msg("Catalog already populated, skipping seed")
		return nil
	}

	courseRepo := appRepos.NewCourseRepository(dbPool)
	semesterRepo := appRepos.NewSemesterRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)
	programRepo := appRepos.NewProgramRepository(dbPool)

	if seedFile != "" {
		lgr.Info().Str("file", seedFile).Msg("Importing catalog from seed file")
		return importPrerequisiteCSV(ctx, courseRepo, seedFile)
	}

	lgr.Info().Msg("Seeding demo catalog...")
	var finalErr error

	demoCourses := []appModels.Course{
		{Code: "CS125", Name: "Intro to Computer Science", Credits: 3, Department: "CS"},
		{Code: "CS225", Name: "Data Structures", Credits: 4, Department: "CS"},
		{Code: "CS374", Name: "Algorithms and Models of Computation", Credits: 4, Department: "CS"},
		{Code: "CS411", Name: "Database Systems", Credits: 3, Department: "CS"},
		{Code: "CS421", Name: "Programming Languages", Credits: 3, Department: "CS"},
		{Code: "MATH101", Name: "Calculus I", Credits: 4, Department: "MATH"},
		{Code: "MATH241", Name: "Calculus III", Credits: 4, Department: "MATH"},
	}
	for i := range demoCourses {
		if err := courseRepo.Create(ctx, &demoCourses[i]); err != nil {
			lgr.Error().Err(err).Str("course", demoCourses[i].Code).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	demoEdges := [][2]string{
		{"MATH241", "MATH101"},
		{"CS225", "CS125"},
		{"CS225", "MATH241"},
		{"CS374", "CS225"},
		{"CS411", "CS374"},
		{"CS421", "CS225"},
	}
	for _, edge := range demoEdges {
		if err := courseRepo.AddPrerequisite(ctx, edge[0], edge[1]); err != nil {
			lgr.Error().Err(err).Str("course", edge[0]).Str("prerequisite", edge[1]).Msg("Error seeding prerequisite")
			finalErr = errors.Join(finalErr, err)
		}
	}

	allCodes := make([]string, 0, len(demoCourses))
	for _, c := range demoCourses {
		allCodes = append(allCodes, c.Code)
	}

	terms := []struct {
		year int
		term int
		name string
	}{
		{2026, 1, "Fall 2026"},
		{2027, 2, "Spring 2027"},
		{2027, 1, "Fall 2027"},
		{2028, 2, "Spring 2028"},
	}
	for position, t := range terms {
		sem := appModels.Semester{Year: t.year, Term: t.term, Name: t.name, Position: position}
		if err := semesterRepo.Create(ctx, &sem); err != nil {
			lgr.Error().Err(err).Str("semester", t.name).Msg("Error seeding semester")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		for _, code := range allCodes {
			if err := semesterRepo.AddOffering(ctx, sem.ID, code); err != nil {
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	program := appModels.Program{Name: "CS-BS"}
	if err := programRepo.Create(ctx, &program); err != nil {
		lgr.Error().Err(err).Msg("Error seeding program")
		finalErr = errors.Join(finalErr, err)
	} else {
		for _, code := range allCodes {
			if err := programRepo.AddCourse(ctx, program.ID, code); err != nil {
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	student := appModels.Student{ID: "demo-student", Name: "Demo Student"}
	if err := studentRepo.Create(ctx, &student); err != nil {
		lgr.Error().Err(err).Msg("Error seeding demo student")
		finalErr = errors.Join(finalErr, err)
	} else {
		records := []appModels.CourseRecord{
			{StudentID: student.ID, CourseCode: "CS125", Status: appModels.RecordCompleted},
			{StudentID: student.ID, CourseCode: "MATH101", Status: appModels.RecordCompleted},
			{StudentID: student.ID, CourseCode: "MATH241", Status: appModels.RecordEnrolled},
		}
		for _, rec := range records {
			if err := studentRepo.AddRecord(ctx, rec); err != nil {
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Int("courses", len(demoCourses)).Msg("Demo catalog seeded")
	}
	return finalErr
}

// catalogRow is one course of the wide seed format with its prerequisites.
type catalogRow struct {
	Course  string
	Prereqs []string
}

// parsePrerequisiteCSV reads the wide catalog format:
//
//	Course,PrerequisiteNumber,0,1,2,...
//	CS225,2,CS125,MATH241
//
// Column one is the course code, column two the prerequisite count, and the
// remaining columns the prerequisite codes. It returns the parsed rows and
// the set of every course code mentioned, including bare prerequisites.
func parsePrerequisiteCSV(r io.Reader) ([]catalogRow, map[string]bool, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows have varying widths

	// Skip the header row
	if _, err := reader.Read(); err != nil {
		return nil, nil, fmt.Errorf("failed to read seed header: %w", err)
	}

	var rows []catalogRow
	seen := map[string]bool{}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read seed row: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		course := strings.TrimSpace(record[0])
		if course == "" {
			continue
		}
		row := catalogRow{Course: course}
		for _, field := range record[2:] {
			if prereq := strings.TrimSpace(field); prereq != "" {
				row.Prereqs = append(row.Prereqs, prereq)
			}
		}
		rows = append(rows, row)
		seen[course] = true
		for _, p := range row.Prereqs {
			seen[p] = true
		}
	}

	return rows, seen, nil
}

// importPrerequisiteCSV ingests a wide-format catalog file into the store.
func importPrerequisiteCSV(ctx context.Context, courseRepo *appRepos.CourseRepository, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	rows, seen, err := parsePrerequisiteCSV(file)
	if err != nil {
		return err
	}

	// Create all courses first so prerequisite edges never dangle
	for code := range seen {
		course := appModels.Course{Code: code, Name: code, Department: departmentOf(code)}
		if err := courseRepo.Create(ctx, &course); err != nil {
			return fmt.Errorf("failed to seed course %s: %w", code, err)
		}
	}
	for _, row := range rows {
		for _, p := range row.Prereqs {
			if err := courseRepo.AddPrerequisite(ctx, row.Course, p); err != nil {
				return fmt.Errorf("failed to seed prerequisite %s -> %s: %w", row.Course, p, err)
			}
		}
	}

	return nil
}

// departmentOf extracts the letter prefix of a course code, e.g. "CS" from
// "CS225" or "AAS 100".
func departmentOf(code string) string {
	for i, r := range code {
		if (r >= '0' && r <= '9') || r == ' ' {
			return strings.TrimSpace(code[:i])
		}
	}
	return code
}
