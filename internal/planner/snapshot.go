// Package planner implements the prerequisite-graph reasoning and schedule
// optimization engine. It is pure computation: a planning session loads an
// immutable snapshot, derives indices, produces results and discards all
// derived state. Nothing in this package performs I/O or logging; errors
// propagate as values to the boundary layer.
package planner

import "fmt"

// Course is a single catalog entry. Courses are immutable once loaded into a
// planning snapshot.
type Course struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Credits    int    `json:"credits"`
	Department string `json:"department,omitempty"`
}

// DefaultCredits is assumed when a course has no credit weight in the source
// data.
const DefaultCredits = 3

// PrerequisiteEdge is the directed relation "From requires To". Multiple edges
// into the same course are conjunctive: all listed prerequisites are required.
type PrerequisiteEdge struct {
	From string `json:"fromCode"`
	To   string `json:"toCode"`
}

// SemesterOffering identifies one semester in the planning timeline and the
// set of course codes offered in it. Position is the ordinal of the semester
// in the horizon; (Year, Term) is unique.
type SemesterOffering struct {
	Year     int      `json:"year"`
	Term     int      `json:"term"`
	Name     string   `json:"name,omitempty"`
	Position int      `json:"position"`
	Courses  []string `json:"courses"`
}

// ID returns a stable identifier for the offering, e.g. "2024-1".
func (s SemesterOffering) ID() string {
	return fmt.Sprintf("%d-%d", s.Year, s.Term)
}

// StudentState is an immutable per-call snapshot of a student's progress.
// Only completed courses satisfy prerequisites; current enrollment does not.
type StudentState struct {
	ID        string   `json:"studentId"`
	Completed []string `json:"completedCourseCodes"`
	Enrolled  []string `json:"enrolledCourseCodes,omitempty"`
}

// CompletedSet returns the completed course codes as a lookup set.
func (s StudentState) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(s.Completed))
	for _, code := range s.Completed {
		set[code] = true
	}
	return set
}

// EnrolledSet returns the currently-enrolled course codes as a lookup set.
func (s StudentState) EnrolledSet() map[string]bool {
	set := make(map[string]bool, len(s.Enrolled))
	for _, code := range s.Enrolled {
		set[code] = true
	}
	return set
}

// ProgramRequirement is the conjunctive set of courses required by a program.
type ProgramRequirement struct {
	Name    string   `json:"name"`
	Courses []string `json:"courses"`
}

// Snapshot is the read-only graph data one planning computation works on.
// It is safe for concurrent read-only sharing once built; callers that cache
// a snapshot must replace it wholesale rather than mutate it in place.
type Snapshot struct {
	Courses   []Course           `json:"courses"`
	Edges     []PrerequisiteEdge `json:"edges"`
	Semesters []SemesterOffering `json:"semesters"`
}
