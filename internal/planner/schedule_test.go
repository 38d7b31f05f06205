package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursegraph/internal/planner"
)

func newOptimizer(t *testing.T) *planner.ScheduleOptimizer {
	t.Helper()
	g := catalogGraph(t)
	return planner.NewScheduleOptimizer(g, planner.NewReachabilityIndex(g))
}

func fallSpring(year int) []planner.SemesterOffering {
	return []planner.SemesterOffering{
		{Year: year, Term: 1, Name: "Fall", Position: 0,
			Courses: []string{"CS125", "MATH101", "MATH241", "CS225", "CS374", "CS411"}},
		{Year: year + 1, Term: 2, Name: "Spring", Position: 1,
			Courses: []string{"CS125", "MATH101", "MATH241", "CS225", "CS374", "CS411"}},
	}
}

func scheduledCodes(plan planner.SchedulePlan) map[string]int {
	pos := make(map[string]int)
	for i, sem := range plan.Semesters {
		for _, c := range sem.Courses {
			pos[c.Code] = i
		}
	}
	return pos
}

func TestOptimize_PrerequisiteOrderHolds(t *testing.T) {
	o := newOptimizer(t)
	g := catalogGraph(t)
	student := planner.StudentState{ID: "s1"}
	required := []string{"CS125", "MATH101", "MATH241", "CS225", "CS374", "CS411"}

	semesters := make([]planner.SemesterOffering, 0, 6)
	for i := 0; i < 6; i++ {
		semesters = append(semesters, planner.SemesterOffering{
			Year: 2026 + i/2, Term: i%2 + 1, Position: i, Courses: required,
		})
	}

	plan, err := o.Optimize(student, required, semesters, planner.Constraints{})
	require.NoError(t, err)
	assert.Empty(t, plan.Unscheduled)
	assert.Empty(t, plan.Unreachable)

	pos := scheduledCodes(plan)
	for _, code := range required {
		for _, prereq := range g.DirectPrerequisites(code) {
			assert.Less(t, pos[prereq], pos[code],
				"%s must precede %s", prereq, code)
		}
	}
}

func TestOptimize_CompletedPrereqUnlocksImmediately(t *testing.T) {
	o := newOptimizer(t)
	student := planner.StudentState{ID: "s1", Completed: []string{"CS125", "MATH101", "MATH241"}}

	semesters := []planner.SemesterOffering{
		{Year: 2026, Term: 1, Name: "Fall", Courses: []string{"CS225"}},
		{Year: 2027, Term: 2, Name: "Spring", Courses: []string{"CS374"}},
	}

	plan, err := o.Optimize(student, []string{"CS225", "CS374"}, semesters, planner.Constraints{})
	require.NoError(t, err)
	pos := scheduledCodes(plan)
	assert.Equal(t, 0, pos["CS225"])
	assert.Equal(t, 1, pos["CS374"])
	assert.Empty(t, plan.Unscheduled)
}

func TestOptimize_SameSemesterNeverSatisfiesPrereq(t *testing.T) {
	o := newOptimizer(t)
	student := planner.StudentState{ID: "s1", Completed: []string{"CS125", "MATH101", "MATH241"}}

	// CS374 is offered alongside its prerequisite CS225 and never again.
	semesters := []planner.SemesterOffering{
		{Year: 2026, Term: 1, Courses: []string{"CS225", "CS374"}},
	}

	plan, err := o.Optimize(student, []string{"CS225", "CS374"}, semesters, planner.Constraints{})
	require.NoError(t, err)
	pos := scheduledCodes(plan)
	assert.Equal(t, 0, pos["CS225"])
	assert.NotContains(t, pos, "CS374")
	assert.Equal(t, []string{"CS374"}, plan.Unscheduled)
}

func TestOptimize_CourseCapRespected(t *testing.T) {
	o := newOptimizer(t)
	student := planner.StudentState{ID: "s1"}
	required := []string{"CS125", "MATH101", "CS999"}

	semesters := []planner.SemesterOffering{
		{Year: 2026, Term: 1, Courses: required},
		{Year: 2027, Term: 2, Courses: required},
	}

	plan, err := o.Optimize(student, required, semesters, planner.Constraints{MaxCoursesPerSemester: 2})
	require.NoError(t, err)
	for _, sem := range plan.Semesters {
		assert.LessOrEqual(t, len(sem.Courses), 2)
	}
	pos := scheduledCodes(plan)
	assert.Len(t, pos, 3)
}

func TestOptimize_CreditCapSkipsHeavyCourse(t *testing.T) {
	snap := planner.Snapshot{
		Courses: []planner.Course{
			{Code: "BIG", Credits: 6},
			{Code: "SMALL", Credits: 2},
		},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)
	o := planner.NewScheduleOptimizer(g, planner.NewReachabilityIndex(g))

	semesters := []planner.SemesterOffering{
		{Year: 2026, Term: 1, Courses: []string{"BIG", "SMALL"}},
	}

	// Only 5 credits available: BIG does not fit but SMALL still does.
	plan, err := o.Optimize(planner.StudentState{}, []string{"BIG", "SMALL"}, semesters, planner.Constraints{MaxCreditsPerSemester: 5})
	require.NoError(t, err)
	require.Len(t, plan.Semesters, 1)
	require.Len(t, plan.Semesters[0].Courses, 1)
	assert.Equal(t, "SMALL", plan.Semesters[0].Courses[0].Code)
	assert.Equal(t, 2, plan.Semesters[0].TotalCredits)
	assert.Equal(t, []string{"BIG"}, plan.Unscheduled)
}

func TestOptimize_NeverOfferedIsUnreachable(t *testing.T) {
	o := newOptimizer(t)
	student := planner.StudentState{ID: "s1"}

	plan, err := o.Optimize(student, []string{"CS125", "CS999"}, fallSpring(2026), planner.Constraints{})
	require.NoError(t, err)
	assert.Contains(t, scheduledCodes(plan), "CS125")
	assert.NotContains(t, plan.Unscheduled, "CS999")

	// CS999 is a catalog course offered in neither semester.
	semesters := []planner.SemesterOffering{
		{Year: 2026, Term: 1, Courses: []string{"CS125"}},
	}
	plan, err = o.Optimize(student, []string{"CS125", "CS999"}, semesters, planner.Constraints{})
	require.NoError(t, err)
	assert.Equal(t, []string{"CS999"}, plan.Unreachable)
}

func TestOptimize_EmptySemesterSequence(t *testing.T) {
	o := newOptimizer(t)

	plan, err := o.Optimize(planner.StudentState{}, []string{"CS125"}, nil, planner.Constraints{})
	require.NoError(t, err)
	assert.Empty(t, plan.Semesters)
	assert.Equal(t, []string{"CS125"}, plan.Unreachable)
}

func TestOptimize_CompletedAndEnrolledExcluded(t *testing.T) {
	o := newOptimizer(t)
	student := planner.StudentState{
		ID:        "s1",
		Completed: []string{"CS125"},
		Enrolled:  []string{"MATH101"},
	}

	plan, err := o.Optimize(student, []string{"CS125", "MATH101", "MATH241"}, fallSpring(2026), planner.Constraints{})
	require.NoError(t, err)
	pos := scheduledCodes(plan)
	assert.NotContains(t, pos, "CS125")
	assert.NotContains(t, pos, "MATH101")
}

func TestOptimize_TargetSemestersTruncatesHorizon(t *testing.T) {
	o := newOptimizer(t)
	required := []string{"CS125", "CS225", "CS374", "CS411", "MATH101", "MATH241"}

	semesters := make([]planner.SemesterOffering, 0, 10)
	for i := 0; i < 10; i++ {
		semesters = append(semesters, planner.SemesterOffering{
			Year: 2026 + i/2, Term: i%2 + 1, Position: i, Courses: required,
		})
	}

	plan, err := o.Optimize(planner.StudentState{}, required, semesters, planner.Constraints{
		MaxCoursesPerSemester: 1,
		TargetSemesters:       2,
	})
	require.NoError(t, err)
	assert.Len(t, plan.Semesters, 2)
	assert.NotEmpty(t, plan.Unscheduled)
}

func TestOptimize_UnknownRequiredCourse(t *testing.T) {
	o := newOptimizer(t)

	_, err := o.Optimize(planner.StudentState{}, []string{"CS000"}, fallSpring(2026), planner.Constraints{})
	require.Error(t, err)
	assert.True(t, planner.IsNotFound(err))
}

func TestOptimize_CycleAborts(t *testing.T) {
	snap := planner.Snapshot{
		Courses: []planner.Course{{Code: "A"}, {Code: "B"}},
		Edges: []planner.PrerequisiteEdge{
			{From: "A", To: "B"},
			{From: "B", To: "A"},
		},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)
	o := planner.NewScheduleOptimizer(g, planner.NewReachabilityIndex(g))

	semesters := []planner.SemesterOffering{{Year: 2026, Term: 1, Courses: []string{"A", "B"}}}
	_, err = o.Optimize(planner.StudentState{}, []string{"A", "B"}, semesters, planner.Constraints{})
	require.Error(t, err)
	assert.True(t, planner.IsCycleDetected(err))
}
