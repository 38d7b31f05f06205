package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursegraph/internal/planner"
)

func newExplorer(t *testing.T) *planner.PathExplorer {
	t.Helper()
	g := catalogGraph(t)
	return planner.NewPathExplorer(g, planner.NewReachabilityIndex(g))
}

func assertValidOrdering(t *testing.T, g *planner.Graph, path []string) {
	t.Helper()
	pos := make(map[string]int, len(path))
	for i, code := range path {
		pos[code] = i
	}
	for _, code := range path {
		for _, prereq := range g.DirectPrerequisites(code) {
			if _, in := pos[prereq]; !in {
				continue // prerequisite outside the explored set
			}
			assert.Less(t, pos[prereq], pos[code], "%s must precede %s", prereq, code)
		}
	}
}

func TestExplore_EveryPathValid(t *testing.T) {
	e := newExplorer(t)
	g := catalogGraph(t)
	required := []string{"CS125", "MATH101", "MATH241", "CS225", "CS374", "CS411"}

	paths, err := e.Explore(planner.StudentState{ID: "s1"}, required, 5)
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	assert.LessOrEqual(t, len(paths), 5)

	seen := make(map[string]bool)
	for _, path := range paths {
		assert.Len(t, path, len(required))
		assertValidOrdering(t, g, path)
		sig := ""
		for _, c := range path {
			sig += c + "|"
		}
		assert.False(t, seen[sig], "paths must be distinct")
		seen[sig] = true
	}
}

func TestExplore_CompletedCoursesExcluded(t *testing.T) {
	e := newExplorer(t)
	student := planner.StudentState{ID: "s1", Completed: []string{"CS125", "MATH101", "MATH241"}}

	paths, err := e.Explore(student, []string{"CS125", "CS225", "CS374"}, 3)
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		assert.NotContains(t, path, "CS125")
	}
	assert.Equal(t, []string{"CS225", "CS374"}, paths[0])
}

func TestExplore_NothingRemaining(t *testing.T) {
	e := newExplorer(t)
	student := planner.StudentState{ID: "s1", Completed: []string{"CS125"}}

	paths, err := e.Explore(student, []string{"CS125"}, 3)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestExplore_RespectsLimit(t *testing.T) {
	e := newExplorer(t)
	// CS125, MATH101 and CS999 are mutually independent: 6 orderings exist.
	required := []string{"CS125", "MATH101", "CS999"}

	paths, err := e.Explore(planner.StudentState{}, required, 2)
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	all, err := e.Explore(planner.StudentState{}, required, 10)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestExplore_UnknownCourse(t *testing.T) {
	e := newExplorer(t)

	_, err := e.Explore(planner.StudentState{}, []string{"CS000"}, 3)
	require.Error(t, err)
	assert.True(t, planner.IsNotFound(err))
}

func TestExplore_CycleFails(t *testing.T) {
	snap := planner.Snapshot{
		Courses: []planner.Course{{Code: "A"}, {Code: "B"}},
		Edges: []planner.PrerequisiteEdge{
			{From: "A", To: "B"},
			{From: "B", To: "A"},
		},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)
	e := planner.NewPathExplorer(g, planner.NewReachabilityIndex(g))

	_, err = e.Explore(planner.StudentState{}, []string{"A", "B"}, 3)
	require.Error(t, err)
	assert.True(t, planner.IsCycleDetected(err))
}

func TestRecommendedSequence_LevelBatches(t *testing.T) {
	e := newExplorer(t)
	required := []string{"CS125", "MATH101", "MATH241", "CS225", "CS374", "CS411"}

	seq, err := e.RecommendedSequence(planner.StudentState{}, required)
	require.NoError(t, err)
	require.Len(t, seq, 5)
	assert.Equal(t, []string{"CS125", "MATH101"}, seq[0])
	assert.Equal(t, []string{"MATH241"}, seq[1])
	assert.Equal(t, []string{"CS225"}, seq[2])
	assert.Equal(t, []string{"CS374"}, seq[3])
	assert.Equal(t, []string{"CS411"}, seq[4])
}

func TestRecommendedSequence_CompletedShiftLevels(t *testing.T) {
	e := newExplorer(t)
	student := planner.StudentState{Completed: []string{"CS125", "MATH101", "MATH241"}}

	seq, err := e.RecommendedSequence(student, []string{"CS225", "CS374", "CS411"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"CS225"}, {"CS374"}, {"CS411"}}, seq)
}

func TestRecommendedSequence_CycleFails(t *testing.T) {
	snap := planner.Snapshot{
		Courses: []planner.Course{{Code: "A"}, {Code: "B"}, {Code: "C"}},
		Edges: []planner.PrerequisiteEdge{
			{From: "A", To: "B"},
			{From: "B", To: "C"},
			{From: "C", To: "A"},
		},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)
	e := planner.NewPathExplorer(g, planner.NewReachabilityIndex(g))

	_, err = e.RecommendedSequence(planner.StudentState{}, []string{"A", "B", "C"})
	require.Error(t, err)
	assert.True(t, planner.IsCycleDetected(err))
}
