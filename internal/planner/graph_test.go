package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursegraph/internal/planner"
)

// catalogSnapshot builds the shared test catalog:
//
//	MATH101 <- MATH241 <- CS225 -> CS125
//	CS225 <- CS374 <- CS411
//	CS999 stands alone.
func catalogSnapshot() planner.Snapshot {
	return planner.Snapshot{
		Courses: []planner.Course{
			{Code: "MATH101", Name: "Calculus I", Credits: 4, Department: "MATH"},
			{Code: "MATH241", Name: "Calculus III", Credits: 4, Department: "MATH"},
			{Code: "CS125", Name: "Intro to CS", Credits: 3, Department: "CS"},
			{Code: "CS225", Name: "Data Structures", Credits: 4, Department: "CS"},
			{Code: "CS374", Name: "Algorithms", Credits: 4, Department: "CS"},
			{Code: "CS411", Name: "Database Systems", Credits: 3, Department: "CS"},
			{Code: "CS999", Name: "Special Topics", Credits: 3, Department: "CS"},
		},
		Edges: []planner.PrerequisiteEdge{
			{From: "MATH241", To: "MATH101"},
			{From: "CS225", To: "CS125"},
			{From: "CS225", To: "MATH241"},
			{From: "CS374", To: "CS225"},
			{From: "CS411", To: "CS374"},
		},
	}
}

func catalogGraph(t *testing.T) *planner.Graph {
	t.Helper()
	g, err := planner.NewGraph(catalogSnapshot())
	require.NoError(t, err)
	return g
}

func TestNewGraph_Basic(t *testing.T) {
	g := catalogGraph(t)

	assert.Equal(t, 7, g.Len())
	assert.True(t, g.Has("CS225"))
	assert.False(t, g.Has("CS000"))

	course, err := g.Course("CS225")
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", course.Name)
	assert.Equal(t, 4, course.Credits)

	_, err = g.Course("CS000")
	require.Error(t, err)
	assert.True(t, planner.IsNotFound(err))
}

func TestNewGraph_DuplicateCourse(t *testing.T) {
	snap := catalogSnapshot()
	snap.Courses = append(snap.Courses, planner.Course{Code: "CS225", Name: "Duplicate"})

	_, err := planner.NewGraph(snap)
	require.Error(t, err)
	assert.True(t, planner.IsMalformedGraph(err))
}

func TestNewGraph_DanglingEdge(t *testing.T) {
	snap := catalogSnapshot()
	snap.Edges = append(snap.Edges, planner.PrerequisiteEdge{From: "CS225", To: "PHYS211"})

	_, err := planner.NewGraph(snap)
	require.Error(t, err)
	assert.True(t, planner.IsMalformedGraph(err))
}

func TestNewGraph_DeduplicatesParallelEdges(t *testing.T) {
	snap := catalogSnapshot()
	snap.Edges = append(snap.Edges, planner.PrerequisiteEdge{From: "CS225", To: "CS125"})

	g, err := planner.NewGraph(snap)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS125", "MATH241"}, g.DirectPrerequisites("CS225"))
}

func TestGraph_DirectNeighbors(t *testing.T) {
	g := catalogGraph(t)

	assert.Equal(t, []string{"CS125", "MATH241"}, g.DirectPrerequisites("CS225"))
	assert.Empty(t, g.DirectPrerequisites("CS125"))
	assert.Equal(t, []string{"CS374"}, g.DirectDependents("CS225"))
	assert.Empty(t, g.DirectDependents("CS411"))
}

func TestGraph_CreditsFallback(t *testing.T) {
	snap := planner.Snapshot{Courses: []planner.Course{{Code: "GEN100", Name: "Seminar"}}}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)

	assert.Equal(t, planner.DefaultCredits, g.Credits("GEN100"))
}

func TestGraph_CodesSorted(t *testing.T) {
	g := catalogGraph(t)

	codes := g.Codes()
	assert.Equal(t, []string{"CS125", "CS225", "CS374", "CS411", "CS999", "MATH101", "MATH241"}, codes)
}
