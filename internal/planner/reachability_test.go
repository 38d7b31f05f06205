package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursegraph/internal/planner"
)

func TestTransitivePrerequisites_FullClosure(t *testing.T) {
	g := catalogGraph(t)
	ix := planner.NewReachabilityIndex(g)

	res, err := ix.TransitivePrerequisites("CS411", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS125", "CS225", "CS374", "MATH101", "MATH241"}, res.Courses)
	assert.Equal(t, 4, res.ChainDepth)
	assert.False(t, res.Partial)
}

func TestTransitivePrerequisites_ExcludesOrigin(t *testing.T) {
	g := catalogGraph(t)
	ix := planner.NewReachabilityIndex(g)

	res, err := ix.TransitivePrerequisites("CS225", 0)
	require.NoError(t, err)
	assert.NotContains(t, res.Courses, "CS225")
}

func TestTransitivePrerequisites_NoPrereqs(t *testing.T) {
	g := catalogGraph(t)
	ix := planner.NewReachabilityIndex(g)

	res, err := ix.TransitivePrerequisites("CS125", 0)
	require.NoError(t, err)
	assert.Empty(t, res.Courses)
	assert.Equal(t, 0, res.ChainDepth)
}

func TestTransitivePrerequisites_UnknownCourse(t *testing.T) {
	g := catalogGraph(t)
	ix := planner.NewReachabilityIndex(g)

	_, err := ix.TransitivePrerequisites("CS000", 0)
	require.Error(t, err)
	assert.True(t, planner.IsNotFound(err))
}

func TestTransitivePrerequisites_DepthBounded(t *testing.T) {
	g := catalogGraph(t)
	ix := planner.NewReachabilityIndex(g)

	res, err := ix.TransitivePrerequisites("CS411", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS225", "CS374"}, res.Courses)
	assert.Equal(t, 2, res.ChainDepth)
	assert.True(t, res.Partial)
}

func TestTransitivePrerequisites_DepthBoundLargerThanChain(t *testing.T) {
	g := catalogGraph(t)
	ix := planner.NewReachabilityIndex(g)

	res, err := ix.TransitivePrerequisites("CS225", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS125", "MATH101", "MATH241"}, res.Courses)
	assert.False(t, res.Partial)
}

func TestTransitiveDependents_FullClosure(t *testing.T) {
	g := catalogGraph(t)
	ix := planner.NewReachabilityIndex(g)

	res, err := ix.TransitiveDependents("CS125", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS225", "CS374", "CS411"}, res.Courses)
}

func TestTransitive_CycleUnbounded(t *testing.T) {
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
	ix := planner.NewReachabilityIndex(g)

	_, err = ix.TransitivePrerequisites("A", 0)
	require.Error(t, err)
	assert.True(t, planner.IsCycleDetected(err))

	var cycleErr *planner.CycleDetectedError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"A", "B", "C"}, cycleErr.Cycle)
}

func TestTransitive_CycleBounded(t *testing.T) {
	snap := planner.Snapshot{
		Courses: []planner.Course{{Code: "A"}, {Code: "B"}},
		Edges: []planner.PrerequisiteEdge{
			{From: "A", To: "B"},
			{From: "B", To: "A"},
		},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)
	ix := planner.NewReachabilityIndex(g)

	_, err = ix.TransitivePrerequisites("A", 3)
	require.Error(t, err)
	assert.True(t, planner.IsCycleDetected(err))
}

func TestTransitive_MemoizationConsistent(t *testing.T) {
	g := catalogGraph(t)
	ix := planner.NewReachabilityIndex(g)

	first, err := ix.TransitivePrerequisites("CS411", 0)
	require.NoError(t, err)
	second, err := ix.TransitivePrerequisites("CS411", 0)
	require.NoError(t, err)
	assert.Equal(t, first.Courses, second.Courses)

	// A sub-chain query after the memoized run still answers correctly.
	sub, err := ix.TransitivePrerequisites("CS374", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS125", "CS225", "MATH101", "MATH241"}, sub.Courses)
}
