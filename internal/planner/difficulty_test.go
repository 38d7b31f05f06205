package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursegraph/internal/planner"
)

func newDifficultyAnalyzer(t *testing.T) *planner.DifficultyAnalyzer {
	t.Helper()
	g := catalogGraph(t)
	return planner.NewDifficultyAnalyzer(g, planner.NewReachabilityIndex(g))
}

func TestMeasure_ChainEnd(t *testing.T) {
	a := newDifficultyAnalyzer(t)

	m, err := a.Measure("CS411")
	require.NoError(t, err)
	assert.Equal(t, 1, m.DirectPrereqs)
	assert.Equal(t, 5, m.TotalPrereqs)
	assert.Equal(t, 4, m.MaxPrereqDepth)
	assert.Equal(t, 0, m.Dependents)
	assert.Equal(t, 5*2+4*10, m.DifficultyScore)
	assert.Equal(t, 0, m.ImpactScore)
}

func TestMeasure_ChainStart(t *testing.T) {
	a := newDifficultyAnalyzer(t)

	m, err := a.Measure("CS125")
	require.NoError(t, err)
	assert.Equal(t, 0, m.TotalPrereqs)
	assert.Equal(t, 0, m.DifficultyScore)
	assert.Equal(t, 3, m.Dependents)
	assert.Equal(t, 3, m.MaxDependentDepth)
	assert.Equal(t, 3*2+3*5, m.ImpactScore)
}

func TestMeasure_CriticalChain(t *testing.T) {
	a := newDifficultyAnalyzer(t)

	m, err := a.Measure("CS411")
	require.NoError(t, err)
	assert.Equal(t, []string{"MATH101", "MATH241", "CS225", "CS374", "CS411"}, m.CriticalChain)
}

func TestMeasure_UnknownCourse(t *testing.T) {
	a := newDifficultyAnalyzer(t)

	_, err := a.Measure("CS000")
	require.Error(t, err)
	assert.True(t, planner.IsNotFound(err))
}

func TestAnalyze_OrderAndFilter(t *testing.T) {
	a := newDifficultyAnalyzer(t)

	all, err := a.Analyze("")
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "CS411", all[0].Code)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].DifficultyScore, all[i].DifficultyScore)
	}

	cs, err := a.Analyze("CS")
	require.NoError(t, err)
	require.Len(t, cs, 5)
	for _, m := range cs {
		assert.Equal(t, "CS", m.Department)
	}
}

func TestClassify_Types(t *testing.T) {
	// FND feeds six courses; CAP sits atop a six-deep chain.
	snap := planner.Snapshot{
		Courses: []planner.Course{
			{Code: "FND"},
			{Code: "L1"}, {Code: "L2"}, {Code: "L3"}, {Code: "L4"}, {Code: "L5"},
			{Code: "M1"},
			{Code: "CAP"},
		},
		Edges: []planner.PrerequisiteEdge{
			{From: "L1", To: "FND"},
			{From: "L2", To: "FND"},
			{From: "L3", To: "FND"},
			{From: "L4", To: "FND"},
			{From: "L5", To: "FND"},
			{From: "M1", To: "FND"},
			{From: "L2", To: "L1"},
			{From: "L3", To: "L2"},
			{From: "L4", To: "L3"},
			{From: "L5", To: "L4"},
			{From: "CAP", To: "L5"},
			{From: "CAP", To: "M1"},
		},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)
	a := planner.NewDifficultyAnalyzer(g, planner.NewReachabilityIndex(g))

	fnd, err := a.Measure("FND")
	require.NoError(t, err)
	assert.Equal(t, planner.TypeFoundation, fnd.Type)

	cap, err := a.Measure("CAP")
	require.NoError(t, err)
	assert.Equal(t, planner.TypeCapstone, cap.Type)
}

func TestAnalyze_CycleFails(t *testing.T) {
	snap := planner.Snapshot{
		Courses: []planner.Course{{Code: "A"}, {Code: "B"}},
		Edges: []planner.PrerequisiteEdge{
			{From: "A", To: "B"},
			{From: "B", To: "A"},
		},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)
	a := planner.NewDifficultyAnalyzer(g, planner.NewReachabilityIndex(g))

	_, err = a.Analyze("")
	require.Error(t, err)
	assert.True(t, planner.IsCycleDetected(err))
}
