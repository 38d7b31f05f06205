package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursegraph/internal/planner"
)

func TestDetectCycles_Acyclic(t *testing.T) {
	g := catalogGraph(t)
	assert.Empty(t, g.DetectCycles())
}

func TestDetectCycles_SimpleTriangle(t *testing.T) {
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

	cycles := g.DetectCycles()
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"A", "B", "C"}, cycles[0])
}

func TestDetectCycles_SelfEdge(t *testing.T) {
	snap := planner.Snapshot{
		Courses: []planner.Course{{Code: "X"}},
		Edges:   []planner.PrerequisiteEdge{{From: "X", To: "X"}},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)

	cycles := g.DetectCycles()
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"X"}, cycles[0])
}

func TestDetectCycles_MultipleComponents(t *testing.T) {
	snap := planner.Snapshot{
		Courses: []planner.Course{
			{Code: "A"}, {Code: "B"},
			{Code: "M"}, {Code: "N"}, {Code: "O"},
			{Code: "Z"},
		},
		Edges: []planner.PrerequisiteEdge{
			{From: "A", To: "B"},
			{From: "B", To: "A"},
			{From: "M", To: "N"},
			{From: "N", To: "O"},
			{From: "O", To: "M"},
			{From: "Z", To: "A"},
		},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)

	cycles := g.DetectCycles()
	require.Len(t, cycles, 2)
	// Sorted by first element, each rotated to start at its smallest code.
	assert.Equal(t, []string{"A", "B"}, cycles[0])
	assert.Equal(t, []string{"M", "N", "O"}, cycles[1])
}

func TestDetectCycles_SharedNodeNotMerged(t *testing.T) {
	// Two cycles through a shared node form a single strongly connected
	// component and must be reported once.
	snap := planner.Snapshot{
		Courses: []planner.Course{{Code: "A"}, {Code: "B"}, {Code: "C"}},
		Edges: []planner.PrerequisiteEdge{
			{From: "A", To: "B"},
			{From: "B", To: "A"},
			{From: "B", To: "C"},
			{From: "C", To: "B"},
		},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)

	cycles := g.DetectCycles()
	require.Len(t, cycles, 1)
	assert.Equal(t, "A", cycles[0][0])
}
