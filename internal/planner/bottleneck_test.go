package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursegraph/internal/planner"
)

// hubSnapshot has one obvious gateway course: HUB demands two prerequisites
// and unlocks four courses.
func hubSnapshot() planner.Snapshot {
	return planner.Snapshot{
		Courses: []planner.Course{
			{Code: "P1"}, {Code: "P2"}, {Code: "HUB"},
			{Code: "D1"}, {Code: "D2"}, {Code: "D3"}, {Code: "D4"},
		},
		Edges: []planner.PrerequisiteEdge{
			{From: "HUB", To: "P1"},
			{From: "HUB", To: "P2"},
			{From: "D1", To: "HUB"},
			{From: "D2", To: "HUB"},
			{From: "D3", To: "HUB"},
			{From: "D4", To: "HUB"},
		},
	}
}

func TestBottleneckRank_Defaults(t *testing.T) {
	g, err := planner.NewGraph(hubSnapshot())
	require.NoError(t, err)
	a := planner.NewBottleneckAnalyzer(g, planner.NewReachabilityIndex(g))

	ranked, err := a.Rank(planner.BottleneckOptions{})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "HUB", ranked[0].Code)
	assert.Equal(t, 4, ranked[0].Unlocks)
	assert.Equal(t, 2, ranked[0].TotalPrereqs)
}

func TestBottleneckRank_ThresholdsFilter(t *testing.T) {
	g, err := planner.NewGraph(hubSnapshot())
	require.NoError(t, err)
	a := planner.NewBottleneckAnalyzer(g, planner.NewReachabilityIndex(g))

	ranked, err := a.Rank(planner.BottleneckOptions{MinDependents: 5, MinPrerequisites: 1})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestBottleneckRank_Ordering(t *testing.T) {
	snap := hubSnapshot()
	// A second gateway with the same unlock count but a deeper prerequisite
	// tail must rank first; equal metrics fall back to code order.
	snap.Courses = append(snap.Courses,
		planner.Course{Code: "GATE"}, planner.Course{Code: "Q1"}, planner.Course{Code: "Q2"}, planner.Course{Code: "Q3"},
		planner.Course{Code: "E1"}, planner.Course{Code: "E2"}, planner.Course{Code: "E3"}, planner.Course{Code: "E4"},
	)
	snap.Edges = append(snap.Edges,
		planner.PrerequisiteEdge{From: "GATE", To: "Q1"},
		planner.PrerequisiteEdge{From: "GATE", To: "Q2"},
		planner.PrerequisiteEdge{From: "GATE", To: "Q3"},
		planner.PrerequisiteEdge{From: "E1", To: "GATE"},
		planner.PrerequisiteEdge{From: "E2", To: "GATE"},
		planner.PrerequisiteEdge{From: "E3", To: "GATE"},
		planner.PrerequisiteEdge{From: "E4", To: "GATE"},
	)
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)
	a := planner.NewBottleneckAnalyzer(g, planner.NewReachabilityIndex(g))

	ranked, err := a.Rank(planner.BottleneckOptions{})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "GATE", ranked[0].Code)
	assert.Equal(t, "HUB", ranked[1].Code)
}

func TestBottleneckRank_DepthClamped(t *testing.T) {
	g, err := planner.NewGraph(hubSnapshot())
	require.NoError(t, err)
	a := planner.NewBottleneckAnalyzer(g, planner.NewReachabilityIndex(g))

	// Depth above the window behaves like the maximum, not an error.
	wide, err := a.Rank(planner.BottleneckOptions{Depth: 99})
	require.NoError(t, err)
	capped, err := a.Rank(planner.BottleneckOptions{Depth: 3})
	require.NoError(t, err)
	assert.Equal(t, capped, wide)
}
