package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursegraph/internal/planner"
)

func newScorer(t *testing.T) *planner.ReadinessScorer {
	t.Helper()
	g := catalogGraph(t)
	return planner.NewReadinessScorer(g, planner.NewReachabilityIndex(g))
}

func TestScore_AllPrerequisitesCompleted(t *testing.T) {
	s := newScorer(t)
	student := planner.StudentState{ID: "s1", Completed: []string{"CS125", "MATH241"}}

	rep, err := s.Score(student, "CS225")
	require.NoError(t, err)
	assert.Equal(t, 100, rep.Score)
	assert.Empty(t, rep.Missing)
	assert.Equal(t, planner.StatusReadyNow, rep.Status)
}

func TestScore_HalfCompleted(t *testing.T) {
	s := newScorer(t)
	student := planner.StudentState{ID: "s1", Completed: []string{"CS125"}}

	rep, err := s.Score(student, "CS225")
	require.NoError(t, err)
	assert.Equal(t, 50, rep.Score)
	assert.Equal(t, []string{"MATH241"}, rep.Missing)
	assert.Equal(t, planner.StatusNotReady, rep.Status)
}

func TestScore_NoPrerequisites(t *testing.T) {
	s := newScorer(t)
	student := planner.StudentState{ID: "s1"}

	rep, err := s.Score(student, "CS125")
	require.NoError(t, err)
	assert.Equal(t, 100, rep.Score)
	assert.Equal(t, planner.StatusReadyNow, rep.Status)
}

func TestScore_AlmostReadyThreshold(t *testing.T) {
	// Four direct prerequisites, three completed: 75, right on the threshold.
	snap := planner.Snapshot{
		Courses: []planner.Course{
			{Code: "T"}, {Code: "P1"}, {Code: "P2"}, {Code: "P3"}, {Code: "P4"},
		},
		Edges: []planner.PrerequisiteEdge{
			{From: "T", To: "P1"},
			{From: "T", To: "P2"},
			{From: "T", To: "P3"},
			{From: "T", To: "P4"},
		},
	}
	g, err := planner.NewGraph(snap)
	require.NoError(t, err)
	s := planner.NewReadinessScorer(g, planner.NewReachabilityIndex(g))

	rep, err := s.Score(planner.StudentState{Completed: []string{"P1", "P2", "P3"}}, "T")
	require.NoError(t, err)
	assert.Equal(t, 75, rep.Score)
	assert.Equal(t, planner.StatusAlmostReady, rep.Status)
}

func TestScore_MonotoneInCompletions(t *testing.T) {
	s := newScorer(t)

	none, err := s.Score(planner.StudentState{}, "CS225")
	require.NoError(t, err)
	one, err := s.Score(planner.StudentState{Completed: []string{"CS125"}}, "CS225")
	require.NoError(t, err)
	both, err := s.Score(planner.StudentState{Completed: []string{"CS125", "MATH241"}}, "CS225")
	require.NoError(t, err)

	assert.LessOrEqual(t, none.Score, one.Score)
	assert.LessOrEqual(t, one.Score, both.Score)
}

func TestScore_UnknownCourse(t *testing.T) {
	s := newScorer(t)

	_, err := s.Score(planner.StudentState{}, "CS000")
	require.Error(t, err)
	assert.True(t, planner.IsNotFound(err))
}

func TestEligibility_TransitiveChain(t *testing.T) {
	s := newScorer(t)
	// Direct prerequisites of CS374 are complete, but the chain below them
	// is not.
	student := planner.StudentState{ID: "s1", Completed: []string{"CS225"}}

	rep, err := s.Eligibility(student, "CS374")
	require.NoError(t, err)
	assert.False(t, rep.CanTake)
	assert.Equal(t, planner.ReasonMissingPrerequisites, rep.Reason)
	assert.Equal(t, []string{"CS125", "MATH101", "MATH241"}, rep.Missing)
}

func TestEligibility_FullChainCompleted(t *testing.T) {
	s := newScorer(t)
	student := planner.StudentState{
		ID:        "s1",
		Completed: []string{"CS125", "MATH101", "MATH241", "CS225"},
	}

	rep, err := s.Eligibility(student, "CS374")
	require.NoError(t, err)
	assert.True(t, rep.CanTake)
	assert.Equal(t, planner.ReasonOK, rep.Reason)
	assert.Empty(t, rep.Missing)
}

func TestEligibility_EnrollmentDoesNotCount(t *testing.T) {
	s := newScorer(t)
	student := planner.StudentState{
		ID:        "s1",
		Completed: []string{"CS125", "MATH101"},
		Enrolled:  []string{"MATH241"},
	}

	rep, err := s.Eligibility(student, "CS225")
	require.NoError(t, err)
	assert.False(t, rep.CanTake)
	assert.Contains(t, rep.Missing, "MATH241")
}
