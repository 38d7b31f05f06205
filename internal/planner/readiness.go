package planner

import "sort"

// Readiness status labels surfaced to callers.
const (
	StatusReadyNow    = "Ready Now"
	StatusAlmostReady = "Almost Ready"
	StatusNotReady    = "Not Ready"
)

// DefaultAlmostReadyThreshold is the minimum score labeled "Almost Ready".
const DefaultAlmostReadyThreshold = 75

// ReadinessReport is the engine's answer to "how close is this student to
// taking this course". The score measures direct prerequisites only; a course
// with zero direct prerequisites is always Ready Now.
type ReadinessReport struct {
	Course   string   `json:"course"`
	Score    int      `json:"score"`
	Required []string `json:"requiredPrerequisites"`
	Missing  []string `json:"missingPrerequisites"`
	Status   string   `json:"status"`
}

// EligibilityReport is the transitive counterpart: whether the student may
// actually enroll, considering the full prerequisite chain.
type EligibilityReport struct {
	StudentID string   `json:"studentId"`
	Course    string   `json:"course"`
	Required  []string `json:"required"`
	Completed []string `json:"completed"`
	Missing   []string `json:"missing"`
	CanTake   bool     `json:"canTake"`
	Reason    string   `json:"reason"`
}

// Eligibility reason codes.
const (
	ReasonOK                   = "ok"
	ReasonMissingPrerequisites = "missing_prerequisites"
)

// ReadinessScorer computes readiness and eligibility for one graph.
type ReadinessScorer struct {
	graph *Graph
	reach *ReachabilityIndex
	// AlmostReadyThreshold is caller-configurable; scores at or above it
	// (but below 100) are labeled Almost Ready.
	AlmostReadyThreshold int
}

// NewReadinessScorer creates a scorer with the default threshold.
func NewReadinessScorer(g *Graph, reach *ReachabilityIndex) *ReadinessScorer {
	return &ReadinessScorer{graph: g, reach: reach, AlmostReadyThreshold: DefaultAlmostReadyThreshold}
}

// Score computes a 0-100 readiness score for student against target. The
// score is never cached across students; it is defined only relative to this
// snapshot pair.
func (s *ReadinessScorer) Score(student StudentState, target string) (ReadinessReport, error) {
	if !s.graph.Has(target) {
		return ReadinessReport{}, NewCourseNotFound(target)
	}

	required := s.graph.DirectPrerequisites(target)
	completed := student.CompletedSet()

	var missing []string
	for _, code := range required {
		if !completed[code] {
			missing = append(missing, code)
		}
	}

	score := 100
	if len(required) > 0 && len(missing) > 0 {
		score = 100 * (len(required) - len(missing)) / len(required)
	}

	status := StatusNotReady
	switch {
	case score == 100:
		status = StatusReadyNow
	case score >= s.AlmostReadyThreshold:
		status = StatusAlmostReady
	}

	return ReadinessReport{
		Course:   target,
		Score:    score,
		Required: required,
		Missing:  missing,
		Status:   status,
	}, nil
}

// Eligibility checks whether the full transitive prerequisite chain of target
// is satisfied by the student's completed set. Enrollment never satisfies a
// prerequisite.
func (s *ReadinessScorer) Eligibility(student StudentState, target string) (EligibilityReport, error) {
	reach, err := s.reach.TransitivePrerequisites(target, 0)
	if err != nil {
		return EligibilityReport{}, err
	}

	completed := student.CompletedSet()
	var missing []string
	for _, code := range reach.Courses {
		if !completed[code] {
			missing = append(missing, code)
		}
	}

	completedSorted := make([]string, len(student.Completed))
	copy(completedSorted, student.Completed)
	sort.Strings(completedSorted)

	reason := ReasonOK
	if len(missing) > 0 {
		reason = ReasonMissingPrerequisites
	}

	return EligibilityReport{
		StudentID: student.ID,
		Course:    target,
		Required:  reach.Courses,
		Completed: completedSorted,
		Missing:   missing,
		CanTake:   len(missing) == 0,
		Reason:    reason,
	}, nil
}
