package planner

import "sort"

// Course type labels derived from graph position.
const (
	TypeFoundation = "Foundation"
	TypeCapstone   = "Capstone"
	TypeCore       = "Core"
	TypeAdvanced   = "Advanced"
	TypeRegular    = "Regular"
)

// CourseMetrics aggregates the structural measurements behind the difficulty
// and impact scores of one course.
type CourseMetrics struct {
	Code              string   `json:"course"`
	Name              string   `json:"name,omitempty"`
	Department        string   `json:"department,omitempty"`
	DirectPrereqs     int      `json:"directPrerequisites"`
	TotalPrereqs      int      `json:"totalPrerequisites"`
	MaxPrereqDepth    int      `json:"maxPrerequisiteDepth"`
	Dependents        int      `json:"dependents"`
	MaxDependentDepth int      `json:"maxDependentDepth"`
	CriticalChain     []string `json:"criticalChain,omitempty"`
	DifficultyScore   int      `json:"difficultyScore"`
	ImpactScore       int      `json:"impactScore"`
	Type              string   `json:"type"`
}

// DifficultyAnalyzer scores every course by how burdensome its prerequisite
// chain is and how much of the catalog depends on it.
type DifficultyAnalyzer struct {
	graph *Graph
	reach *ReachabilityIndex
}

// NewDifficultyAnalyzer creates an analyzer over g.
func NewDifficultyAnalyzer(g *Graph, reach *ReachabilityIndex) *DifficultyAnalyzer {
	return &DifficultyAnalyzer{graph: g, reach: reach}
}

// Analyze measures every course, optionally filtered by department, ordered
// by difficulty descending, then impact descending, then code ascending. A
// cycle anywhere reachable during measurement aborts with
// CycleDetectedError.
func (a *DifficultyAnalyzer) Analyze(department string) ([]CourseMetrics, error) {
	var metrics []CourseMetrics
	for _, code := range a.graph.Codes() {
		course, _ := a.graph.Course(code)
		if department != "" && course.Department != department {
			continue
		}
		m, err := a.Measure(code)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].DifficultyScore != metrics[j].DifficultyScore {
			return metrics[i].DifficultyScore > metrics[j].DifficultyScore
		}
		if metrics[i].ImpactScore != metrics[j].ImpactScore {
			return metrics[i].ImpactScore > metrics[j].ImpactScore
		}
		return metrics[i].Code < metrics[j].Code
	})
	return metrics, nil
}

// Measure computes the metrics of a single course.
func (a *DifficultyAnalyzer) Measure(code string) (CourseMetrics, error) {
	course, err := a.graph.Course(code)
	if err != nil {
		return CourseMetrics{}, err
	}

	prereqs, err := a.reach.TransitivePrerequisites(code, 0)
	if err != nil {
		return CourseMetrics{}, err
	}
	deps, err := a.reach.TransitiveDependents(code, 0)
	if err != nil {
		return CourseMetrics{}, err
	}

	m := CourseMetrics{
		Code:              code,
		Name:              course.Name,
		Department:        course.Department,
		DirectPrereqs:     len(a.graph.DirectPrerequisites(code)),
		TotalPrereqs:      len(prereqs.Courses),
		MaxPrereqDepth:    prereqs.ChainDepth,
		Dependents:        len(deps.Courses),
		MaxDependentDepth: deps.ChainDepth,
		CriticalChain:     a.criticalChain(code),
	}
	m.DifficultyScore = m.TotalPrereqs*2 + m.MaxPrereqDepth*10
	m.ImpactScore = m.Dependents*2 + m.MaxDependentDepth*5
	m.Type = classify(m)
	return m, nil
}

// criticalChain returns the longest prerequisite chain ending at code, the
// course sequence a student must pass through at minimum semesters. Assumes
// acyclicity was just established by the closure calls.
func (a *DifficultyAnalyzer) criticalChain(code string) []string {
	memo := make(map[string][]string)
	var longest func(c string) []string
	longest = func(c string) []string {
		if chain, ok := memo[c]; ok {
			return chain
		}
		var best []string
		for _, p := range a.graph.forward[c] {
			chain := longest(p)
			if len(chain) > len(best) || (len(chain) == len(best) && len(chain) > 0 && chain[0] < best[0]) {
				best = chain
			}
		}
		chain := make([]string, 0, len(best)+1)
		chain = append(chain, best...)
		chain = append(chain, c)
		memo[c] = chain
		return chain
	}
	return longest(code)
}

// classify labels a course by its graph position.
func classify(m CourseMetrics) string {
	switch {
	case m.TotalPrereqs == 0 && m.Dependents > 5:
		return TypeFoundation
	case m.TotalPrereqs > 5 && m.Dependents == 0:
		return TypeCapstone
	case m.Dependents > 3:
		return TypeCore
	case m.TotalPrereqs > 3:
		return TypeAdvanced
	default:
		return TypeRegular
	}
}
