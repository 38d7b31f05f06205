package planner

import "sort"

// Default bottleneck thresholds and the depth window allowed for the
// bounded prerequisite count.
const (
	DefaultMinDependents    = 3
	DefaultMinPrerequisites = 2
	minBottleneckDepth      = 1
	maxBottleneckDepth      = 3
)

// BottleneckOptions are caller-supplied thresholds for bottleneck ranking.
// Zero values select the defaults; Depth is clamped to 1..3.
type BottleneckOptions struct {
	MinDependents    int
	MinPrerequisites int
	Depth            int
}

func (o BottleneckOptions) normalized() BottleneckOptions {
	if o.MinDependents <= 0 {
		o.MinDependents = DefaultMinDependents
	}
	if o.MinPrerequisites <= 0 {
		o.MinPrerequisites = DefaultMinPrerequisites
	}
	if o.Depth < minBottleneckDepth {
		o.Depth = maxBottleneckDepth
	}
	if o.Depth > maxBottleneckDepth {
		o.Depth = maxBottleneckDepth
	}
	return o
}

// BottleneckCourse is one ranked entry: a course many others wait on.
type BottleneckCourse struct {
	Code string `json:"course"`
	// Unlocks counts distinct direct dependents.
	Unlocks int `json:"unlocks"`
	// TotalPrereqs is the size of the depth-bounded transitive prerequisite
	// set.
	TotalPrereqs int `json:"totalPrerequisites"`
}

// BottleneckAnalyzer ranks courses by how many courses they unlock versus
// how many prerequisites they demand.
type BottleneckAnalyzer struct {
	graph *Graph
	reach *ReachabilityIndex
}

// NewBottleneckAnalyzer creates an analyzer over g.
func NewBottleneckAnalyzer(g *Graph, reach *ReachabilityIndex) *BottleneckAnalyzer {
	return &BottleneckAnalyzer{graph: g, reach: reach}
}

// Rank returns every course satisfying both thresholds, ordered by unlocks
// descending, then total prerequisites descending, then course code
// ascending.
func (a *BottleneckAnalyzer) Rank(opts BottleneckOptions) ([]BottleneckCourse, error) {
	opts = opts.normalized()

	var ranked []BottleneckCourse
	for _, code := range a.graph.Codes() {
		unlocks := len(a.graph.DirectDependents(code))
		if unlocks < opts.MinDependents {
			continue
		}
		reach, err := a.reach.TransitivePrerequisites(code, opts.Depth)
		if err != nil {
			return nil, err
		}
		if len(reach.Courses) < opts.MinPrerequisites {
			continue
		}
		ranked = append(ranked, BottleneckCourse{
			Code:         code,
			Unlocks:      unlocks,
			TotalPrereqs: len(reach.Courses),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Unlocks != ranked[j].Unlocks {
			return ranked[i].Unlocks > ranked[j].Unlocks
		}
		if ranked[i].TotalPrereqs != ranked[j].TotalPrereqs {
			return ranked[i].TotalPrereqs > ranked[j].TotalPrereqs
		}
		return ranked[i].Code < ranked[j].Code
	})
	return ranked, nil
}
