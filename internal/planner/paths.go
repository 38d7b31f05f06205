package planner

import "sort"

// RankStrategy selects the priority function used to order eligible courses.
// Varying the strategy produces diverse but equally valid plans.
type RankStrategy int

const (
	// RankUnlocksFirst schedules courses that unlock the most others first.
	RankUnlocksFirst RankStrategy = iota
	// RankShallowFirst clears shallow prerequisite chains first.
	RankShallowFirst
	// RankLexicographic orders purely by course code.
	RankLexicographic
)

// DefaultPathLimit caps how many alternative orderings Explore returns when
// the caller does not say.
const DefaultPathLimit = 5

// PathExplorer enumerates alternative valid orderings of a required-course
// set consistent with prerequisite constraints.
type PathExplorer struct {
	graph *Graph
	reach *ReachabilityIndex
}

// NewPathExplorer creates an explorer over g.
func NewPathExplorer(g *Graph, reach *ReachabilityIndex) *PathExplorer {
	return &PathExplorer{graph: g, reach: reach}
}

// Explore returns up to k distinct valid total orderings of the courses in
// required that the student has not completed. The three rank strategies
// seed the candidate list; bounded backtracking enumeration fills it to k.
// Every returned path independently satisfies the prerequisite ordering
// invariant. A cycle among the remaining courses fails with
// CycleDetectedError.
func (e *PathExplorer) Explore(student StudentState, required []string, k int) ([][]string, error) {
	if k <= 0 {
		k = DefaultPathLimit
	}

	missing, prereqs, err := e.remainingSubgraph(student, required)
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 {
		return [][]string{}, nil
	}

	ranks, err := e.rankMissing(missing, prereqs)
	if err != nil {
		return nil, err
	}

	var paths [][]string
	seen := make(map[string]bool)

	for _, strategy := range []RankStrategy{RankUnlocksFirst, RankShallowFirst, RankLexicographic} {
		order, err := e.greedyOrder(missing, prereqs, ranks, strategy)
		if err != nil {
			return nil, err
		}
		sig := joinPath(order)
		if !seen[sig] {
			seen[sig] = true
			paths = append(paths, order)
		}
		if len(paths) == k {
			return paths, nil
		}
	}

	// Backtracking enumeration over lexicographic candidate order, capped at
	// k distinct orderings.
	codes := sortedSet(missing)
	placed := make(map[string]bool, len(missing))
	var order []string
	var enumerate func() bool
	enumerate = func() bool {
		if len(order) == len(codes) {
			sig := joinPath(order)
			if !seen[sig] {
				seen[sig] = true
				paths = append(paths, append([]string(nil), order...))
			}
			return len(paths) >= k
		}
		for _, code := range codes {
			if placed[code] {
				continue
			}
			ready := true
			for _, p := range prereqs[code] {
				if !placed[p] {
					ready = false
					break
				}
			}
			if !ready {
				continue
			}
			placed[code] = true
			order = append(order, code)
			done := enumerate()
			order = order[:len(order)-1]
			placed[code] = false
			if done {
				return true
			}
		}
		return false
	}
	enumerate()

	return paths, nil
}

// RecommendedSequence groups the remaining required courses into
// prerequisite levels: each batch contains courses whose remaining
// prerequisites are all in earlier batches, sorted within the batch. This is
// the degree planner's recommended semester grouping, unconstrained by
// offerings or caps.
func (e *PathExplorer) RecommendedSequence(student StudentState, required []string) ([][]string, error) {
	missing, prereqs, err := e.remainingSubgraph(student, required)
	if err != nil {
		return nil, err
	}

	var sequence [][]string
	pending := make(map[string]bool, len(missing))
	for code := range missing {
		pending[code] = true
	}

	for len(pending) > 0 {
		var batch []string
		for code := range pending {
			blocked := false
			for _, p := range prereqs[code] {
				if pending[p] {
					blocked = true
					break
				}
			}
			if !blocked {
				batch = append(batch, code)
			}
		}
		if len(batch) == 0 {
			return nil, &CycleDetectedError{Cycle: e.cycleAmong(pending, prereqs)}
		}
		sort.Strings(batch)
		sequence = append(sequence, batch)
		for _, code := range batch {
			delete(pending, code)
		}
	}

	return sequence, nil
}

// remainingSubgraph resolves required minus completed and restricts each
// course's direct prerequisites to that remaining set.
func (e *PathExplorer) remainingSubgraph(student StudentState, required []string) (map[string]bool, map[string][]string, error) {
	completed := student.CompletedSet()

	missing := make(map[string]bool)
	for _, code := range required {
		if !e.graph.Has(code) {
			return nil, nil, NewCourseNotFound(code)
		}
		if !completed[code] {
			missing[code] = true
		}
	}

	prereqs := make(map[string][]string, len(missing))
	for code := range missing {
		for _, p := range e.graph.forward[code] {
			if missing[p] {
				prereqs[code] = append(prereqs[code], p)
			}
		}
	}
	return missing, prereqs, nil
}

// rankMissing computes per-course unlock counts and chain depths within the
// remaining subgraph.
func (e *PathExplorer) rankMissing(missing map[string]bool, prereqs map[string][]string) (map[string]rankKey, error) {
	// dependents within the subgraph
	dependents := make(map[string]int)
	for _, ps := range prereqs {
		for _, p := range ps {
			dependents[p]++
		}
	}

	depthMemo := make(map[string]int)
	visiting := make(map[string]bool)
	var depth func(code string) (int, error)
	depth = func(code string) (int, error) {
		if d, ok := depthMemo[code]; ok {
			return d, nil
		}
		if visiting[code] {
			return 0, &CycleDetectedError{Cycle: []string{code}}
		}
		visiting[code] = true
		best := 0
		for _, p := range prereqs[code] {
			d, err := depth(p)
			if err != nil {
				return 0, err
			}
			if d+1 > best {
				best = d + 1
			}
		}
		visiting[code] = false
		depthMemo[code] = best
		return best, nil
	}

	ranks := make(map[string]rankKey, len(missing))
	for code := range missing {
		d, err := depth(code)
		if err != nil {
			return nil, err
		}
		ranks[code] = rankKey{code: code, unlocks: dependents[code], depth: d}
	}
	return ranks, nil
}

// greedyOrder builds one total ordering by repeatedly admitting the best
// eligible course under the given strategy.
func (e *PathExplorer) greedyOrder(missing map[string]bool, prereqs map[string][]string, ranks map[string]rankKey, strategy RankStrategy) ([]string, error) {
	placed := make(map[string]bool, len(missing))
	order := make([]string, 0, len(missing))

	for len(order) < len(missing) {
		var candidates []rankKey
		for code := range missing {
			if placed[code] {
				continue
			}
			ready := true
			for _, p := range prereqs[code] {
				if !placed[p] {
					ready = false
					break
				}
			}
			if ready {
				candidates = append(candidates, ranks[code])
			}
		}
		if len(candidates) == 0 {
			pending := make(map[string]bool)
			for code := range missing {
				if !placed[code] {
					pending[code] = true
				}
			}
			return nil, &CycleDetectedError{Cycle: e.cycleAmong(pending, prereqs)}
		}

		sort.Slice(candidates, func(i, j int) bool {
			return lessByStrategy(candidates[i], candidates[j], strategy)
		})
		best := candidates[0]
		placed[best.code] = true
		order = append(order, best.code)
	}
	return order, nil
}

// lessByStrategy orders two rank keys under a strategy; course code ascending
// is always the final tie-break.
func lessByStrategy(a, b rankKey, strategy RankStrategy) bool {
	switch strategy {
	case RankShallowFirst:
		if a.depth != b.depth {
			return a.depth < b.depth
		}
		if a.unlocks != b.unlocks {
			return a.unlocks > b.unlocks
		}
	case RankLexicographic:
		// fall through to the code comparison
	default: // RankUnlocksFirst
		if a.unlocks != b.unlocks {
			return a.unlocks > b.unlocks
		}
		if a.depth != b.depth {
			return a.depth < b.depth
		}
	}
	return a.code < b.code
}

// cycleAmong recovers a concrete cycle from a stuck pending set for error
// context.
func (e *PathExplorer) cycleAmong(pending map[string]bool, prereqs map[string][]string) []string {
	// Walk prerequisite edges inside the pending set until a repeat.
	start := sortedSet(pending)[0]
	walk := []string{start}
	at := map[string]int{start: 0}
	current := start
	for {
		var next string
		for _, p := range prereqs[current] {
			if pending[p] {
				next = p
				break
			}
		}
		if next == "" {
			// Should not happen for a genuinely stuck set; report the walk.
			return rotateToSmallest(walk)
		}
		if idx, seen := at[next]; seen {
			return rotateToSmallest(walk[idx:])
		}
		at[next] = len(walk)
		walk = append(walk, next)
		current = next
	}
}

func joinPath(path []string) string {
	sig := ""
	for _, code := range path {
		sig += code + "\x1f"
	}
	return sig
}
