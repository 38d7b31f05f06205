package planner

// ReachResult is the outcome of one transitive traversal.
type ReachResult struct {
	// Courses reachable from the origin, excluding the origin itself,
	// sorted ascending.
	Courses []string
	// ChainDepth is the maximum depth actually explored, capped at the bound
	// for depth-limited queries.
	ChainDepth int
	// Partial is true when a depth bound cut the traversal short.
	Partial bool
}

// ReachabilityIndex answers transitive prerequisite and dependent queries
// over one graph using memoized depth-first traversal: each node is fully
// expanded at most once per direction. The index mutates internal caches and
// is meant to live inside a single planning computation; build a fresh one
// per request rather than sharing across goroutines.
type ReachabilityIndex struct {
	graph         *Graph
	prereqClosure map[string][]string
	depClosure    map[string][]string
}

// NewReachabilityIndex creates an index over g.
func NewReachabilityIndex(g *Graph) *ReachabilityIndex {
	return &ReachabilityIndex{
		graph:         g,
		prereqClosure: make(map[string][]string),
		depClosure:    make(map[string][]string),
	}
}

// TransitivePrerequisites returns every course reachable from code via
// outgoing `requires` edges. maxDepth <= 0 means unbounded; a positive bound
// yields a documented-partial result. An unbounded traversal that meets a
// cycle fails with CycleDetectedError instead of looping.
func (ix *ReachabilityIndex) TransitivePrerequisites(code string, maxDepth int) (ReachResult, error) {
	if !ix.graph.Has(code) {
		return ReachResult{}, NewCourseNotFound(code)
	}
	if maxDepth > 0 {
		return ix.bounded(code, ix.graph.forward, maxDepth)
	}
	return ix.unbounded(code, ix.graph.forward, ix.prereqClosure)
}

// TransitiveDependents returns every course that directly or indirectly
// requires code, following incoming edges. Depth semantics match
// TransitivePrerequisites.
func (ix *ReachabilityIndex) TransitiveDependents(code string, maxDepth int) (ReachResult, error) {
	if !ix.graph.Has(code) {
		return ReachResult{}, NewCourseNotFound(code)
	}
	if maxDepth > 0 {
		return ix.bounded(code, ix.graph.reverse, maxDepth)
	}
	return ix.unbounded(code, ix.graph.reverse, ix.depClosure)
}

// unbounded computes the full closure with three-color DFS and memoizes
// completed nodes. A gray revisit is a back-edge, i.e. a cycle.
func (ix *ReachabilityIndex) unbounded(origin string, adj map[string][]string, closure map[string][]string) (ReachResult, error) {
	var stack []string
	state := make(map[string]int) // 0 unvisited, 1 in progress, 2 done

	var visit func(code string) ([]string, error)
	visit = func(code string) ([]string, error) {
		if cached, ok := closure[code]; ok {
			return cached, nil
		}
		state[code] = 1
		stack = append(stack, code)

		set := make(map[string]bool)
		for _, next := range adj[code] {
			switch state[next] {
			case 1:
				return nil, &CycleDetectedError{Cycle: cycleFromStack(stack, next)}
			case 2:
				set[next] = true
				for _, deep := range closure[next] {
					set[deep] = true
				}
			default:
				deeper, err := visit(next)
				if err != nil {
					return nil, err
				}
				set[next] = true
				for _, deep := range deeper {
					set[deep] = true
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[code] = 2
		result := sortedSet(set)
		closure[code] = result
		return result, nil
	}

	courses, err := visit(origin)
	if err != nil {
		return ReachResult{}, err
	}
	return ReachResult{Courses: courses, ChainDepth: ix.depthOf(origin, adj)}, nil
}

// depthOf returns the longest chain length from origin, assuming the closure
// around origin was just verified acyclic.
func (ix *ReachabilityIndex) depthOf(origin string, adj map[string][]string) int {
	memo := make(map[string]int)
	var longest func(code string) int
	longest = func(code string) int {
		if d, ok := memo[code]; ok {
			return d
		}
		best := 0
		for _, next := range adj[code] {
			if d := longest(next) + 1; d > best {
				best = d
			}
		}
		memo[code] = best
		return best
	}
	return longest(origin)
}

// bounded explores breadth-first level by level up to maxDepth. Termination
// is guaranteed by the visited set, but reaching the origin again still
// means the origin sits on a cycle and the query fails.
func (ix *ReachabilityIndex) bounded(origin string, adj map[string][]string, maxDepth int) (ReachResult, error) {
	visited := map[string]bool{origin: true}
	reached := make(map[string]bool)
	frontier := []string{origin}
	depth := 0

	for depth < maxDepth && len(frontier) > 0 {
		var next []string
		for _, code := range frontier {
			for _, nbr := range adj[code] {
				if nbr == origin {
					cycle := []string{origin, code}
					if code == origin {
						cycle = []string{origin}
					}
					return ReachResult{}, &CycleDetectedError{Cycle: cycle}
				}
				if visited[nbr] {
					continue
				}
				visited[nbr] = true
				reached[nbr] = true
				next = append(next, nbr)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
		depth++
	}

	partial := false
	if depth == maxDepth {
		// Anything still on the frontier with unexplored neighbors makes the
		// result partial.
		for _, code := range frontier {
			for _, nbr := range adj[code] {
				if !visited[nbr] {
					partial = true
				}
			}
		}
	}

	return ReachResult{Courses: sortedSet(reached), ChainDepth: depth, Partial: partial}, nil
}

// cycleFromStack extracts the cycle that closes at entry from the current
// DFS stack.
func cycleFromStack(stack []string, entry string) []string {
	for i, code := range stack {
		if code == entry {
			cycle := make([]string, len(stack)-i)
			copy(cycle, stack[i:])
			return rotateToSmallest(cycle)
		}
	}
	// entry not on the stack means a self-edge
	return []string{entry}
}
