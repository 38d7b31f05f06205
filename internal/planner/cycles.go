package planner

import "sort"

// DetectCycles finds circular prerequisite chains. It computes strongly
// connected components (Tarjan, O(V+E)) over the forward edges and reports
// one representative cycle per component of size greater than one, plus every
// self-edge. Each cycle is rotated to start at its smallest course code and
// the list is sorted by that code, so equal inputs always produce equal
// output.
//
// Cycle presence does not prevent other engine operations from running;
// traversals that assume a DAG fail individually with CycleDetectedError.
func (g *Graph) DetectCycles() [][]string {
	t := &tarjanState{
		graph:   g,
		index:   make(map[string]int, g.Len()),
		lowlink: make(map[string]int, g.Len()),
		onStack: make(map[string]bool, g.Len()),
	}

	var components [][]string
	for _, code := range g.codes {
		if _, visited := t.index[code]; !visited {
			components = append(components, t.strongConnect(code)...)
		}
	}

	var cycles [][]string
	for _, comp := range components {
		if len(comp) > 1 {
			cycles = append(cycles, g.representativeCycle(comp))
		}
	}
	// Self-edges are single-node cycles and never form a larger component on
	// their own.
	for _, code := range g.codes {
		for _, prereq := range g.forward[code] {
			if prereq == code {
				cycles = append(cycles, []string{code})
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i][0] < cycles[j][0]
	})
	return cycles
}

type tarjanState struct {
	graph   *Graph
	counter int
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
}

// strongConnect runs Tarjan's algorithm from root and returns the components
// completed during this call.
func (t *tarjanState) strongConnect(root string) [][]string {
	var components [][]string

	t.index[root] = t.counter
	t.lowlink[root] = t.counter
	t.counter++
	t.stack = append(t.stack, root)
	t.onStack[root] = true

	for _, next := range t.graph.forward[root] {
		if _, visited := t.index[next]; !visited {
			components = append(components, t.strongConnect(next)...)
			if t.lowlink[next] < t.lowlink[root] {
				t.lowlink[root] = t.lowlink[next]
			}
		} else if t.onStack[next] && t.index[next] < t.lowlink[root] {
			t.lowlink[root] = t.index[next]
		}
	}

	if t.lowlink[root] == t.index[root] {
		var comp []string
		for {
			top := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[top] = false
			comp = append(comp, top)
			if top == root {
				break
			}
		}
		components = append(components, comp)
	}

	return components
}

// representativeCycle reconstructs one cycle inside a strongly connected
// component by walking edges that stay within the component until a node
// repeats, then canonicalizes the rotation to start at the smallest code.
func (g *Graph) representativeCycle(component []string) []string {
	inComp := make(map[string]bool, len(component))
	for _, code := range component {
		inComp[code] = true
	}

	start := component[0]
	for _, code := range component[1:] {
		if code < start {
			start = code
		}
	}

	walk := []string{start}
	position := map[string]int{start: 0}
	current := start
	for {
		// forward lists are sorted, so the first in-component successor is
		// the deterministic choice.
		var next string
		for _, candidate := range g.forward[current] {
			if inComp[candidate] {
				next = candidate
				break
			}
		}
		if at, seen := position[next]; seen {
			cycle := walk[at:]
			return rotateToSmallest(cycle)
		}
		position[next] = len(walk)
		walk = append(walk, next)
		current = next
	}
}

// rotateToSmallest rotates a cycle so its lexicographically smallest course
// code comes first.
func rotateToSmallest(cycle []string) []string {
	smallest := 0
	for i := 1; i < len(cycle); i++ {
		if cycle[i] < cycle[smallest] {
			smallest = i
		}
	}
	out := make([]string, 0, len(cycle))
	out = append(out, cycle[smallest:]...)
	out = append(out, cycle[:smallest]...)
	return out
}
