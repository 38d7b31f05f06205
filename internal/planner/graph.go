package planner

import "sort"

// Graph is the in-memory prerequisite graph for one snapshot. Forward edges
// point from a course to its direct prerequisites; reverse edges point from a
// course to its direct dependents. A built Graph is read-only and safe for
// concurrent readers.
type Graph struct {
	courses map[string]Course
	forward map[string][]string
	reverse map[string][]string
	codes   []string
}

// NewGraph builds adjacency lists in both directions from a snapshot.
// It fails with a MalformedGraphError if a course code is duplicated or an
// edge references a code absent from the course set. Self-edges are accepted
// here; CycleDetector reports them as anomalies.
func NewGraph(snap Snapshot) (*Graph, error) {
	g := &Graph{
		courses: make(map[string]Course, len(snap.Courses)),
		forward: make(map[string][]string, len(snap.Courses)),
		reverse: make(map[string][]string, len(snap.Courses)),
		codes:   make([]string, 0, len(snap.Courses)),
	}

	for _, c := range snap.Courses {
		if _, exists := g.courses[c.Code]; exists {
			return nil, &MalformedGraphError{Duplicate: c.Code}
		}
		g.courses[c.Code] = c
		g.codes = append(g.codes, c.Code)
	}
	sort.Strings(g.codes)

	// Identical edges are conjunctive duplicates and collapse to one.
	type edgeKey struct{ from, to string }
	seen := make(map[edgeKey]bool, len(snap.Edges))
	for _, e := range snap.Edges {
		if _, ok := g.courses[e.From]; !ok {
			return nil, &MalformedGraphError{From: e.From, To: e.To, Missing: e.From}
		}
		if _, ok := g.courses[e.To]; !ok {
			return nil, &MalformedGraphError{From: e.From, To: e.To, Missing: e.To}
		}
		key := edgeKey{e.From, e.To}
		if seen[key] {
			continue
		}
		seen[key] = true
		g.forward[e.From] = append(g.forward[e.From], e.To)
		g.reverse[e.To] = append(g.reverse[e.To], e.From)
	}

	for code := range g.forward {
		sort.Strings(g.forward[code])
	}
	for code := range g.reverse {
		sort.Strings(g.reverse[code])
	}

	return g, nil
}

// Course looks up a course by code.
func (g *Graph) Course(code string) (Course, error) {
	c, ok := g.courses[code]
	if !ok {
		return Course{}, NewCourseNotFound(code)
	}
	return c, nil
}

// Has reports whether a course code exists in the graph.
func (g *Graph) Has(code string) bool {
	_, ok := g.courses[code]
	return ok
}

// Codes returns all course codes in ascending order.
func (g *Graph) Codes() []string {
	out := make([]string, len(g.codes))
	copy(out, g.codes)
	return out
}

// Len returns the number of courses in the graph.
func (g *Graph) Len() int {
	return len(g.codes)
}

// Credits returns the credit weight of a course, falling back to
// DefaultCredits when the snapshot carries none.
func (g *Graph) Credits(code string) int {
	c, ok := g.courses[code]
	if !ok || c.Credits <= 0 {
		return DefaultCredits
	}
	return c.Credits
}

// DirectPrerequisites returns the sorted direct prerequisites of a course.
func (g *Graph) DirectPrerequisites(code string) []string {
	return copyCodes(g.forward[code])
}

// DirectDependents returns the sorted courses that directly require code.
func (g *Graph) DirectDependents(code string) []string {
	return copyCodes(g.reverse[code])
}

func copyCodes(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// sortedSet converts a string set into a sorted slice.
func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for code := range set {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
