package planner

import "sort"

// Default scheduling constraints, matching the catalog's advising policy.
const (
	DefaultMaxCoursesPerSemester = 5
	DefaultMaxCreditsPerSemester = 18
	DefaultTargetSemesters       = 8
)

// Constraints bound one schedule optimization. Zero values select defaults.
type Constraints struct {
	MaxCoursesPerSemester int `json:"maxCoursesPerSemester"`
	MaxCreditsPerSemester int `json:"maxCreditsPerSemester"`
	TargetSemesters       int `json:"targetSemesters"`
}

func (c Constraints) normalized() Constraints {
	if c.MaxCoursesPerSemester <= 0 {
		c.MaxCoursesPerSemester = DefaultMaxCoursesPerSemester
	}
	if c.MaxCreditsPerSemester <= 0 {
		c.MaxCreditsPerSemester = DefaultMaxCreditsPerSemester
	}
	if c.TargetSemesters <= 0 {
		c.TargetSemesters = DefaultTargetSemesters
	}
	return c
}

// ScheduledCourse is one admitted course inside a semester plan.
type ScheduledCourse struct {
	Code          string   `json:"courseCode"`
	Name          string   `json:"courseName,omitempty"`
	Credits       int      `json:"credits"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// SemesterPlan is one semester's assignment.
type SemesterPlan struct {
	Year         int               `json:"year"`
	Term         int               `json:"term"`
	Name         string            `json:"name,omitempty"`
	Courses      []ScheduledCourse `json:"courses"`
	TotalCredits int               `json:"totalCredits"`
}

// SchedulePlan is the optimizer's result. Infeasibility is reported, not
// raised: courses that did not fit within the horizon land in Unscheduled,
// and courses never offered within the horizon land in Unreachable.
type SchedulePlan struct {
	Semesters   []SemesterPlan `json:"semesters"`
	Unscheduled []string       `json:"unscheduled"`
	Unreachable []string       `json:"unreachable"`
}

// ScheduleOptimizer assigns a student's remaining required courses across a
// bounded sequence of future semesters, respecting prerequisite order,
// per-semester caps and semester-specific availability.
type ScheduleOptimizer struct {
	graph *Graph
	reach *ReachabilityIndex
}

// NewScheduleOptimizer creates an optimizer over g.
func NewScheduleOptimizer(g *Graph, reach *ReachabilityIndex) *ScheduleOptimizer {
	return &ScheduleOptimizer{graph: g, reach: reach}
}

// rankKey carries the precomputed priority of one remaining course:
// courses unlocking more of the remaining set go first, shallow prerequisite
// chains go before deep ones, and the course code breaks remaining ties.
type rankKey struct {
	code    string
	unlocks int
	depth   int
}

// Optimize builds a semester-by-semester plan. A prerequisite cycle reachable
// from a required course aborts the whole optimization with
// CycleDetectedError, since no valid ordering can exist. An empty semester
// sequence with a nonempty required set yields a plan with nothing placed,
// not an error.
func (o *ScheduleOptimizer) Optimize(student StudentState, required []string, semesters []SemesterOffering, cons Constraints) (SchedulePlan, error) {
	cons = cons.normalized()

	completed := student.CompletedSet()
	enrolled := student.EnrolledSet()

	// Remaining = required minus completed and currently-enrolled courses.
	remaining := make(map[string]bool)
	for _, code := range required {
		if !o.graph.Has(code) {
			return SchedulePlan{}, NewCourseNotFound(code)
		}
		if !completed[code] && !enrolled[code] {
			remaining[code] = true
		}
	}

	ranks, err := o.rankRemaining(remaining, completed)
	if err != nil {
		return SchedulePlan{}, err
	}

	horizon := semesters
	if len(horizon) > cons.TargetSemesters {
		horizon = horizon[:cons.TargetSemesters]
	}

	scheduled := make(map[string]bool)
	plan := SchedulePlan{Unscheduled: []string{}, Unreachable: []string{}}

	for _, sem := range horizon {
		if len(scheduled) == len(remaining) {
			break
		}
		offered := make(map[string]bool, len(sem.Courses))
		for _, code := range sem.Courses {
			offered[code] = true
		}

		eligible := o.eligibleSet(remaining, scheduled, completed, offered, ranks)

		semPlan := SemesterPlan{Year: sem.Year, Term: sem.Term, Name: sem.Name, Courses: []ScheduledCourse{}}
		for _, key := range eligible {
			if len(semPlan.Courses) >= cons.MaxCoursesPerSemester {
				break
			}
			credits := o.graph.Credits(key.code)
			if semPlan.TotalCredits+credits > cons.MaxCreditsPerSemester {
				// A lighter lower-ranked course may still fit.
				continue
			}
			course, _ := o.graph.Course(key.code)
			semPlan.Courses = append(semPlan.Courses, ScheduledCourse{
				Code:          key.code,
				Name:          course.Name,
				Credits:       credits,
				Prerequisites: o.graph.DirectPrerequisites(key.code),
			})
			semPlan.TotalCredits += credits
			scheduled[key.code] = true
		}
		plan.Semesters = append(plan.Semesters, semPlan)
	}

	// Classify leftovers: never-offered courses are individually unreachable,
	// the rest simply did not fit the horizon.
	offeredAnywhere := make(map[string]bool)
	for _, sem := range horizon {
		for _, code := range sem.Courses {
			offeredAnywhere[code] = true
		}
	}
	for code := range remaining {
		if scheduled[code] {
			continue
		}
		if offeredAnywhere[code] {
			plan.Unscheduled = append(plan.Unscheduled, code)
		} else {
			plan.Unreachable = append(plan.Unreachable, code)
		}
	}
	sort.Strings(plan.Unscheduled)
	sort.Strings(plan.Unreachable)

	return plan, nil
}

// rankRemaining precomputes each remaining course's priority key. Unlock
// counts and chain depths are restricted to the remaining set so already
// completed work does not distort priorities.
func (o *ScheduleOptimizer) rankRemaining(remaining, completed map[string]bool) (map[string]rankKey, error) {
	ranks := make(map[string]rankKey, len(remaining))
	for code := range remaining {
		deps, err := o.reach.TransitiveDependents(code, 0)
		if err != nil {
			return nil, err
		}
		unlocks := 0
		for _, dep := range deps.Courses {
			if remaining[dep] {
				unlocks++
			}
		}

		depth, err := o.remainingDepth(code, remaining)
		if err != nil {
			return nil, err
		}

		ranks[code] = rankKey{code: code, unlocks: unlocks, depth: depth}
	}
	return ranks, nil
}

// remainingDepth is the longest chain of still-remaining prerequisites below
// code. The unbounded reachability call above has already ruled out cycles.
func (o *ScheduleOptimizer) remainingDepth(code string, remaining map[string]bool) (int, error) {
	reach, err := o.reach.TransitivePrerequisites(code, 0)
	if err != nil {
		return 0, err
	}
	inChain := make(map[string]bool, len(reach.Courses))
	for _, c := range reach.Courses {
		if remaining[c] {
			inChain[c] = true
		}
	}

	memo := make(map[string]int)
	var longest func(c string) int
	longest = func(c string) int {
		if d, ok := memo[c]; ok {
			return d
		}
		best := 0
		for _, p := range o.graph.forward[c] {
			if !inChain[p] {
				continue
			}
			if d := longest(p) + 1; d > best {
				best = d
			}
		}
		memo[c] = best
		return best
	}
	return longest(code), nil
}

// eligibleSet returns the ranked courses admissible this semester: required,
// unscheduled, offered now, with every direct prerequisite either completed
// or scheduled in an earlier semester. Courses admitted in the current
// semester never satisfy prerequisites within it.
func (o *ScheduleOptimizer) eligibleSet(remaining, scheduled, completed, offered map[string]bool, ranks map[string]rankKey) []rankKey {
	var eligible []rankKey
	for code := range remaining {
		if scheduled[code] || !offered[code] {
			continue
		}
		ready := true
		for _, prereq := range o.graph.forward[code] {
			if !completed[prereq] && !scheduled[prereq] {
				ready = false
				break
			}
		}
		if ready {
			eligible = append(eligible, ranks[code])
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].unlocks != eligible[j].unlocks {
			return eligible[i].unlocks > eligible[j].unlocks
		}
		if eligible[i].depth != eligible[j].depth {
			return eligible[i].depth < eligible[j].depth
		}
		return eligible[i].code < eligible[j].code
	})
	return eligible
}
