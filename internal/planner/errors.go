package planner

import (
	"errors"
	"fmt"
	"strings"
)

// MalformedGraphError reports a snapshot that cannot be assembled into a
// valid graph. It is fatal to graph construction and never silently dropped.
type MalformedGraphError struct {
	// From/To identify the offending edge; Missing names the endpoint that is
	// absent from the course set.
	From    string
	To      string
	Missing string
	// Duplicate is set instead when the same course code appears twice.
	Duplicate string
}

func (e *MalformedGraphError) Error() string {
	if e.Duplicate != "" {
		return fmt.Sprintf("malformed graph: duplicate course code %q in snapshot", e.Duplicate)
	}
	return fmt.Sprintf("malformed graph: edge %q -> %q references unknown course %q", e.From, e.To, e.Missing)
}

// NotFoundError reports a lookup of an unknown entity. It is local and
// recoverable; the boundary layer renders it as "not found".
type NotFoundError struct {
	Kind string // "course", "student", "program"
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Code)
}

// NewCourseNotFound returns a NotFoundError for a course code.
func NewCourseNotFound(code string) *NotFoundError {
	return &NotFoundError{Kind: "course", Code: code}
}

// CycleDetectedError carries the offending cycle when an operation that
// assumes a DAG encounters circular prerequisites. It aborts only the
// specific operation requiring acyclicity.
type CycleDetectedError struct {
	Cycle []string
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("prerequisite cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsCycleDetected reports whether err is (or wraps) a CycleDetectedError.
func IsCycleDetected(err error) bool {
	var cd *CycleDetectedError
	return errors.As(err, &cd)
}

// IsMalformedGraph reports whether err is (or wraps) a MalformedGraphError.
func IsMalformedGraph(err error) bool {
	var mg *MalformedGraphError
	return errors.As(err, &mg)
}
