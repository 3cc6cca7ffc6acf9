package nest

import (
	"fmt"
	"strings"
)

// ErrorKind is a classification of traversal error.
type ErrorKind string

const (
	InvalidLevel       ErrorKind = "invalid_level"
	StructuralMismatch ErrorKind = "structural_mismatch"
)

// TraversalError reports a violated precondition of a mapping operation.
// Failures of the caller's transformation function are never wrapped in a
// TraversalError; they propagate to the caller unchanged.
type TraversalError struct {
	Kind    ErrorKind
	Message string
	// The requested level for the InvalidLevel kind
	Level int
	// The indexes descended to reach the offending node, when known
	Path []int
}

func (e *TraversalError) Error() string {
	switch e.Kind {
	case InvalidLevel:
		return fmt.Sprintf("invalid level: %d (must be >= 0)", e.Level)
	case StructuralMismatch:
		return fmt.Sprintf("structural mismatch: %s", e.Message)
	default:
		return e.Message
	}
}

// Helper constructors
func NewInvalidLevelError(level int) *TraversalError {
	return &TraversalError{Kind: InvalidLevel, Level: level}
}

func NewStructuralMismatchError(msg string) *TraversalError {
	return &TraversalError{Kind: StructuralMismatch, Message: msg}
}

func newMismatchAtPath(path []int, remaining int, found Kind) *TraversalError {
	what := "a leaf"
	if found == "" {
		what = "an empty node"
	}
	return &TraversalError{
		Kind:    StructuralMismatch,
		Message: fmt.Sprintf("expected a sequence at %s with %d level(s) left to descend, found %s", pathString(path), remaining, what),
		Path:    append([]int(nil), path...),
	}
}

func pathString(path []int) string {
	if len(path) == 0 {
		return "the root"
	}
	var b strings.Builder
	b.WriteString("index ")
	for _, i := range path {
		fmt.Fprintf(&b, "[%d]", i)
	}
	return b.String()
}
