package analysis

import (
	"errors"
	"fmt"
)

// ErrComputation marks unexpected internal failures during a query. Legitimate
// empty-graph and no-edge cases are not errors; they return empty results.
var ErrComputation = errors.New("computation failed")

// ComputationError wraps an unexpected failure inside one of the analyzer
// queries with the operation that hit it.
type ComputationError struct {
	Op    string // Query that failed (e.g., "ComputeCentrality")
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ComputationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *ComputationError) Is(target error) bool {
	if target == nil {
		return false
	}
	return target == ErrComputation || errors.Is(e.Cause, target)
}

func computationError(op string, cause error) error {
	return &ComputationError{Op: op, Cause: cause}
}
