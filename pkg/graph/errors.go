package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrEmptyAdjacency = errors.New("adjacency mapping is empty")
	ErrEmptyNodeID    = errors.New("node identifier is empty")
	ErrNodeNotFound   = errors.New("node not found")
)

// GraphError provides structured error information for graph construction
// and lookup failures.
type GraphError struct {
	Op     string // Operation that failed (e.g., "Build", "AddEdge")
	Entity string // Entity type (e.g., "graph", "node", "edge")
	ID     string // Entity identifier (if applicable)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// BuildError creates a graph construction error.
func BuildError(cause error) error {
	return &GraphError{Op: "Build", Entity: "graph", Cause: cause}
}

// NodeError creates a node-scoped error for the given operation.
func NodeError(op, id string, cause error) error {
	return &GraphError{Op: op, Entity: "node", ID: id, Cause: cause}
}

// EdgeError creates an edge-scoped error for the given operation.
func EdgeError(op, key string, cause error) error {
	return &GraphError{Op: op, Entity: "edge", ID: key, Cause: cause}
}

// IsConstruction returns true if the error indicates invalid construction input.
func IsConstruction(err error) bool {
	return errors.Is(err, ErrEmptyAdjacency) || errors.Is(err, ErrEmptyNodeID)
}
