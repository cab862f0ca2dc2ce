package link

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors
var (
	ErrPathNotFound      = errors.New("block-type path not found")
	ErrModeNotFound      = errors.New("mode not found")
	ErrPortNotFound      = errors.New("port not found")
	ErrAmbiguousMode     = errors.New("ambiguous physical mode")
	ErrRangeNotContained = errors.New("pin range not contained in physical port")
	ErrDuplicateEntry    = errors.New("duplicate annotation entry")
	ErrInvalidRecord     = errors.New("invalid annotation record")
	ErrCheckFailed       = errors.New("physical-mode check failed")
)

// LinkError provides structured error information for link operations.
type LinkError struct {
	Op     string   // Operation that failed (e.g., "AnnotateExplicit", "PairPorts")
	Entity string   // Entity type (e.g., "block_type", "mode", "port")
	Name   string   // Entity name (if applicable)
	Path   []string // Block-type path being resolved (if applicable)
	Cause  error    // Underlying error
}

// Error implements the error interface.
func (e *LinkError) Error() string {
	if len(e.Path) > 0 {
		if e.Name != "" {
			return fmt.Sprintf("%s %s %q at %s: %v", e.Op, e.Entity, e.Name, strings.Join(e.Path, "/"), e.Cause)
		}
		return fmt.Sprintf("%s %s at %s: %v", e.Op, e.Entity, strings.Join(e.Path, "/"), e.Cause)
	}
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LinkError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *LinkError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// newError builds a LinkError for the given operation.
func newError(op, entity, name string, path []string, cause error) *LinkError {
	return &LinkError{Op: op, Entity: entity, Name: name, Path: path, Cause: cause}
}
