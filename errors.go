package shape

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories. Every error returned by this package matches exactly one
// of them with errors.Is.
var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("shape: invalid argument")

	// ErrGeometry is matched by every *GeometryError.
	ErrGeometry = errors.New("shape: invalid geometry")

	// ErrResource is matched by every *ResourceError.
	ErrResource = errors.New("shape: resource unavailable")

	// ErrState is matched by every *StateError.
	ErrState = errors.New("shape: invalid state")
)

// Specific causes wrapped by the typed errors.
var (
	// ErrIncomplete reports a Create call before every required parameter
	// was set.
	ErrIncomplete = errors.New("incomplete configuration")

	// ErrControlPoints reports a curve with other than one or two control
	// points.
	ErrControlPoints = errors.New("curve needs one or two control points")

	// ErrNotMade reports a builder used before its first Make.
	ErrNotMade = errors.New("builder used before Make")

	// ErrStale reports a builder whose configuration scope was taken over by
	// a later Make on another builder of the same session.
	ErrStale = errors.New("builder superseded by a later Make")

	// ErrConsumed reports shape parameters or Create on a builder that has
	// already been created and not made again.
	ErrConsumed = errors.New("builder already created")

	// ErrForeignRegion reports a pixel region that was not issued by the
	// session's pixel buffer.
	ErrForeignRegion = errors.New("pixel region not captured or allocated by this session")

	// ErrUnsupported reports an operation the surface cannot perform.
	ErrUnsupported = errors.New("surface does not support operation")
)

// ValidationError reports a rejected setter argument. The configuration is
// left unchanged.
type ValidationError struct {
	Op     string // setter, e.g. "star.Radius"
	Field  string // offending parameter
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("shape: %s: invalid %s: %s", e.Op, e.Field, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// GeometryError reports a configuration that cannot be turned into a path.
// Nothing is drawn.
type GeometryError struct {
	Shape  string
	Reason string
	Err    error
}

func (e *GeometryError) Error() string {
	msg := "shape: " + e.Shape + ": " + e.Err.Error()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *GeometryError) Unwrap() error { return e.Err }

// Is reports whether target is ErrGeometry.
func (e *GeometryError) Is(target error) bool { return target == ErrGeometry }

// ResourceError reports an image source that failed to load or timed out.
// The paint state is left unchanged.
type ResourceError struct {
	URI string
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("shape: load %q: %v", e.URI, e.Err)
}

// Unwrap returns the underlying cause, e.g. context.DeadlineExceeded.
func (e *ResourceError) Unwrap() error { return e.Err }

// Is reports whether target is ErrResource.
func (e *ResourceError) Is(target error) bool { return target == ErrResource }

// StateError reports a call that is not allowed in the builder's or
// region's current state.
type StateError struct {
	Op  string
	Err error
}

func (e *StateError) Error() string {
	return "shape: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause, e.g. ErrStale.
func (e *StateError) Unwrap() error { return e.Err }

// Is reports whether target is ErrState.
func (e *StateError) Is(target error) bool { return target == ErrState }

func invalid(op, field, reason string) *ValidationError {
	return &ValidationError{Op: op, Field: field, Reason: reason}
}

// req is one required parameter of a shape and whether it was set.
type req struct {
	name string
	ok   bool
}

// required returns a *GeometryError wrapping ErrIncomplete that names every
// unset parameter, or nil.
func required(shape string, reqs ...req) error {
	var miss []string
	for _, r := range reqs {
		if !r.ok {
			miss = append(miss, r.name)
		}
	}
	if len(miss) == 0 {
		return nil
	}
	return &GeometryError{Shape: shape, Reason: "missing " + strings.Join(miss, ", "), Err: ErrIncomplete}
}
