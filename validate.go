package shape

import (
	"math"
	"slices"
)

// Limits on generated geometry. Polygon sides, star points and grid lines
// per axis above these are rejected by the setters.
const (
	MaxVertices  = 1 << 16
	MaxGridLines = 1 << 16
)

// ValidateNumeric reports whether every value is a finite number. NaN and
// ±Inf play the role of non-numeric input; setters reject them.
func ValidateNumeric(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ValidateEnum reports whether value is one of allowed.
func ValidateEnum[T comparable](value T, allowed ...T) bool {
	return slices.Contains(allowed, value)
}

// enum is implemented by the closed enumerations of package surface.
type enum interface {
	Valid() bool
	String() string
}

// The check helpers below return nil or a *ValidationError; callers hand
// the result to common.fail.

func checkNumeric(op, field string, values ...float64) error {
	if !ValidateNumeric(values...) {
		return invalid(op, field, "must be a finite number")
	}
	return nil
}

func checkNonNegative(op, field string, values ...float64) error {
	if err := checkNumeric(op, field, values...); err != nil {
		return err
	}
	for _, v := range values {
		if v < 0 {
			return invalid(op, field, "must not be negative")
		}
	}
	return nil
}

func checkPositive(op, field string, values ...float64) error {
	if err := checkNumeric(op, field, values...); err != nil {
		return err
	}
	for _, v := range values {
		if v <= 0 {
			return invalid(op, field, "must be positive")
		}
	}
	return nil
}

func checkEnum(op, field string, e enum) error {
	if !e.Valid() {
		return invalid(op, field, "unknown value "+e.String())
	}
	return nil
}
