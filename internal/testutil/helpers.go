// Package testutil provides reusable test helper functions for kernel tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance    = 1e-10
	ContinuityTolerance = 1e-6
	ExactTolerance      = 1e-15
)

// AssertEvenSymmetric verifies that f(x) == f(-x) at every probe point.
func AssertEvenSymmetric(t *testing.T, f func(float64) float64, probes []float64, tolerance float64) bool {
	t.Helper()
	for _, x := range probes {
		pos := f(x)
		neg := f(-x)
		if !assert.InDelta(t, pos, neg, tolerance,
			"not even-symmetric at x=%v: f(%v)=%v, f(%v)=%v", x, x, pos, -x, neg) {
			return false
		}
	}
	return true
}

// AssertZeroBeyond verifies that f is exactly zero at and beyond the given
// radius, on both sides.
func AssertZeroBeyond(t *testing.T, f func(float64) float64, radius float64, probes []float64) bool {
	t.Helper()
	for _, d := range probes {
		x := radius + d
		if !assert.Zero(t, f(x), "f(%v) should be zero beyond support %v", x, radius) {
			return false
		}
		if !assert.Zero(t, f(-x), "f(%v) should be zero beyond support %v", -x, radius) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertUnitSum verifies that the elements of a weight slice sum to 1.
func AssertUnitSum(t *testing.T, weights []float64, tolerance float64) bool {
	t.Helper()
	var sum float64
	for _, w := range weights {
		sum += w
	}
	return assert.InDelta(t, 1.0, sum, tolerance,
		"weights sum to %f, want 1", sum)
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}
