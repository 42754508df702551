// Package mathutil provides mathematical functions for resampling kernel
// evaluation.
package mathutil

import (
	"math"
)

// Sinc computes the normalized sine cardinal function: sin(πx)/(πx).
//
// This is the π-scaled sinc used in windowed-sinc kernel construction, not
// the unnormalized sin(x)/x. The expression is a 0/0 form at x = 0, and the
// division amplifies rounding error for arguments near zero, so inside a
// small neighborhood of zero the analytic limit 1 is returned instead. The
// kernel is smooth there, so the substitution does not affect resampling
// quality.
//
// The threshold matches the reference resampler exactly; tightening it
// shifts output bit patterns near zero.
func Sinc(x float64) float64 {
	if math.Abs(x) > sincSingularityThreshold {
		px := math.Pi * x
		return math.Sin(px) / px
	}
	return 1.0
}
