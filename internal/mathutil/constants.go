package mathutil

// Numerical stability thresholds
const (
	// sincSingularityThreshold bounds the neighborhood of zero where
	// sin(πx)/(πx) is replaced by its analytic limit 1. The value is an
	// implementation choice inherited from the reference resampler, not a
	// derived error bound.
	sincSingularityThreshold = 0.0001
)
