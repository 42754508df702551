package kernels

import (
	"math"

	"github.com/tphakala/simd/f64"
)

// Window holds the contribution weights of the source samples inside a
// kernel's support around one fractional source coordinate.
type Window struct {
	// First is the index of the leftmost contributing source sample.
	First int

	// Weights holds one coefficient per source sample, so Weights[i]
	// weights the sample at index First+i. The slice is normalized to
	// unit sum unless the raw sum was too close to zero to divide by.
	Weights []float64
}

// ComputeWindow evaluates k once per source sample within its support
// around the fractional source coordinate center and normalizes the
// resulting weights to sum to 1.
//
// This is the caller-side weight table a resampler builds per destination
// coordinate before applying it to pixel channel values. The function
// allocates only the weight slice; it never touches pixel data.
//
// Index clamping for windows that extend past the image edge is left to the
// caller, which knows the source extent.
func ComputeWindow(k Kernel, center float64) Window {
	support := k.Support()
	if support <= 0 {
		return Window{First: int(math.Round(center))}
	}

	first := int(math.Ceil(center - support))
	last := int(math.Floor(center + support))

	weights := make([]float64, last-first+1)
	for i := range weights {
		weights[i] = k.Weight(center - float64(first+i))
	}

	// Uses SIMD-accelerated sum and scale operations
	sum := f64.Sum(weights)
	if math.Abs(sum) > weightSumThreshold {
		f64.Scale(weights, weights, 1/sum)
	}

	return Window{First: first, Weights: weights}
}
