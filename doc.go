// Package kernels provides the resampling weight kernels used by image
// scaling pipelines, in pure Go.
//
// The library implements the continuous kernel functions a resampler
// evaluates when mapping destination pixel coordinates back to source image
// space: a piecewise cubic convolution kernel (Keys 1981, a = -0.5) and a
// Lanczos-3 windowed sinc, plus the surrounding kernel family (nearest,
// triangle, the Mitchell-Netravali cubic B/C family, and Lanczos with a
// configurable lobe count).
//
// # Features
//
//   - Reference bicubic and Lanczos-3 evaluators matching the well-known
//     definitions exactly, including the numerically stable sinc branch at zero
//   - A [Kernel] interface carrying each evaluator together with its support
//     radius, so resamplers can select kernels generically
//   - Normalized weight-window computation for fractional source coordinates,
//     with SIMD-accelerated normalization via github.com/tphakala/simd
//   - Kernel frequency-response analysis backed by gonum's FFT
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// The two reference evaluators are plain functions from a signed distance
// (in source-pixel units) to a weight:
//
//	w := kernels.Bicubic(0.5)  // 0.5625
//	w = kernels.Lanczos(1.5)   // ≈ -0.1351
//
// For generic use, construct a [Kernel] and compute a normalized weight
// window around a fractional source position:
//
//	k := kernels.NewLanczos3()
//	win := kernels.ComputeWindow(k, 12.375)
//	for i, w := range win.Weights {
//	    accumulate(src[win.First+i], w)
//	}
//
// # Scope
//
// This package is the mathematical core only. It performs no image I/O, no
// pixel buffer management, and no convolution over rows or columns; the
// calling resampler iterates source pixels within each kernel's support,
// applies the weights to channel values, and handles color spaces.
//
// # Thread Safety
//
// Every kernel is a pure function of its input. All evaluators and helpers
// are stateless and safe for unsynchronized concurrent use from any number
// of goroutines.
package kernels
