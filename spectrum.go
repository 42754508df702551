package kernels

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrum holds the frequency response of a kernel.
type Spectrum struct {
	// Frequencies at which the response was evaluated, in cycles per
	// source pixel. Frequencies[0] is DC; 0.5 is the source Nyquist rate.
	Frequencies []float64

	// Magnitude response at each frequency (linear scale, DC gain
	// normalized to 1).
	Magnitude []float64
}

// ComputeSpectrum calculates the magnitude response of a kernel by sampling
// it across its full support at oversample points per source pixel and
// taking a zero-padded real FFT.
//
// The response shows how strongly the kernel attenuates detail near and
// above the source Nyquist frequency, which is what separates the kernel
// families in practice: the triangle kernel rolls off slowly while Lanczos-3
// holds the passband and cuts harder above 0.5 cycles per pixel.
//
// Parameters:
//
//	k: Kernel to analyze
//	oversample: Kernel samples per source pixel (minimum 2; 64 is plenty)
//
// Returns:
//
//	Spectrum with fftSize/2 + 1 points from DC to oversample/2 cycles
//	per pixel, and an error if the arguments are invalid.
func ComputeSpectrum(k Kernel, oversample int) (Spectrum, error) {
	if oversample < minSpectrumOversample {
		return Spectrum{}, fmt.Errorf("invalid oversample: %d (minimum %d)",
			oversample, minSpectrumOversample)
	}

	support := k.Support()
	if support <= 0 || math.IsInf(support, 0) || math.IsNaN(support) {
		return Spectrum{}, fmt.Errorf("invalid kernel support: %f (must be positive and finite)", support)
	}

	// Sample the kernel symmetrically across [-support, support]. The
	// magnitude response is invariant under the implied linear phase
	// shift, so the samples can sit at the start of the FFT frame.
	half := int(math.Ceil(support * float64(oversample)))
	numSamples := 2*half + 1

	// Zero-pad to a power of 2 for frequency resolution and FFT efficiency
	fftSize := defaultSpectrumFFTSize
	for fftSize < numSamples {
		fftSize *= 2
	}

	samples := make([]float64, fftSize)
	for i := range numSamples {
		samples[i] = k.Weight(float64(i-half) / float64(oversample))
	}

	fft := fourier.NewFFT(fftSize)
	coeffs := fft.Coefficients(nil, samples)

	numBins := fftSize/fftHermitianDivisor + 1
	spectrum := Spectrum{
		Frequencies: make([]float64, numBins),
		Magnitude:   make([]float64, numBins),
	}

	binWidth := float64(oversample) / float64(fftSize)
	for i := range numBins {
		spectrum.Frequencies[i] = float64(i) * binWidth
		spectrum.Magnitude[i] = cmplx.Abs(coeffs[i])
	}

	// Normalize DC gain to 1 so kernels with different raw sums compare
	// directly.
	dc := spectrum.Magnitude[0]
	if dc > weightSumThreshold {
		for i := range spectrum.Magnitude {
			spectrum.Magnitude[i] /= dc
		}
	}

	return spectrum, nil
}

// MagnitudeAt returns the magnitude response at the given frequency in
// cycles per source pixel, using the nearest computed bin.
func (s Spectrum) MagnitudeAt(freq float64) float64 {
	if len(s.Frequencies) < 2 {
		return 0
	}
	binWidth := s.Frequencies[1] - s.Frequencies[0]
	idx := int(math.Round(freq / binWidth))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.Magnitude) {
		idx = len(s.Magnitude) - 1
	}
	return s.Magnitude[idx]
}
