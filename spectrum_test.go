package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-image-kernels/internal/testutil"
)

const (
	testOversample = 64

	// Frequencies in cycles per source pixel
	passbandFreq = 0.1
	nyquistFreq  = 0.5
	stopbandFreq = 1.0
)

// TestComputeSpectrum_Basics verifies shape and DC normalization of the
// computed response.
func TestComputeSpectrum_Basics(t *testing.T) {
	for _, k := range allKernels() {
		t.Run(k.Name(), func(t *testing.T) {
			spectrum, err := ComputeSpectrum(k, testOversample)
			require.NoError(t, err)

			require.NotEmpty(t, spectrum.Frequencies)
			assert.Len(t, spectrum.Magnitude, len(spectrum.Frequencies))
			assert.Zero(t, spectrum.Frequencies[0], "first bin must be DC")
			assert.InDelta(t, 1.0, spectrum.Magnitude[0], testutil.DefaultTolerance,
				"DC gain should normalize to 1")
			testutil.AssertNoNaNOrInf(t, spectrum.Magnitude)
		})
	}
}

// TestComputeSpectrum_InvalidArgs verifies parameter validation.
func TestComputeSpectrum_InvalidArgs(t *testing.T) {
	_, err := ComputeSpectrum(NewBicubic(), 0)
	assert.Error(t, err)

	_, err = ComputeSpectrum(NewBicubic(), 1)
	assert.Error(t, err)

	_, err = ComputeSpectrum(zeroSupportKernel{}, testOversample)
	assert.Error(t, err)
}

// TestComputeSpectrum_LowpassShape verifies each kernel behaves as a
// lowpass: near-unity through the low passband, attenuated well above the
// source Nyquist rate.
func TestComputeSpectrum_LowpassShape(t *testing.T) {
	tests := []struct {
		name        string
		kernel      Kernel
		minPassband float64 // lower bound on response at 0.1 cyc/px
		maxStopband float64 // upper bound on response at 1.0 cyc/px
	}{
		{"Triangle", NewTriangle(), 0.9, 0.1},
		{"Bicubic", NewBicubic(), 0.95, 0.05},
		{"Lanczos3", NewLanczos3(), 0.95, 0.05},
		{"BSpline", NewBSpline(), 0.8, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spectrum, err := ComputeSpectrum(tt.kernel, testOversample)
			require.NoError(t, err)

			passband := spectrum.MagnitudeAt(passbandFreq)
			stopband := spectrum.MagnitudeAt(stopbandFreq)

			assert.Greater(t, passband, tt.minPassband,
				"passband response too low: %f", passband)
			assert.Less(t, stopband, tt.maxStopband,
				"stopband response too high: %f", stopband)
		})
	}
}

// TestComputeSpectrum_Lanczos3SharperThanTriangle verifies the expected
// quality ordering near the Nyquist rate: the windowed sinc holds the
// passband better than the triangle kernel.
func TestComputeSpectrum_Lanczos3SharperThanTriangle(t *testing.T) {
	lanczos, err := ComputeSpectrum(NewLanczos3(), testOversample)
	require.NoError(t, err)
	triangle, err := ComputeSpectrum(NewTriangle(), testOversample)
	require.NoError(t, err)

	const nearNyquist = 0.35
	assert.Greater(t, lanczos.MagnitudeAt(nearNyquist), triangle.MagnitudeAt(nearNyquist),
		"Lanczos-3 should preserve more detail below Nyquist than triangle")
}

// TestSpectrum_MagnitudeAt verifies bin lookup clamping.
func TestSpectrum_MagnitudeAt(t *testing.T) {
	spectrum, err := ComputeSpectrum(NewBicubic(), testOversample)
	require.NoError(t, err)

	assert.Equal(t, spectrum.Magnitude[0], spectrum.MagnitudeAt(0))
	assert.Equal(t, spectrum.Magnitude[0], spectrum.MagnitudeAt(-1))
	last := len(spectrum.Magnitude) - 1
	assert.Equal(t, spectrum.Magnitude[last], spectrum.MagnitudeAt(1e9))

	var empty Spectrum
	assert.Zero(t, empty.MagnitudeAt(passbandFreq))
}
