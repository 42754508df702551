package main

import (
	"fmt"

	kernels "github.com/tphakala/go-image-kernels"
)

const (
	// Kernel sampling parameters
	sampleStep = 0.25 // Kernel sample spacing in source-pixel units

	// Weight window analysis
	numPhases = 8 // Fractional phases to test per kernel

	// Spectrum analysis parameters
	spectrumOversample = 64   // Kernel samples per source pixel
	passbandFreq       = 0.25 // Passband probe (cycles per source pixel)
	nyquistFreq        = 0.5  // Source Nyquist rate
	stopbandFreq       = 1.0  // First replica band probe
)

func main() {
	all := []kernels.Kernel{
		kernels.NewNearest(),
		kernels.NewTriangle(),
		kernels.NewBicubic(),
		kernels.NewMitchell(),
		kernels.NewCatmullRom(),
		kernels.NewBSpline(),
		kernels.NewLanczos2(),
		kernels.NewLanczos3(),
	}

	for _, k := range all {
		fmt.Printf("=== %s (support %.1f) ===\n", k.Name(), k.Support())

		// Sample table across the positive half of the support
		fmt.Println("Samples:")
		for x := 0.0; x <= k.Support(); x += sampleStep {
			fmt.Printf("  w(%.2f) = %+.8f\n", x, k.Weight(x))
		}

		// Weight window sums per fractional phase. Raw sums show how far
		// from unity the unnormalized kernel drifts as the window slides;
		// normalized windows always sum to 1.
		fmt.Println("Raw window sums per phase:")
		for p := range numPhases {
			phase := float64(p) / numPhases
			var rawSum float64
			win := kernels.ComputeWindow(k, phase)
			for i := range win.Weights {
				rawSum += k.Weight(phase - float64(win.First+i))
			}
			fmt.Printf("  phase %.3f: taps=%d rawSum=%.10f\n",
				phase, len(win.Weights), rawSum)
		}

		// Frequency response summary
		spectrum, err := kernels.ComputeSpectrum(k, spectrumOversample)
		if err != nil {
			fmt.Printf("Spectrum error: %v\n\n", err)
			continue
		}
		fmt.Printf("Response: passband(%.2f)=%.6f nyquist(%.2f)=%.6f stopband(%.2f)=%.6f\n\n",
			passbandFreq, spectrum.MagnitudeAt(passbandFreq),
			nyquistFreq, spectrum.MagnitudeAt(nyquistFreq),
			stopbandFreq, spectrum.MagnitudeAt(stopbandFreq))
	}
}
