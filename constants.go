package kernels

// Cubic convolution constants
const (
	// cubicSharpness is the free parameter a of the cubic convolution
	// family (Keys 1981). Fixed at -0.5, the Catmull-Rom-like value used
	// by most image resamplers.
	cubicSharpness = -0.5

	// cubicSupport is the support radius of the two-piece cubic kernel.
	cubicSupport = 2.0
)

// Lanczos kernel constants
const (
	// lanczos3Lobes is the lobe count of the reference Lanczos kernel.
	lanczos3Lobes = 3

	// lanczos2Lobes is the lobe count of the sharper two-lobe variant.
	lanczos2Lobes = 2
)

// Simple kernel support radii
const (
	nearestSupport  = 0.5
	triangleSupport = 1.0
)

// Mitchell-Netravali B/C parameters for the named cubic family members
const (
	mitchellB = 1.0 / 3.0
	mitchellC = 1.0 / 3.0

	catmullRomB = 0.0
	catmullRomC = 0.5

	bsplineB = 1.0
	bsplineC = 0.0

	hermiteB = 0.0
	hermiteC = 0.0
)

// Weight window constants
const (
	// weightSumThreshold is the minimum absolute weight sum eligible for
	// unit-sum normalization. Below it the division would amplify noise.
	weightSumThreshold = 1e-10
)

// Spectrum analysis constants
const (
	// defaultSpectrumFFTSize is the minimum FFT length for kernel
	// frequency-response analysis (power of 2 for efficiency).
	defaultSpectrumFFTSize = 1024

	// fftHermitianDivisor is used to calculate unique frequency bins in a
	// real FFT. Due to Hermitian symmetry, a real FFT of size N has
	// N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2

	// minSpectrumOversample is the smallest usable sampling density
	// (kernel samples per source pixel).
	minSpectrumOversample = 2
)
