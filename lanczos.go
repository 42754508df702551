package kernels

import (
	"fmt"
	"math"

	"github.com/tphakala/go-image-kernels/internal/mathutil"
)

// Lanczos evaluates the reference Lanczos-3 windowed-sinc kernel at signed
// distance x.
//
// The kernel is the product of the central sinc lobe and a sinc-shaped
// window of the same radius:
//
//	|x| < 3:  sinc(x) · sinc(x/3)
//	|x| >= 3: 0
//
// where sinc is the normalized sine cardinal sin(πx)/(πx). The kernel is
// even-symmetric, so x is reflected to |x| first.
func Lanczos(x float64) float64 {
	x = math.Abs(x)
	if x >= lanczos3Lobes {
		return 0
	}
	return mathutil.Sinc(x) * mathutil.Sinc(x/lanczos3Lobes)
}

type lanczosKernel struct {
	lobes float64
	name  string
}

func (k lanczosKernel) Name() string     { return k.name }
func (k lanczosKernel) Support() float64 { return k.lobes }

func (k lanczosKernel) Weight(x float64) float64 {
	x = math.Abs(x)
	if x >= k.lobes {
		return 0
	}
	return mathutil.Sinc(x) * mathutil.Sinc(x/k.lobes)
}

// NewLanczos returns a Lanczos windowed-sinc kernel with the given lobe
// count. The lobe count is also the support radius. Common choices are 3
// and 2; lobes below 1 are clamped to 1.
func NewLanczos(lobes int) Kernel {
	if lobes < 1 {
		lobes = 1
	}
	return lanczosKernel{
		lobes: float64(lobes),
		name:  fmt.Sprintf("lanczos%d", lobes),
	}
}

// NewLanczos3 returns the reference three-lobe Lanczos kernel, identical to
// [Lanczos]. Support radius 3.
func NewLanczos3() Kernel {
	return NewLanczos(lanczos3Lobes)
}

// NewLanczos2 returns the two-lobe Lanczos kernel, a cheaper variant with
// less ringing. Support radius 2.
func NewLanczos2() Kernel {
	return NewLanczos(lanczos2Lobes)
}
