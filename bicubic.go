package kernels

import (
	"math"
)

// Bicubic evaluates the reference cubic convolution kernel at signed
// distance x.
//
// This is the two-piece Keys cubic with sharpness a = -0.5, the kernel most
// image pipelines mean by "bicubic". The kernel is even-symmetric, so x is
// reflected to |x| first, and the weight is exactly 0 for |x| >= 2.
//
// The piecewise forms, with a = -0.5:
//
//	0 <= x <= 1:  (a+2)x³ - (a+3)x² + 1  =  (1.5x - 2.5)x² + 1
//	1 <  x <  2:  ax³ - 5ax² + 8ax - 4a  =  ((ax + 2.5)x - 4)x + 2
//
// Both pieces are evaluated in Horner form in exactly this grouping so that
// outputs are bit-identical to the reference resampler.
func Bicubic(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x <= 1:
		return ((cubicSharpness+2)*x-(cubicSharpness+3))*(x*x) + 1
	case x < cubicSupport:
		return ((cubicSharpness*x+2.5)*x-4)*x + 2
	}
	return 0
}

type bicubicKernel struct{}

func (bicubicKernel) Name() string             { return "bicubic" }
func (bicubicKernel) Support() float64         { return cubicSupport }
func (bicubicKernel) Weight(x float64) float64 { return Bicubic(x) }

// NewBicubic returns the reference cubic convolution kernel (a = -0.5)
// wrapped as a Kernel. Support radius 2.
func NewBicubic() Kernel {
	return bicubicKernel{}
}

// cubicBC is the Mitchell-Netravali generalization of the cubic kernel
// family. The polynomial coefficients are precomputed from the B and C
// parameters at construction; evaluation is two Horner polynomials.
type cubicBC struct {
	name           string
	a0, a2, a3     float64 // |x| < 1 piece: a3·x³ + a2·x² + a0
	b0, b1, b2, b3 float64 // 1 <= |x| < 2 piece
}

func (k *cubicBC) Name() string     { return k.name }
func (k *cubicBC) Support() float64 { return cubicSupport }

func (k *cubicBC) Weight(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1:
		return k.a0 + (x*x)*(k.a2+x*k.a3)
	case x < cubicSupport:
		return k.b0 + x*(k.b1+x*(k.b2+x*k.b3))
	}
	return 0
}

// NewCubicBC returns a kernel from the Mitchell-Netravali cubic family with
// the given B and C parameters. Well-known members: (1/3, 1/3) Mitchell,
// (0, 0.5) Catmull-Rom, (1, 0) the cubic B-spline, (0, 0) Hermite.
// Support radius 2.
func NewCubicBC(b, c float64) Kernel {
	return &cubicBC{
		name: "cubic-bc",
		a0:   1 - b/3,
		a2:   -3 + 2*b + c,
		a3:   2 - 1.5*b - c,
		b0:   4*b/3 + 4*c,
		b1:   -2*b - 8*c,
		b2:   b + 5*c,
		b3:   -b/6 - c,
	}
}

// NewMitchell returns the Mitchell-Netravali kernel (B = C = 1/3), a common
// compromise between ringing and blur for downscaling.
func NewMitchell() Kernel {
	k := NewCubicBC(mitchellB, mitchellC).(*cubicBC)
	k.name = "mitchell"
	return k
}

// NewCatmullRom returns the Catmull-Rom kernel (B = 0, C = 0.5). It is
// analytically identical to [Bicubic].
func NewCatmullRom() Kernel {
	k := NewCubicBC(catmullRomB, catmullRomC).(*cubicBC)
	k.name = "catmull-rom"
	return k
}

// NewBSpline returns the cubic B-spline kernel (B = 1, C = 0). It never
// overshoots but blurs noticeably.
func NewBSpline() Kernel {
	k := NewCubicBC(bsplineB, bsplineC).(*cubicBC)
	k.name = "bspline"
	return k
}
