package kernels

import (
	"math"
)

// Kernel is a resampling weight function with finite support.
//
// Weight maps a signed distance (in source-pixel units) between the
// interpolation point and a source sample to that sample's contribution
// coefficient. Every kernel in this package is even-symmetric, stateless,
// and safe for concurrent use.
type Kernel interface {
	// Name returns a short identifier for the kernel.
	Name() string

	// Support returns the radius beyond which Weight is zero.
	Support() float64

	// Weight returns the contribution of a source sample at signed
	// distance x from the interpolation point.
	Weight(x float64) float64
}

type nearest struct{}

func (nearest) Name() string     { return "nearest" }
func (nearest) Support() float64 { return nearestSupport }

func (nearest) Weight(x float64) float64 {
	// Closed interval so an exact half-pixel tie weights both neighbors
	// equally after normalization instead of producing an empty window.
	if math.Abs(x) <= nearestSupport {
		return 1
	}
	return 0
}

// NewNearest returns the box kernel: the nearest source sample contributes
// with weight 1. Support radius 0.5.
func NewNearest() Kernel {
	return nearest{}
}

type triangle struct{}

func (triangle) Name() string     { return "triangle" }
func (triangle) Support() float64 { return triangleSupport }

func (triangle) Weight(x float64) float64 {
	x = math.Abs(x)
	if x < triangleSupport {
		return 1 - x
	}
	return 0
}

// NewTriangle returns the triangle (bilinear) kernel. Support radius 1.
func NewTriangle() Kernel {
	return triangle{}
}
