package fit

import (
	"math"

	"github.com/kovidgoyal/spectra/cie"
)

// normalization of the wavelength axis used by the optimiser
const (
	lambdaOffset = cie.LambdaMin
	lambdaScale  = 1.0 / (cie.LambdaMax - cie.LambdaMin)
)

// InitCoeffs is the solver starting point: a flat mid-grey
// reflectance.
func InitCoeffs() [3]float64 { return [3]float64{0.0, 1.0, 0.0} }

// ClampCoeffs rescales the triple uniformly so no coefficient exceeds
// 1000 in magnitude, keeping the solver out of the sigmoid's flat
// tails.
func ClampCoeffs(coeffs *[3]float64) {
	m := math.Max(math.Abs(coeffs[0]), math.Max(math.Abs(coeffs[1]), math.Abs(coeffs[2])))
	if m > 1000 {
		for j := range coeffs {
			coeffs[j] *= 1000 / m
		}
	}
}

// Denormalize rewrites a coefficient triple from the normalized
// wavelength domain into nanometers, which is what gets serialized.
func Denormalize(coeffs [3]float64) [3]float64 {
	a, b, c := coeffs[0], coeffs[1], coeffs[2]
	c0, c1 := lambdaOffset, lambdaScale
	return [3]float64{
		a * c1 * c1,
		b*c1 - 2*a*c0*c1*c1,
		c - b*c0*c1 + a*(c0*c1)*(c0*c1),
	}
}

// Shape is the physically interpretable encoding of a coefficient
// triple: the parabola's curvature, its extremal value and the
// wavelength (in nanometers) where the extremum sits.
type Shape struct {
	Curvature      float64
	Peak           float64
	DominantLambda float64
}

// EncodeShape converts a coefficient triple to its shape encoding.
// Near zero curvature the parabola degenerates to a line, the dominant
// wavelength is undefined and the whole encoding collapses to zero.
func EncodeShape(coeffs [3]float64) Shape {
	d := Denormalize(coeffs)
	a2, b2, c2 := d[0], d[1], d[2]
	if math.Abs(a2) < 1e-12 {
		return Shape{}
	}
	return Shape{
		Curvature:      a2,
		DominantLambda: b2 / (-2.0 * a2),
		Peak:           c2 - b2*b2/(4.0*a2),
	}
}

// Coeffs inverts EncodeShape, returning the triple in the normalized
// wavelength domain. The zero Shape decodes to the zero triple.
func (s Shape) Coeffs() [3]float64 {
	if s.Curvature == 0 {
		return [3]float64{}
	}
	a2 := s.Curvature
	b2 := -2.0 * a2 * s.DominantLambda
	c2 := s.Peak + a2*s.DominantLambda*s.DominantLambda
	c0, c1 := lambdaOffset, lambdaScale
	a := a2 / (c1 * c1)
	b := (b2 + 2*a*c0*c1*c1) / c1
	c := c2 + b*c0*c1 - a*(c0*c1)*(c0*c1)
	return [3]float64{a, b, c}
}
