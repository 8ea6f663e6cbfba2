// Package fit inverts tristimulus integration: given a target color it
// recovers the three coefficients of a sigmoid-wrapped quadratic whose
// reflectance, integrated against the CIE curves and an illuminant,
// reproduces that color.
package fit

import (
	"github.com/kovidgoyal/spectra/cie"
)

// FineSamples subdivides every 5nm segment of the matching function
// tables into three, so that composite Simpson 3/8 quadrature lands
// its evaluation points on segment boundaries.
const FineSamples = (cie.Samples-1)*3 + 1

// Basis carries everything the solver needs for one gamut selection:
// the quadrature-weighted tristimulus contribution of each fine grid
// sample. Built once, read-only afterwards.
type Basis struct {
	Gamut      cie.Gamut
	Weight     [FineSamples]float64
	RGB        [3][FineSamples]float64
	WhitePoint cie.Vec3
	RGBToXYZ   cie.Mat3
	XYZToRGB   cie.Mat3
}

// NewBasis integrates the CIE curves against the gamut's illuminant
// with composite Simpson 3/8 weights over the full spectral range.
func NewBasis(g cie.Gamut) *Basis {
	b := &Basis{
		Gamut:    g,
		RGBToXYZ: g.RGBToXYZ(),
		XYZToRGB: g.XYZToRGB(),
	}
	illuminant := g.Illuminant()
	h := (cie.LambdaMax - cie.LambdaMin) / float64(FineSamples-1)
	for i := range FineSamples {
		lambda := cie.LambdaMin + float64(i)*h
		x, y, z := cie.CMF(lambda)
		in := illuminant(lambda)

		weight := 3.0 / 8.0 * h
		switch {
		case i == 0 || i == FineSamples-1:
		case (i-1)%3 == 2:
			weight *= 2
		default:
			weight *= 3
		}

		b.Weight[i] = weight
		xyz := cie.Vec3{x, y, z}
		rgb := b.XYZToRGB.MulVec(xyz)
		for k := range 3 {
			b.RGB[k][i] += rgb[k] * in * weight
			b.WhitePoint[k] += xyz[k] * in * weight
		}
	}
	return b
}
