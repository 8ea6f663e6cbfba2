package fit

import (
	"fmt"
	"math"
)

// finite difference step for the Jacobian
const jacobianEps = 1e-4

// Sigmoid maps the polynomial output smoothly into (0, 1), keeping
// reflectance physical without a hard clamp.
func Sigmoid(x float64) float64 {
	return 0.5*x/math.Sqrt(1.0+x*x) + 0.5
}

// Eval integrates the model against the basis, producing the color the
// coefficient triple represents.
func (b *Basis) Eval(coeffs [3]float64) [3]float64 {
	var out [3]float64
	for i := range FineSamples {
		// the optimiser works on normalized wavelengths
		lambda := float64(i) / FineSamples
		x := 0.0
		for _, c := range coeffs {
			x = x*lambda + c
		}
		s := Sigmoid(x)
		for j := range 3 {
			out[j] += b.RGB[j][i] * s
		}
	}
	return out
}

// evalResidual returns target minus the model's prediction. A
// non-finite value means the fit state is corrupt and the whole run
// must stop, so it is reported as an error rather than a sentinel.
func (b *Basis) evalResidual(coeffs, target [3]float64) ([3]float64, error) {
	out := b.Eval(coeffs)
	var residual [3]float64
	for j := range 3 {
		residual[j] = target[j] - out[j]
		if math.IsNaN(residual[j]) || math.IsInf(residual[j], 0) {
			return residual, fmt.Errorf("non finite residual %v for coefficients %v", residual, coeffs)
		}
	}
	return residual, nil
}

// evalJacobian computes a central finite difference 3x3 Jacobian of
// the residual with respect to the coefficients. There is no closed
// form for the composed sigmoid, polynomial and quadrature.
func (b *Basis) evalJacobian(coeffs, target [3]float64) ([3][3]float64, error) {
	var jac [3][3]float64
	for i := range 3 {
		tmp := coeffs
		tmp[i] -= jacobianEps
		r0, err := b.evalResidual(tmp, target)
		if err != nil {
			return jac, err
		}
		tmp = coeffs
		tmp[i] += jacobianEps
		r1, err := b.evalResidual(tmp, target)
		if err != nil {
			return jac, err
		}
		for j := range 3 {
			jac[j][i] = (r1[j] - r0[j]) / (2 * jacobianEps)
		}
	}
	return jac, nil
}
