package fit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// MaxIterations bounds the Gauss-Newton iteration count per cell.
	MaxIterations = 40
	// convergence threshold on the squared residual norm
	residualTolerance = 1e-6
)

// FitStatus classifies the outcome of a single cell's fit.
type FitStatus int

const (
	// Converged means the squared residual dropped below tolerance.
	Converged FitStatus = iota
	// MaxIterationsReached means the iteration budget ran out; the
	// coefficients are the best found and the residual says how good.
	MaxIterationsReached
	// SingularSystem means the Jacobian could not be decomposed. The
	// cell is recorded as failed but the batch continues.
	SingularSystem
)

func (s FitStatus) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max iterations"
	case SingularSystem:
		return "singular system"
	}
	return "unknown"
}

// FitResult is what one invocation of the solver produces.
type FitResult struct {
	Coeffs   [3]float64
	Residual float64
	Status   FitStatus
}

// solve3 computes delta with jac * delta = residual using LU
// decomposition with partial pivoting. It reports failure instead of
// returning garbage when the system is singular. Singularity is
// judged relative to the scale of the system: the determinant is
// compared against the product of the row norms (Hadamard's bound),
// so a well conditioned but small scaled Jacobian, which a saturated
// sigmoid routinely produces, still solves.
func solve3(jac [3][3]float64, residual [3]float64) (delta [3]float64, ok bool) {
	scale := 1.0
	for i := range 3 {
		scale *= math.Max(math.Abs(jac[i][0]), math.Max(math.Abs(jac[i][1]), math.Abs(jac[i][2])))
	}
	if scale == 0 {
		return delta, false
	}
	a := mat.NewDense(3, 3, []float64{
		jac[0][0], jac[0][1], jac[0][2],
		jac[1][0], jac[1][1], jac[1][2],
		jac[2][0], jac[2][1], jac[2][2],
	})
	var lu mat.LU
	lu.Factorize(a)
	if d := lu.Det(); math.Abs(d) < 1e-15*scale || math.IsNaN(d) {
		return delta, false
	}
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(3, residual[:])); err != nil {
		return delta, false
	}
	for j := range 3 {
		delta[j] = x.AtVec(j)
	}
	return delta, true
}

// Fit runs Gauss-Newton from the default starting coefficients until
// the target color is matched. The returned error is reserved for
// invariant violations (non-finite values) that must halt the whole
// run; numerical failure of a single cell comes back as a typed
// status instead.
func (b *Basis) Fit(target [3]float64) (FitResult, error) {
	coeffs := InitCoeffs()
	r := 0.0
	status := MaxIterationsReached
	for range MaxIterations {
		ClampCoeffs(&coeffs)
		residual, err := b.evalResidual(coeffs, target)
		if err != nil {
			return FitResult{}, err
		}
		jac, err := b.evalJacobian(coeffs, target)
		if err != nil {
			return FitResult{}, err
		}
		delta, ok := solve3(jac, residual)
		if !ok {
			return FitResult{Coeffs: coeffs, Residual: math.Sqrt(r), Status: SingularSystem}, nil
		}
		r = 0.0
		for j := range 3 {
			coeffs[j] -= delta[j]
			r += residual[j] * residual[j]
		}
		if r < residualTolerance {
			status = Converged
			break
		}
	}
	return FitResult{Coeffs: coeffs, Residual: math.Sqrt(r), Status: status}, nil
}
