package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/spectra/cie"
)

func TestSigmoidBounded(t *testing.T) {
	// with clamped coefficients the polynomial stays within +-3000
	for _, x := range []float64{-3000, -100, -1, -1e-9, 0, 1e-9, 1, 100, 3000} {
		s := Sigmoid(x)
		require.Greater(t, s, 0.0, "sigmoid(%g)", x)
		require.Less(t, s, 1.0, "sigmoid(%g)", x)
	}
	require.Equal(t, 0.5, Sigmoid(0))
}

func TestClampCoeffs(t *testing.T) {
	c := [3]float64{2000, -500, 100}
	ClampCoeffs(&c)
	require.Equal(t, 1000.0, math.Max(math.Abs(c[0]), math.Max(math.Abs(c[1]), math.Abs(c[2]))))
	// rescale is uniform
	require.InDelta(t, -250, c[1], 1e-12)
	require.InDelta(t, 50, c[2], 1e-12)

	// within bounds nothing changes
	c = [3]float64{10, -20, 30}
	ClampCoeffs(&c)
	require.Equal(t, [3]float64{10, -20, 30}, c)
}

func TestEvalFlatReflectance(t *testing.T) {
	// zero polynomial means constant 0.5 reflectance, so the
	// prediction is half the basis sum per channel
	b := NewBasis(cie.SRGB)
	out := b.Eval([3]float64{0, 0, 0})
	for j := range 3 {
		sum := 0.0
		for i := range FineSamples {
			sum += b.RGB[j][i]
		}
		require.InDelta(t, 0.5*sum, out[j], 1e-9)
	}
}

func TestNonFiniteIsFatal(t *testing.T) {
	b := NewBasis(cie.SRGB)
	_, err := b.evalResidual([3]float64{math.NaN(), 0, 0}, [3]float64{0.2, 0.2, 0.2})
	require.Error(t, err)
	_, err = b.evalJacobian([3]float64{math.Inf(1), 0, 0}, [3]float64{0.2, 0.2, 0.2})
	require.Error(t, err)
}
