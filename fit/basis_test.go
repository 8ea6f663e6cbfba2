package fit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/spectra/cie"
)

func TestBasisDeterministic(t *testing.T) {
	// identical gamut input must produce bit-identical tables
	for _, g := range []cie.Gamut{cie.SRGB, cie.XYZ, cie.Rec2020} {
		a := NewBasis(g)
		b := NewBasis(g)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("basis for %s not reproducible (-first +second):\n%s", g, diff)
		}
	}
}

func TestQuadratureWeights(t *testing.T) {
	// composite Simpson 3/8 weights integrate a constant exactly
	b := NewBasis(cie.XYZ)
	sum := 0.0
	for _, w := range b.Weight {
		sum += w
	}
	require.InDelta(t, cie.LambdaMax-cie.LambdaMin, sum, 1e-9)
}

func TestBasisWhitePoint(t *testing.T) {
	// equal energy illuminant integrates to the equal energy white
	b := NewBasis(cie.XYZ)
	sum := b.WhitePoint[0] + b.WhitePoint[1] + b.WhitePoint[2]
	require.InDelta(t, 1.0/3.0, b.WhitePoint[0]/sum, 2e-3)
	require.InDelta(t, 1.0/3.0, b.WhitePoint[1]/sum, 2e-3)
}

func TestBasisChangesWithGamut(t *testing.T) {
	a := NewBasis(cie.SRGB)
	b := NewBasis(cie.Rec2020)
	require.NotEqual(t, a.RGB[0], b.RGB[0])
}
