package spectra

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/spectra/fit"
)

func TestProposeCandidate(t *testing.T) {
	const lsres = 16

	t.Run("curvature sign splits the lambda axis", func(t *testing.T) {
		neg := proposeCandidate(lsres, 0.3, 0.4, fit.Shape{Curvature: -1e-5, DominantLambda: 550})
		pos := proposeCandidate(lsres, 0.3, 0.4, fit.Shape{Curvature: 1e-5, DominantLambda: 550})
		require.True(t, neg.ok)
		require.Less(t, neg.lami, lsres/2)
		require.GreaterOrEqual(t, pos.lami, lsres/2)
		require.Equal(t, neg.sati, pos.sati)
	})

	t.Run("achromatic point lands in the first saturation bucket", func(t *testing.T) {
		c := proposeCandidate(lsres, whiteX, whiteY, fit.Shape{Curvature: -1, DominantLambda: 550})
		require.Equal(t, 0, c.sati)
	})

	t.Run("buckets stay in range for extreme wavelengths", func(t *testing.T) {
		for _, dom := range []float64{-500, 0, 360, 700, 830, 5000} {
			for _, curv := range []float64{-1.0, 1.0} {
				c := proposeCandidate(lsres, 0.3, 0.4, fit.Shape{Curvature: curv, DominantLambda: dom})
				require.GreaterOrEqual(t, c.lami, 0)
				require.Less(t, c.lami, lsres)
				require.GreaterOrEqual(t, c.sati, 0)
				require.Less(t, c.sati, lsres)
			}
		}
	})

	t.Run("longer dominant wavelength moves the bucket up", func(t *testing.T) {
		lo := proposeCandidate(lsres, 0.3, 0.4, fit.Shape{Curvature: -1, DominantLambda: 450})
		hi := proposeCandidate(lsres, 0.3, 0.4, fit.Shape{Curvature: -1, DominantLambda: 650})
		require.Less(t, lo.lami, hi.lami)
	})
}

func TestReduceCandidates(t *testing.T) {
	const lsres = 4
	near := lsCandidate{ok: true, x: 0.3, y: 0.3, lamc: 1.5, satc: 1.5, lami: 1, sati: 1}
	far := lsCandidate{ok: true, x: 0.25, y: 0.25, lamc: 1.9, satc: 1.9, lami: 1, sati: 1}

	// the candidate closest to the bucket center wins, in any order
	for _, cands := range [][]lsCandidate{{near, far}, {far, near}} {
		b := reduceCandidates(lsres, cands)
		p := b.Pix[1*lsres+1]
		require.Equal(t, float32(0.3), p[0])
		require.Equal(t, float32(0.3), p[1])
	}

	// unproposed cells contribute nothing
	b := reduceCandidates(lsres, []lsCandidate{{}, near})
	require.False(t, b.Empty(1*lsres+1))
	require.True(t, b.Empty(0))
}
