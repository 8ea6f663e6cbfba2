package spectra

import (
	"github.com/chewxy/math32"

	"github.com/kovidgoyal/spectra/cie"
	"github.com/kovidgoyal/spectra/fit"
)

// lsChannels is the per-bucket payload of the lambda/saturation
// buffer: inverse chromaticity (x, y, z) plus the fractional bucket
// coordinate the winning sample had.
const lsChannels = 5

// LSBuffer is the auxiliary inverse table over (dominant wavelength,
// saturation). The lambda axis is split into two halves by the sign of
// the fitted curvature, separating the two reflectance shapes that
// share a dominant wavelength.
type LSBuffer struct {
	Res int
	Pix [][lsChannels]float32
}

func NewLSBuffer(res int) *LSBuffer {
	return &LSBuffer{Res: res, Pix: make([][lsChannels]float32, res*res)}
}

// Empty reports whether a bucket still carries the empty sentinel. A
// populated bucket always stores a chromaticity triple summing to one.
func (b *LSBuffer) Empty(idx int) bool {
	p := &b.Pix[idx]
	return p[0]+p[1]+p[2] == 0
}

// lsCandidate is one grid cell's proposal for a bucket, resolved
// against competing proposals in a single-threaded reduction.
type lsCandidate struct {
	ok         bool
	x, y       float32
	lamc, satc float32
	lami, sati int
}

// proposeCandidate derives the auxiliary coordinates for a fitted
// cell: locus-relative saturation, and dominant wavelength squeezed
// through a logistic remap (unit derivative at the center) that
// concentrates bucket resolution in the perceptually dense mid range.
func proposeCandidate(lsres int, x, y float64, shape fit.Shape) lsCandidate {
	sat := cie.Saturation(x, y, whiteX, whiteY)
	satc := float32(lsres) * float32(sat)

	// extended range: fits may peak outside the visible span
	norm := float32(shape.DominantLambda-400.0) / (700.0 - 400.0)
	lamc := 1.0 / (1.0 + math32.Exp(-2.0*(2.0*norm-1.0))) * float32(lsres) / 2
	lami := int(math32.Max(0, math32.Min(float32(lsres/2-1), lamc)))
	sati := int(satc)
	if shape.Curvature > 0 {
		lami += lsres / 2
	}
	lami = min(lsres-1, max(0, lami))
	sati = min(lsres-1, max(0, sati))
	return lsCandidate{
		ok:   true,
		x:    float32(x),
		y:    float32(y),
		lamc: lamc,
		satc: satc,
		lami: lami,
		sati: sati,
	}
}

// reduceCandidates populates the buffer, keeping for every bucket the
// candidate whose fractional coordinate lies closest to the bucket
// center. Candidates arrive in cell order, so the outcome is
// deterministic.
func reduceCandidates(lsres int, candidates []lsCandidate) *LSBuffer {
	b := NewLSBuffer(lsres)
	best := make([]float32, lsres*lsres)
	for i := range best {
		best[i] = math32.Inf(1)
	}
	for _, c := range candidates {
		if !c.ok {
			continue
		}
		idx := c.lami*lsres + c.sati
		dist := sqr32(c.lamc-float32(c.lami)-0.5) + sqr32(c.satc-float32(c.sati)-0.5)
		if dist < best[idx] {
			best[idx] = dist
			b.Pix[idx] = [lsChannels]float32{c.x, c.y, 1.0 - c.x - c.y, c.lamc, c.satc}
		}
	}
	return b
}

func sqr32(x float32) float32 { return x * x }
