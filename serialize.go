package spectra

import (
	"github.com/kovidgoyal/spectra/fit"
	"github.com/kovidgoyal/spectra/lut"
)

// SpectraPixels packs the primary table: per grid cell the
// denormalized coefficient triple plus the saturation bucket
// coordinate. Unfitted cells stay at the zero sentinel.
func (t *Table) SpectraPixels() []float32 {
	lsres := t.Res / 4
	pix := make([]float32, 0, t.Res*t.Res*4)
	for k := range t.Cells {
		cell := &t.Cells[k]
		q := fit.Denormalize(cell.Coeffs)
		aux := float32(0)
		if cell.Fitted {
			aux = (float32(cell.SatBucket) + 0.5) / float32(lsres)
		}
		pix = append(pix, float32(q[0]), float32(q[1]), float32(q[2]), aux)
	}
	return pix
}

// AbneyPixels packs the auxiliary table: per bucket the inverse
// chromaticity, with one trailing gamut boundary pair per row.
func (t *Table) AbneyPixels(rec709, rec2020 []float32) []float32 {
	lsres := t.LS.Res
	pix := make([]float32, 0, (lsres+1)*lsres*2)
	for j := range lsres {
		for i := range lsres {
			p := &t.LS.Pix[j*lsres+i]
			pix = append(pix, p[0], p[1])
		}
		pix = append(pix, rec709[j], rec2020[j])
	}
	return pix
}

// DebugPixels renders the auxiliary table as RGB triples for the
// floating point debug image, boundary column included.
func (t *Table) DebugPixels(rec709, rec2020 []float32) []float32 {
	lsres := t.LS.Res
	pix := make([]float32, 0, (lsres+1)*lsres*3)
	for j := range lsres {
		for i := range lsres {
			p := &t.LS.Pix[j*lsres+i]
			pix = append(pix, p[0], p[1], 1.0-p[0]-p[1])
		}
		pix = append(pix, rec709[j], rec2020[j], 0)
	}
	return pix
}

// WriteOutputs finalizes the auxiliary table (hole filling, boundary
// scan) and writes the primary table, the auxiliary table and the
// debug image.
func (t *Table) WriteOutputs(spectraPath, abneyPath, debugPath string) error {
	t.LS.Inpaint()
	rec709, rec2020 := t.LS.ScanBoundaries()
	lsres := t.LS.Res
	if err := lut.WriteFloatTable(spectraPath, t.Res, t.Res, 4, t.SpectraPixels()); err != nil {
		return err
	}
	if err := lut.WriteHalfTable(abneyPath, lsres+1, lsres, 2, t.AbneyPixels(rec709, rec2020)); err != nil {
		return err
	}
	return lut.WritePFM(debugPath, lsres+1, lsres, t.DebugPixels(rec709, rec2020))
}
