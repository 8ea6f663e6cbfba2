package spectra

import (
	"fmt"
	"io"
	"sync"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/spectra/cie"
	"github.com/kovidgoyal/spectra/fit"
	"github.com/kovidgoyal/spectra/lut"
)

var _ = fmt.Print

// achromatic point the saturation axis is measured from (illuminant E)
const whiteX, whiteY = 1.0 / 3.0, 1.0 / 3.0

// Options configures one table generation run.
type Options struct {
	// Res is the chromaticity grid resolution per axis.
	Res int
	// Progress, when set, receives one dot per finished grid row.
	Progress io.Writer
}

// Cell is the outcome of fitting one chromaticity grid cell. Cells
// outside the visible locus are never fit and stay at the zero value.
type Cell struct {
	Fitted   bool
	Coeffs   [3]float64
	Residual float64
	Status   fit.FitStatus
	// bucket the cell landed in within the lambda/saturation table
	LambdaBucket, SatBucket int
}

// Table holds everything a run produces before serialization.
type Table struct {
	Res   int
	Cells []Cell
	// LS is the auxiliary inverse table over (dominant wavelength,
	// saturation), at resolution Res/4 per axis.
	LS *LSBuffer
}

// Run fits the full chromaticity grid. Rows are processed in parallel;
// the only shared write, the lambda/saturation bucket update, is
// deferred to a single-threaded reduction over per-cell candidates.
// The returned error is a fatal invariant violation (non-finite fit
// state); per-cell numerical failures are recorded in the cell status
// and do not stop the batch.
func Run(basis *fit.Basis, brightness *lut.BrightnessMap, opts Options) (*Table, error) {
	res := opts.Res
	lsres := res / 4
	cells := make([]Cell, res*res)
	candidates := make([]lsCandidate, res*res)
	row_errs := make([]error, res)
	var progress_mu sync.Mutex

	worker := func(start, limit int) {
		for j := start; j < limit; j++ {
			y := float64(j) / float64(res)
			for i := 0; i < res; i++ {
				x := float64(i) / float64(res)
				rgb := [3]float64{x, y, 1.0 - x - y}
				if outsideLocus(basis, rgb) {
					continue
				}
				m := max(0.001, 0.5*brightness.At(i, j, res))
				target := [3]float64{rgb[0] * m, rgb[1] * m, rgb[2] * m}
				result, err := basis.Fit(target)
				if err != nil {
					row_errs[j] = fmt.Errorf("cell (%d, %d): %w", i, j, err)
					return
				}
				cell := &cells[j*res+i]
				cell.Fitted = true
				cell.Coeffs = result.Coeffs
				cell.Residual = result.Residual
				cell.Status = result.Status

				shape := fit.EncodeShape(result.Coeffs)
				c := proposeCandidate(lsres, x, y, shape)
				cell.LambdaBucket, cell.SatBucket = c.lami, c.sati
				candidates[j*res+i] = c
			}
			if opts.Progress != nil {
				progress_mu.Lock()
				fmt.Fprint(opts.Progress, ".")
				progress_mu.Unlock()
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, worker, 0, res); err != nil {
		return nil, err
	}
	for _, err := range row_errs {
		if err != nil {
			return nil, err
		}
	}

	return &Table{
		Res:   res,
		Cells: cells,
		LS:    reduceCandidates(lsres, candidates),
	}, nil
}

// outsideLocus projects the gamut-space color to chromaticity and
// tests it against the visible locus.
func outsideLocus(basis *fit.Basis, rgb [3]float64) bool {
	xyz := basis.RGBToXYZ.MulVec(cie.Vec3{rgb[0], rgb[1], rgb[2]})
	sum := xyz[0] + xyz[1] + xyz[2]
	if sum <= 0 {
		return true
	}
	return cie.Outside(xyz[0]/sum, xyz[1]/sum)
}
