package spectra

import (
	"github.com/kovidgoyal/spectra/cie"
)

// ScanBoundaries walks each dominant-wavelength row of the (already
// hole-filled) buffer with increasing saturation and records, for the
// Rec709 and Rec2020 display gamuts, where the represented color first
// leaves the gamut (any negative RGB component). The offsets address
// the auxiliary table in normalized bucket units.
func (b *LSBuffer) ScanBoundaries() (rec709, rec2020 []float32) {
	toRec709 := cie.SRGB.XYZToRGB()
	toRec2020 := cie.Rec2020.XYZToRGB()
	rec709 = make([]float32, b.Res)
	rec2020 = make([]float32, b.Res)
	for j := range b.Res {
		active := 3
		for i := 0; i < b.Res && active != 0; i++ {
			p := &b.Pix[j*b.Res+i]
			x, y := float64(p[0]), float64(p[1])
			xyz := cie.Vec3{x, y, 1.0 - x - y}
			if active&1 != 0 && anyNegative(toRec709.MulVec(xyz)) {
				rec709[j] = (float32(i) - 0.5) / float32(b.Res)
				active &^= 1
			}
			if active&2 != 0 && anyNegative(toRec2020.MulVec(xyz)) {
				rec2020[j] = (float32(i) - 0.5) / float32(b.Res)
				active &^= 2
			}
		}
	}
	return rec709, rec2020
}

func anyNegative(v cie.Vec3) bool {
	return v[0] < 0 || v[1] < 0 || v[2] < 0
}
