package cie

import (
	"math"
	"sync"
)

// The spectral locus as a closed polygon in xy chromaticity space:
// one vertex per matching function sample, closed by the purple line.
var locus = sync.OnceValue(func() [][2]float64 {
	pts := make([][2]float64, 0, Samples)
	for i := range Samples {
		lambda := LambdaMin + float64(i)*(LambdaMax-LambdaMin)/float64(Samples-1)
		x, y, z := CMF(lambda)
		sum := x + y + z
		pts = append(pts, [2]float64{x / sum, y / sum})
	}
	return pts
})

// Outside reports whether the chromaticity coordinate lies outside the
// locus of physically realizable colors.
func Outside(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return true
	}
	pts := locus()
	inside := false
	// even-odd rule against a horizontal ray
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		xi, yi := pts[i][0], pts[i][1]
		xj, yj := pts[j][0], pts[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return !inside
}

// Saturation measures how far a chromaticity sits between the white
// point and the locus boundary along the ray from white through the
// point: 0 at white, 1 on the boundary. Points outside clamp to 1.
func Saturation(x, y, wx, wy float64) float64 {
	dx, dy := x-wx, y-wy
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0
	}
	pts := locus()
	// distance from white to the boundary along (dx, dy)
	tmin := math.Inf(1)
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		ex, ey := pts[i][0]-pts[j][0], pts[i][1]-pts[j][1]
		den := dx*ey - dy*ex
		if den == 0 {
			continue
		}
		qx, qy := pts[j][0]-wx, pts[j][1]-wy
		t := (qx*ey - qy*ex) / den
		s := (qx*dy - qy*dx) / den
		if t > 0 && s >= 0 && s <= 1 && t < tmin {
			tmin = t
		}
	}
	if math.IsInf(tmin, 1) {
		return 1
	}
	return math.Min(1, 1/tmin)
}
