package cie

import (
	"strings"
	"sync"
)

// Gamut selects the target color space the reflectance fits are
// expressed in. Each gamut pairs a set of primaries and a white point
// with the illuminant the fit integrates against.
type Gamut int

const (
	SRGB Gamut = iota
	ERGB
	XYZ
	ProPhotoRGB
	ACES2065_1
	ACES_AP1
	Rec2020
	numGamuts
)

var gamut_names = [numGamuts]string{"sRGB", "eRGB", "XYZ", "ProPhotoRGB", "ACES2065_1", "ACES_AP1", "REC2020"}

func (g Gamut) String() string {
	if g < 0 || g >= numGamuts {
		return "unknown"
	}
	return gamut_names[g]
}

// ParseGamut matches a gamut name case-insensitively. Unknown names
// fall back to sRGB.
func ParseGamut(name string) Gamut {
	for g, n := range gamut_names {
		if strings.EqualFold(name, n) {
			return Gamut(g)
		}
	}
	return SRGB
}

// chromaticity coordinates of primaries and white point
type gamut_def struct {
	rx, ry, gx, gy, bx, by float64
	wx, wy                 float64
	illuminant             func() Spectrum
}

var gamut_defs = [numGamuts]gamut_def{
	SRGB:        {0.6400, 0.3300, 0.3000, 0.6000, 0.1500, 0.0600, 0.3127, 0.3290, IlluminantD65},
	ERGB:        {0.6400, 0.3300, 0.3000, 0.6000, 0.1500, 0.0600, 1.0 / 3.0, 1.0 / 3.0, IlluminantE},
	XYZ:         {1, 0, 0, 1, 0, 0, 1.0 / 3.0, 1.0 / 3.0, IlluminantE},
	ProPhotoRGB: {0.734699, 0.265301, 0.159597, 0.840403, 0.036598, 0.000105, 0.345704, 0.358540, IlluminantD50},
	ACES2065_1:  {0.73470, 0.26530, 0.00000, 1.00000, 0.00010, -0.07700, 0.32168, 0.33767, IlluminantD60},
	ACES_AP1:    {0.71300, 0.29300, 0.16500, 0.83000, 0.12800, 0.04400, 0.32168, 0.33767, IlluminantD60},
	Rec2020:     {0.7080, 0.2920, 0.1700, 0.7970, 0.1310, 0.0460, 0.3127, 0.3290, IlluminantD65},
}

type gamut_matrices struct {
	rgb_to_xyz, xyz_to_rgb Mat3
}

var derived_matrices = sync.OnceValue(func() [numGamuts]gamut_matrices {
	var out [numGamuts]gamut_matrices
	for g := range numGamuts {
		if g == XYZ {
			out[g] = gamut_matrices{identityMat3, identityMat3}
			continue
		}
		d := gamut_defs[g]
		// unscaled primary columns in XYZ
		p := Mat3{
			{d.rx / d.ry, d.gx / d.gy, d.bx / d.by},
			{1, 1, 1},
			{(1 - d.rx - d.ry) / d.ry, (1 - d.gx - d.gy) / d.gy, (1 - d.bx - d.by) / d.by},
		}
		white := Vec3{d.wx / d.wy, 1, (1 - d.wx - d.wy) / d.wy}
		s := p.Inverse().MulVec(white)
		var m Mat3
		for i := range 3 {
			for j := range 3 {
				m[i][j] = p[i][j] * s[j]
			}
		}
		out[g] = gamut_matrices{rgb_to_xyz: m, xyz_to_rgb: m.Inverse()}
	}
	return out
})

// RGBToXYZ returns the matrix taking linear RGB in this gamut to XYZ.
func (g Gamut) RGBToXYZ() Mat3 { return derived_matrices()[g].rgb_to_xyz }

// XYZToRGB returns the matrix taking XYZ to linear RGB in this gamut.
func (g Gamut) XYZToRGB() Mat3 { return derived_matrices()[g].xyz_to_rgb }

// Illuminant returns the reference illuminant SPD for this gamut.
func (g Gamut) Illuminant() Spectrum { return gamut_defs[g].illuminant() }

// White returns the white point chromaticity of this gamut.
func (g Gamut) White() (x, y float64) { return gamut_defs[g].wx, gamut_defs[g].wy }
