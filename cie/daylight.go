package cie

// Spectrum is a relative spectral power distribution evaluated at a
// wavelength in nanometers.
type Spectrum func(lambda float64) float64

// CIE daylight components S0, S1, S2, 300..830nm at 10nm steps. Any
// standard D series illuminant is a linear combination of these.
const daylightMin, daylightMax = 300.0, 830.0

var daylight_s0 = [54]float64{
	0.04, 6.0, 29.6, 55.3, 57.3, 61.8, 61.5, 68.8, 63.4, 65.8,
	94.8, 104.8, 105.9, 96.8, 113.9, 125.6, 125.5, 121.3, 121.3, 113.5,
	113.1, 110.8, 106.5, 108.8, 105.3, 104.4, 100.0, 96.0, 95.1, 89.1,
	90.5, 90.3, 88.4, 84.0, 85.1, 81.9, 82.6, 84.9, 81.3, 71.9,
	74.3, 76.4, 63.3, 71.7, 77.0, 65.2, 47.7, 68.6, 65.0, 66.0,
	61.0, 53.3, 58.9, 61.9,
}

var daylight_s1 = [54]float64{
	0.02, 4.5, 22.4, 42.0, 40.6, 41.6, 38.0, 42.4, 38.5, 35.0,
	43.4, 46.3, 43.9, 37.1, 36.7, 35.9, 32.6, 27.9, 24.3, 20.1,
	16.2, 13.2, 8.6, 6.1, 4.2, 1.9, 0.0, -1.6, -3.5, -3.5,
	-5.8, -7.2, -8.6, -9.5, -10.9, -10.7, -12.0, -14.0, -13.6, -12.0,
	-13.3, -12.9, -10.6, -11.6, -12.2, -10.2, -7.8, -11.2, -10.4, -10.6,
	-9.7, -8.3, -9.3, -9.8,
}

var daylight_s2 = [54]float64{
	0.0, 2.0, 4.0, 8.5, 7.8, 6.7, 5.3, 6.1, 3.0, 1.2,
	-1.1, -0.5, -0.7, -1.2, -2.6, -2.9, -2.8, -2.6, -2.6, -1.8,
	-1.5, -1.3, -1.2, -1.0, -0.5, -0.3, 0.0, 0.2, 0.5, 2.1,
	3.2, 4.1, 4.7, 5.1, 6.7, 7.3, 8.6, 9.8, 10.2, 8.3,
	9.6, 8.5, 7.0, 7.6, 8.0, 6.7, 5.2, 7.4, 6.8, 7.0,
	6.4, 5.5, 6.1, 6.5,
}

func daylight_sample(tbl *[54]float64, lambda float64) float64 {
	pos := (lambda - daylightMin) / (daylightMax - daylightMin) * 53
	if pos <= 0 {
		return tbl[0]
	}
	if pos >= 53 {
		return tbl[53]
	}
	lo := int(pos)
	p := pos - float64(lo)
	return tbl[lo] + p*(tbl[lo+1]-tbl[lo])
}

// Daylight builds the relative SPD of the CIE D series illuminant with
// the given correlated color temperature in Kelvin (valid for
// 4000K..25000K).
func Daylight(cct float64) Spectrum {
	t := cct
	var xd float64
	if t <= 7000 {
		xd = -4.607e9/(t*t*t) + 2.9678e6/(t*t) + 0.09911e3/t + 0.244063
	} else {
		xd = -2.0064e9/(t*t*t) + 1.9018e6/(t*t) + 0.24748e3/t + 0.237040
	}
	yd := -3.000*xd*xd + 2.870*xd - 0.275
	m := 0.0241 + 0.2562*xd - 0.7341*yd
	m1 := (-1.3515 - 1.7703*xd + 5.9114*yd) / m
	m2 := (0.0300 - 31.4424*xd + 30.0717*yd) / m
	return func(lambda float64) float64 {
		return daylight_sample(&daylight_s0, lambda) +
			m1*daylight_sample(&daylight_s1, lambda) +
			m2*daylight_sample(&daylight_s2, lambda)
	}
}

// Nominal CCTs carry the 1.4388/1.4380 revision of the radiation
// constant, per the CIE definition of the D series.
const cctScale = 1.4388 / 1.4380

// Standard daylight illuminants.
func IlluminantD50() Spectrum { return Daylight(5000 * cctScale) }
func IlluminantD60() Spectrum { return Daylight(6000 * cctScale) }
func IlluminantD65() Spectrum { return Daylight(6500 * cctScale) }

// IlluminantE is the equal energy illuminant.
func IlluminantE() Spectrum { return func(float64) float64 { return 1.0 } }
