/*
Package spectra precomputes lookup tables that map a chromaticity
coordinate to a compact analytic reflectance model, for use by a
spectral rendering pipeline at render time.

For every cell of a chromaticity grid a Gauss-Newton solver inverts
tristimulus integration to recover the coefficients of a
sigmoid-wrapped quadratic (see the fit package). The results feed two
tables: the primary coefficient table indexed by chromaticity, and an
auxiliary inverse table indexed by (dominant wavelength, saturation)
that is hole-filled by push-pull and annotated with display gamut
boundaries.
*/
package spectra
