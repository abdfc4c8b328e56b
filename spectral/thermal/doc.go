// Package thermal computes thermal broadening widths of spectral lines.
//
// All formulas are closed-form expressions over the Maxwell–Boltzmann
// velocity distribution. Widths can be expressed either as a velocity in
// km/s or as a wavelength width in the units of the input wavelength.
package thermal
