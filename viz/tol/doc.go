// Package tol provides Paul Tol's colour-blind safe plotting palettes.
//
// The qualitative schemes (bright, vibrant, muted, light) are meant for
// categorical data such as line plots; sunset is a diverging scheme. Values
// are the published ones from https://personal.sron.nl/~pault/.
package tol
