// Package axes prepares coordinate axes for image display.
//
// Plotting code that draws an image against world coordinates needs a
// uniformly spaced axis of pixel edges, while data products usually carry
// per-pixel centers that may drift slightly from uniform spacing. Fix
// produces the uniform edge axis and reports when the drift exceeds a
// tolerance.
package axes
