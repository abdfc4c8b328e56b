// Package profile synthesizes and measures spectral line profiles.
//
// Profiles are sampled on a uniform wavelength or velocity axis. Broaden
// convolves a sampled profile with a normalized Gaussian kernel, which is
// how instrumental and thermal broadening enter a synthetic spectrum;
// Measure recovers peak, centroid, integrated flux, and FWHM from a sampled
// profile.
package profile
