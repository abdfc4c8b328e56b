// Package velfield displays velocity fields as indexed color images.
//
// The package builds the diverging blue-white-red lookup table used for
// line-of-sight velocity maps (blueshift toward the viewer, redshift away)
// and byte-scales data planes into the table's usable index range. The two
// extreme indexes are reserved: 0 marks missing data, 255 is kept white for
// annotation overlays.
package velfield
