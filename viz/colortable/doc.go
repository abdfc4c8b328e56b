// Package colortable provides the bundled 256-entry RGB lookup tables used
// for scalar image display.
//
// The five perceptually uniform matplotlib tables (viridis, plasma, inferno,
// magma, cividis) ship as embedded data files and are selected by name or by
// index. Tables are plain values; callers may modify their copy freely.
package colortable
