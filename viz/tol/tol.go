package tol

import (
	"fmt"
	"image/color"
	"strings"
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// palettes lists the schemes in their published order.
var palettes = []struct {
	name   string
	colors []color.RGBA
}{
	{"bright", []color.RGBA{
		rgb(0x44, 0x77, 0xAA), // blue
		rgb(0xEE, 0x66, 0x77), // red
		rgb(0x22, 0x88, 0x33), // green
		rgb(0xCC, 0xBB, 0x44), // yellow
		rgb(0x66, 0xCC, 0xEE), // cyan
		rgb(0xAA, 0x33, 0x77), // purple
		rgb(0xBB, 0xBB, 0xBB), // grey
	}},
	{"vibrant", []color.RGBA{
		rgb(0xEE, 0x77, 0x33), // orange
		rgb(0x00, 0x77, 0xBB), // blue
		rgb(0x33, 0xBB, 0xEE), // cyan
		rgb(0xEE, 0x33, 0x77), // magenta
		rgb(0xCC, 0x33, 0x11), // red
		rgb(0x00, 0x99, 0x88), // teal
		rgb(0xBB, 0xBB, 0xBB), // grey
	}},
	{"muted", []color.RGBA{
		rgb(0xCC, 0x66, 0x77), // rose
		rgb(0x33, 0x22, 0x88), // indigo
		rgb(0xDD, 0xCC, 0x77), // sand
		rgb(0x11, 0x77, 0x33), // green
		rgb(0x88, 0xCC, 0xEE), // cyan
		rgb(0x88, 0x22, 0x55), // wine
		rgb(0x44, 0xAA, 0x99), // teal
		rgb(0x99, 0x99, 0x33), // olive
		rgb(0xAA, 0x44, 0x99), // purple
		rgb(0xDD, 0xDD, 0xDD), // pale grey
	}},
	{"light", []color.RGBA{
		rgb(0x77, 0xAA, 0xDD), // light blue
		rgb(0xEE, 0x88, 0x66), // orange
		rgb(0xEE, 0xDD, 0x88), // light yellow
		rgb(0xFF, 0xAA, 0xBB), // pink
		rgb(0x99, 0xDD, 0xFF), // light cyan
		rgb(0x44, 0xBB, 0x99), // mint
		rgb(0xBB, 0xCC, 0x33), // pear
		rgb(0xAA, 0xAA, 0x00), // olive
		rgb(0xDD, 0xDD, 0xDD), // pale grey
	}},
	// sunset is the diverging scheme; use it for signed quantities.
	{"sunset", []color.RGBA{
		rgb(0x36, 0x4B, 0x9A),
		rgb(0x4A, 0x7B, 0xB7),
		rgb(0x6E, 0xA6, 0xCD),
		rgb(0x98, 0xCA, 0xE1),
		rgb(0xC2, 0xE4, 0xEF),
		rgb(0xEA, 0xEC, 0xCC),
		rgb(0xFE, 0xDA, 0x8B),
		rgb(0xFD, 0xB3, 0x66),
		rgb(0xF6, 0x7E, 0x4B),
		rgb(0xDD, 0x3D, 0x2D),
		rgb(0xA5, 0x00, 0x26),
	}},
}

// Names returns the palette names in their published order.
func Names() []string {
	out := make([]string, len(palettes))
	for i, p := range palettes {
		out[i] = p.name
	}

	return out
}

// Palette returns a copy of the named palette (case-insensitive).
func Palette(name string) ([]color.RGBA, error) {
	key := strings.ToLower(name)

	for _, p := range palettes {
		if p.name == key {
			return append([]color.RGBA(nil), p.colors...), nil
		}
	}

	return nil, fmt.Errorf("tol: unknown palette %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// Color returns the i-th color of the named palette, cycling when i exceeds
// the palette length.
func Color(name string, i int) (color.RGBA, error) {
	p, err := Palette(name)
	if err != nil {
		return color.RGBA{}, err
	}

	if i < 0 {
		return color.RGBA{}, fmt.Errorf("tol: negative color index: %d", i)
	}

	return p[i%len(p)], nil
}

// Hex formats a palette color the way the scheme definitions write them.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
