package velfield

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-astro/viz/colortable"
)

// Reserved index values in the velocity table.
const (
	// IndexMissing marks missing data (NaN or Inf input).
	IndexMissing = 0

	// IndexMin and IndexMax bound the usable data ramp.
	IndexMin = 1
	IndexMax = 254

	// IndexAnnotate stays white for drawing annotations over the image.
	IndexAnnotate = 255
)

// Errors returned by scaling functions.
var (
	ErrEmptyData    = errors.New("velfield: empty data")
	ErrInvalidRange = errors.New("velfield: scale range must be finite with vmin < vmax")
	ErrNoFiniteData = errors.New("velfield: data contains no finite values")
	ErrZeroRange    = errors.New("velfield: data has zero range")
)

// Table returns the diverging blue-white-red velocity table. The lower half
// ramps blue to white, the upper half white to red:
//
//	i <  128:  R = G = 2i,        B = 255
//	i >= 128:  R = 255,  G = B = 2(255-i)
//
// with entry 0 forced to black ([IndexMissing]) and entry 255 to white
// ([IndexAnnotate]).
func Table() colortable.Table {
	var tbl colortable.Table

	for i := 0; i < 128; i++ {
		v := uint8(2 * i)
		tbl[i] = colortable.RGB{R: v, G: v, B: 255}
	}

	for i := 128; i < colortable.Size; i++ {
		v := uint8(2 * (255 - i))
		tbl[i] = colortable.RGB{R: 255, G: v, B: v}
	}

	tbl[IndexMissing] = colortable.RGB{}
	tbl[IndexAnnotate] = colortable.RGB{R: 255, G: 255, B: 255}

	return tbl
}

// Scale linearly rescales data into the usable index range [IndexMin,
// IndexMax]. Values at or below vmin map to IndexMin, values at or above
// vmax to IndexMax, and non-finite values to IndexMissing.
func Scale(data []float64, vmin, vmax float64) ([]uint8, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	if math.IsInf(vmin, 0) || math.IsInf(vmax, 0) || !(vmin < vmax) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, vmin, vmax)
	}

	scale := float64(IndexMax-IndexMin) / (vmax - vmin)

	scaled := make([]float64, len(data))
	vecmath.ScaleBlock(scaled, data, scale)

	offset := float64(IndexMin) - vmin*scale

	out := make([]uint8, len(data))

	for i, v := range scaled {
		// Missing data is judged on the raw datum: a huge finite value can
		// overflow to Inf in the scale pass and must still clamp.
		if math.IsNaN(data[i]) || math.IsInf(data[i], 0) {
			out[i] = IndexMissing
			continue
		}

		idx := math.Round(v + offset)
		switch {
		case idx < IndexMin:
			out[i] = IndexMin
		case idx > IndexMax:
			out[i] = IndexMax
		default:
			out[i] = uint8(idx)
		}
	}

	return out, nil
}

// ScaleSymmetric rescales data with a range symmetric about zero, vmax being
// the largest absolute finite value, so zero velocity lands on the white
// midpoint of the table.
func ScaleSymmetric(data []float64) ([]uint8, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	vmax := 0.0
	hasFinite := false

	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		hasFinite = true

		if a := math.Abs(v); a > vmax {
			vmax = a
		}
	}

	if !hasFinite {
		return nil, ErrNoFiniteData
	}

	if vmax == 0 {
		return nil, ErrZeroRange
	}

	return Scale(data, -vmax, vmax)
}

// Indexed byte-scales a w-by-h data plane and wraps the result in a paletted
// image carrying the velocity table as its palette. Data is row-major.
func Indexed(data []float64, w, h int, vmin, vmax float64) (*image.Paletted, error) {
	if w <= 0 || h <= 0 || len(data) != w*h {
		return nil, fmt.Errorf("velfield: %d values do not fill a %dx%d plane", len(data), w, h)
	}

	pix, err := Scale(data, vmin, vmax)
	if err != nil {
		return nil, err
	}

	tbl := Table()

	img := image.NewPaletted(image.Rect(0, 0, w, h), tbl.Palette())
	copy(img.Pix, pix)

	return img, nil
}
