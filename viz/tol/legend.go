package tol

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	defaultSwatchWidth  = 48
	defaultSwatchHeight = 20
	legendMargin        = 6
	labelGap            = 8
)

// Option configures legend rendering.
type Option func(*config)

type config struct {
	swatchWidth  int
	swatchHeight int
	labels       bool
}

func defaultConfig() config {
	return config{
		swatchWidth:  defaultSwatchWidth,
		swatchHeight: defaultSwatchHeight,
		labels:       true,
	}
}

// WithSwatchSize sets the pixel size of each color swatch.
func WithSwatchSize(w, h int) Option {
	return func(c *config) {
		if w > 0 {
			c.swatchWidth = w
		}

		if h > 0 {
			c.swatchHeight = h
		}
	}
}

// WithoutLabels renders swatches only, no hex labels.
func WithoutLabels() Option {
	return func(c *config) {
		c.labels = false
	}
}

// Legend renders the named palette as a vertical list of swatches with hex
// labels, suitable for writing out as a PNG.
func Legend(name string, opts ...Option) (image.Image, error) {
	p, err := Palette(name)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	face := basicfont.Face7x13

	width := legendMargin*2 + cfg.swatchWidth
	if cfg.labels {
		// "#RRGGBB" is 7 glyphs wide.
		width += labelGap + 7*face.Advance
	}

	height := legendMargin*2 + len(p)*cfg.swatchHeight + (len(p)-1)*legendMargin

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	for i, c := range p {
		top := legendMargin + i*(cfg.swatchHeight+legendMargin)
		swatch := image.Rect(legendMargin, top, legendMargin+cfg.swatchWidth, top+cfg.swatchHeight)
		draw.Draw(img, swatch, image.NewUniform(c), image.Point{}, draw.Src)

		if cfg.labels {
			baseline := top + (cfg.swatchHeight+face.Ascent)/2
			drawer.Dot = fixed.P(legendMargin+cfg.swatchWidth+labelGap, baseline)
			drawer.DrawString(Hex(c))
		}
	}

	return img, nil
}
