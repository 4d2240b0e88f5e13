package ditherqr

import (
	"fmt"
	"image"
)

// Generate runs the full pipeline: encode text as a QR module matrix, build
// the cell grid, map the source image to luminance targets, dither, and
// render. The output is square with side module count × Ratio × Upscale and
// contains only pure black and pure white pixels.
func Generate(text string, src image.Image, opts Options) (*image.NRGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	matrix, err := EncodeQR(text, opts.Level)
	if err != nil {
		return nil, err
	}

	grid := NewGrid(matrix, opts.Ratio)
	targets := MapLuminance(src, grid.Size(), opts.Gamma, opts.Contrast, opts.Brightness)

	if err := Dither(grid, targets); err != nil {
		return nil, fmt.Errorf("dithering: %w", err)
	}

	return Upscale(Render(grid), opts.Upscale), nil
}
