package ditherqr

import (
	"image"
	"math"
	"runtime"
	"sync"

	"github.com/disintegration/imaging"
)

// Targets is a square grid of desired output luminance per cell, in [0,1]
// (0 = black wanted, 1 = white wanted). The dithering engine corrects the
// values in place as it diffuses quantization error.
type Targets struct {
	size   int
	values []float64 // row-major
}

// NewTargets returns a zeroed target grid of the given side.
func NewTargets(size int) *Targets {
	return &Targets{size: size, values: make([]float64, size*size)}
}

// Size returns the number of cells per side.
func (t *Targets) Size() int {
	return t.size
}

// At returns the target value at (x, y).
func (t *Targets) At(x, y int) float64 {
	return t.values[y*t.size+x]
}

// set assigns the target value at (x, y), clamped to [0,1].
func (t *Targets) set(x, y int, v float64) {
	t.values[y*t.size+x] = clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MapLuminance resamples the source image to size×size with a Lanczos
// filter and converts every pixel to a normalized luminance target, applying
// gamma, then contrast and brightness, clamping to [0,1]. Each cell depends
// only on its own resampled pixel, so rows are converted concurrently.
func MapLuminance(src image.Image, size int, gamma, contrast, brightness float64) *Targets {
	resized := imaging.Resize(src, size, size, imaging.Lanczos)
	t := NewTargets(size)

	workers := runtime.GOMAXPROCS(0)
	if workers > size {
		workers = size
	}
	rowsPer := (size + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		startRow := w * rowsPer
		endRow := startRow + rowsPer
		if endRow > size {
			endRow = size
		}
		wg.Add(1)
		go func(startRow, endRow int) {
			defer wg.Done()
			for y := startRow; y < endRow; y++ {
				for x := 0; x < size; x++ {
					c := resized.NRGBAAt(x, y)
					gray := luma(c.R, c.G, c.B, c.A)
					adjusted := math.Pow(gray, gamma)*contrast + brightness
					t.values[y*size+x] = clamp01(adjusted)
				}
			}
		}(startRow, endRow)
	}
	wg.Wait()

	return t
}

// luma converts 8-bit RGBA components to normalized luminance using the
// ZXing formula (306*R + 601*G + 117*B + 0x200) >> 10. Fully transparent
// pixels are treated as white.
func luma(r, g, b, a uint8) float64 {
	if a == 0 {
		return 1.0
	}
	l := (306*uint32(r) + 601*uint32(g) + 117*uint32(b) + 0x200) >> 10
	return float64(l) / 255.0
}
