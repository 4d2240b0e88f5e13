package ditherqr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	renderBlack = color.NRGBA{0, 0, 0, 255}
	renderWhite = color.NRGBA{255, 255, 255, 255}
)

// Render maps the grid to an image, one pixel per cell: pure black for
// black cells, pure white otherwise.
func Render(g *Grid) *image.NRGBA {
	size := g.Size()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.At(x, y).Black {
				img.SetNRGBA(x, y, renderBlack)
			} else {
				img.SetNRGBA(x, y, renderWhite)
			}
		}
	}
	return img
}

// Upscale enlarges img by an integer factor using nearest-neighbor
// replication. Replication is the only enlargement that keeps every pixel
// strictly black or white; an interpolating filter would introduce grays.
// A factor of 1 returns img unchanged.
func Upscale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor)
}
