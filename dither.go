package ditherqr

import "fmt"

// Dither assigns a color to every Free cell of the grid by two sequential
// error-diffusion passes over the target grid, in row-major raster order.
//
// Pass one pre-biases the neighborhood of every Data cell: the cell's color
// is already fixed by the encoding, so its quantization error is pushed
// symmetrically onto all eight neighbors (3/16 orthogonal, 1/16 diagonal).
// Pass two then decides each Free cell against its corrected target and
// diffuses the residual error forward Floyd-Steinberg style (E=7, SW=3,
// S=5, SE=1), but only onto Free neighbors, with the weights renormalized
// to whichever of the four survive. A Free cell with no Free forward
// neighbor drops its error entirely.
//
// Locked and Data cells are never recolored; writes that land on their
// targets are inert for the final raster. The passes are strictly ordered
// and each is strictly sequential: every decision in pass two depends on
// the accumulated corrections of all earlier cells.
func Dither(g *Grid, t *Targets) error {
	if g.Size() != t.Size() {
		return fmt.Errorf("%w: grid %d, targets %d", ErrShape, g.Size(), t.Size())
	}

	size := g.Size()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cell := g.At(x, y)
			if cell.Type != CellData {
				continue
			}

			actual := 0.0
			if !cell.Black {
				actual = 1.0
			}
			e := actual - t.At(x, y)

			bumpTarget(t, x+1, y, e*3.0/16.0)
			bumpTarget(t, x-1, y, e*3.0/16.0)
			bumpTarget(t, x, y+1, e*3.0/16.0)
			bumpTarget(t, x, y-1, e*3.0/16.0)
			bumpTarget(t, x+1, y+1, e*1.0/16.0)
			bumpTarget(t, x-1, y+1, e*1.0/16.0)
			bumpTarget(t, x+1, y-1, e*1.0/16.0)
			bumpTarget(t, x-1, y-1, e*1.0/16.0)
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.At(x, y).Type != CellFree {
				continue
			}

			target := t.At(x, y)
			black := target < 0.5
			g.setBlack(x, y, black)

			actual := 0.0
			if !black {
				actual = 1.0
			}
			e := actual - target

			east := g.freeAt(x+1, y)
			southWest := g.freeAt(x-1, y+1)
			south := g.freeAt(x, y+1)
			southEast := g.freeAt(x+1, y+1)

			var total float64
			if east {
				total += 7
			}
			if southWest {
				total += 3
			}
			if south {
				total += 5
			}
			if southEast {
				total += 1
			}
			if total == 0 {
				// No Free neighbor ahead: the error is dropped.
				continue
			}

			if east {
				bumpTarget(t, x+1, y, e*7.0/total)
			}
			if southWest {
				bumpTarget(t, x-1, y+1, e*3.0/total)
			}
			if south {
				bumpTarget(t, x, y+1, e*5.0/total)
			}
			if southEast {
				bumpTarget(t, x+1, y+1, e*1.0/total)
			}
		}
	}

	return nil
}

// bumpTarget subtracts a diffused error share from the target at (x, y),
// clamping the result back into [0,1]. Out-of-range positions are ignored.
func bumpTarget(t *Targets, x, y int, e float64) {
	if x < 0 || y < 0 || x >= t.size || y >= t.size {
		return
	}
	t.set(x, y, t.At(x, y)-e)
}
