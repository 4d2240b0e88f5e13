package ditherqr

import (
	"runtime"
	"sync"
)

// CellType classifies a cell of the output grid by mutability.
type CellType int

const (
	// CellFree cells may be recolored by the dithering engine.
	CellFree CellType = iota
	// CellData cells are the single center cell of a non-locked module and
	// keep the module's encoded color.
	CellData
	// CellLocked cells fall in a structural pattern (finder, timing,
	// alignment) and keep the module's encoded color.
	CellLocked
)

// String returns the name of the cell type.
func (t CellType) String() string {
	switch t {
	case CellFree:
		return "FREE"
	case CellData:
		return "DATA"
	case CellLocked:
		return "LOCKED"
	default:
		return "UNKNOWN"
	}
}

// Cell is one pixel of the output grid.
type Cell struct {
	// Black is the cell color. For Locked and Data cells it is fixed at
	// construction; for Free cells it is assigned by the dithering engine.
	Black bool

	// Type never changes after construction.
	Type CellType
}

// Grid is a square grid of cells, ratio×ratio cells per QR module.
type Grid struct {
	size  int // cells per side: module count × ratio
	ratio int
	cells []Cell // row-major
}

// NewGrid classifies every cell of the output grid from the module matrix.
// Each cell is a pure function of its coordinates and the matrix, so rows
// are classified concurrently; the result is identical for any worker count.
// The ratio must be odd and at least 1, which the caller has validated.
func NewGrid(m Matrix, ratio int) *Grid {
	modules := m.Size()
	size := modules * ratio
	center := ratio / 2

	g := &Grid{
		size:  size,
		ratio: ratio,
		cells: make([]Cell, size*size),
	}

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
				moduleY := y / ratio
				subY := y % ratio
				for x := 0; x < size; x++ {
					moduleX := x / ratio
					subX := x % ratio

					cellType := CellFree
					switch {
					case lockedModule(moduleX, moduleY, modules):
						cellType = CellLocked
					case subX == center && subY == center:
						cellType = CellData
					}
					g.cells[y*size+x] = Cell{
						Black: m[moduleY][moduleX],
						Type:  cellType,
					}
				}
			}
		}(startRow, endRow)
	}
	wg.Wait()

	return g
}

// lockedModule reports whether the module at (x, y) belongs to a structural
// pattern the scanner depends on. The classification is purely geometric.
func lockedModule(x, y, size int) bool {
	// Timing patterns
	if x == 6 || y == 6 {
		return true
	}

	// Finder patterns and their separators: top-left, top-right, bottom-left
	if x < 8 && y < 8 {
		return true
	}
	if x > size-9 && y < 8 {
		return true
	}
	if y > size-9 && x < 8 {
		return true
	}

	// Bottom-right alignment pattern, present from version 2 (side 25) up
	if size >= 25 && x > size-10 && y > size-10 && x < size-4 && y < size-4 {
		return true
	}

	return false
}

// Size returns the number of cells per side.
func (g *Grid) Size() int {
	return g.size
}

// Ratio returns the per-module subdivision ratio.
func (g *Grid) Ratio() int {
	return g.ratio
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Cell {
	return g.cells[y*g.size+x]
}

// setBlack assigns a cell's color. Only the dithering engine calls this,
// and only for Free cells.
func (g *Grid) setBlack(x, y int, black bool) {
	g.cells[y*g.size+x].Black = black
}

// freeAt reports whether (x, y) is in bounds and holds a Free cell. It is
// the boundary helper for diffusion: out-of-range positions simply don't
// participate.
func (g *Grid) freeAt(x, y int) bool {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return false
	}
	return g.cells[y*g.size+x].Type == CellFree
}
