// Package ditherqr renders a QR code as a halftoned black/white image that
// approximates a source photograph. The cells required for the code to scan
// (structural patterns and module centers) keep their encoded colors; every
// other cell is decided by two-pass error-diffusion dithering against a
// luminance target derived from the photograph.
package ditherqr

import "fmt"

// ECLevel represents a QR error correction level.
type ECLevel int

const (
	// ECLevelL recovers about 7% of data.
	ECLevelL ECLevel = iota
	// ECLevelM recovers about 15% of data.
	ECLevelM
	// ECLevelQ recovers about 25% of data.
	ECLevelQ
	// ECLevelH recovers about 30% of data.
	ECLevelH
)

// String returns the single-letter name of the error correction level.
func (l ECLevel) String() string {
	switch l {
	case ECLevelL:
		return "L"
	case ECLevelM:
		return "M"
	case ECLevelQ:
		return "Q"
	case ECLevelH:
		return "H"
	default:
		return "UNKNOWN"
	}
}

// ParseECLevel parses a single-letter error correction level name.
func ParseECLevel(s string) (ECLevel, error) {
	switch s {
	case "L":
		return ECLevelL, nil
	case "M":
		return ECLevelM, nil
	case "Q":
		return ECLevelQ, nil
	case "H":
		return ECLevelH, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrECLevel, s)
	}
}

// Options configures dithered QR generation.
type Options struct {
	// Ratio is the per-module subdivision ratio; each module becomes a
	// Ratio×Ratio block of cells. Must be odd and at least 1 so that every
	// module has a single center cell.
	Ratio int

	// Gamma is the exponent applied to normalized source luminance.
	Gamma float64

	// Contrast multiplies the gamma-corrected luminance.
	Contrast float64

	// Brightness is added after the contrast multiply.
	Brightness float64

	// Level is the QR error correction level.
	Level ECLevel

	// Upscale enlarges the output by integer pixel replication. 1 means no
	// upscaling.
	Upscale int
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{
		Ratio:    3,
		Gamma:    2.2,
		Contrast: 1.0,
		Level:    ECLevelL,
		Upscale:  1,
	}
}

// Validate reports whether the options describe a renderable configuration.
// It must pass before any encoding or image work begins.
func (o Options) Validate() error {
	if o.Ratio < 1 || o.Ratio%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrRatio, o.Ratio)
	}
	if o.Upscale < 1 {
		return fmt.Errorf("%w: got %d", ErrUpscale, o.Upscale)
	}
	return nil
}
