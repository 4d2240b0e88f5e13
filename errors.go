package ditherqr

import "errors"

var (
	// ErrRatio is returned when the subdivision ratio is even or below 1.
	ErrRatio = errors.New("ratio must be odd and at least 1")

	// ErrUpscale is returned when the upscale factor is below 1.
	ErrUpscale = errors.New("upscale factor must be at least 1")

	// ErrECLevel is returned when an error correction level name is not one
	// of L, M, Q, H.
	ErrECLevel = errors.New("unknown error correction level")

	// ErrEncode is returned when the payload cannot be encoded as a QR code
	// at the requested error correction level.
	ErrEncode = errors.New("QR encoding failed")

	// ErrShape is returned when the cell grid and target grid sizes do not
	// match. It indicates a bug in the caller, not a recoverable condition.
	ErrShape = errors.New("grid and target shape mismatch")
)
