package ditherqr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Matrix is a square QR module matrix. Matrix[y][x] is true for a dark
// module. The matrix carries no quiet zone: coordinate (0,0) is the top-left
// module of the top-left finder pattern.
type Matrix [][]bool

// Size returns the number of modules per side.
func (m Matrix) Size() int {
	return len(m)
}

// EncodeQR encodes text as a QR code at the given error correction level and
// returns its module matrix.
func EncodeQR(text string, level ECLevel) (Matrix, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty contents", ErrEncode)
	}

	var recovery qrcode.RecoveryLevel
	switch level {
	case ECLevelL:
		recovery = qrcode.Low
	case ECLevelM:
		recovery = qrcode.Medium
	case ECLevelQ:
		recovery = qrcode.High
	case ECLevelH:
		recovery = qrcode.Highest
	default:
		return nil, fmt.Errorf("%w: %d", ErrECLevel, int(level))
	}

	code, err := qrcode.New(text, recovery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	// The bitmap must expose raw modules: the locked-position geometry in
	// the grid builder indexes timing and finder patterns from the matrix
	// edge, so the encoder's quiet zone has to be stripped.
	code.DisableBorder = true
	return Matrix(code.Bitmap()), nil
}
