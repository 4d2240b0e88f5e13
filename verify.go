package ditherqr

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Verify decodes a QR code from the rendered image and returns its text.
// It reports whether a scanner can still read the halftoned output; a busy
// source image at a small ratio can defeat it, which is a property of the
// chosen parameters rather than an engine failure.
func Verify(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("preparing bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	})
	if err != nil {
		return "", fmt.Errorf("no readable QR code in output: %w", err)
	}

	return result.GetText(), nil
}
