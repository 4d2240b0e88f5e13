// Command ditherqr renders a scannable QR code that halftones an input
// photograph: structural and data cells stay fixed, every other cell is
// decided by error-diffusion dithering against the photo's luminance.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/disintegration/imaging"

	"github.com/halftonelab/ditherqr"
)

type cli struct {
	Text            string  `short:"t" required:"" help:"Text to encode in the QR code."`
	Image           string  `short:"i" required:"" type:"existingfile" help:"Input image path."`
	Output          string  `short:"o" required:"" type:"path" help:"Output image path; format chosen by extension."`
	Ratio           int     `short:"r" default:"3" help:"Cell subdivision ratio per module (odd)."`
	Gamma           float64 `short:"g" default:"2.2" help:"Gamma correction applied to source luminance."`
	Contrast        float64 `short:"c" default:"1.0" help:"Contrast adjustment."`
	Brightness      float64 `short:"b" default:"0.0" help:"Brightness adjustment."`
	ErrorCorrection string  `short:"e" default:"L" enum:"L,M,Q,H" help:"QR error correction level."`
	Upscale         int     `short:"u" default:"1" help:"Integer upscale factor for the output image."`
	Verify          bool    `help:"Decode the written output and fail if the text does not round-trip."`
	LogLevel        string  `default:"info" enum:"debug,info,warn,error" help:"Log level."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("ditherqr"),
		kong.Description("Generate dithered QR codes that halftone an input image."),
		kong.UsageOnError(),
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(c.LogLevel),
	}))

	ctx.FatalIfErrorf(c.run(logger))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *cli) run(logger *slog.Logger) error {
	level, err := ditherqr.ParseECLevel(c.ErrorCorrection)
	if err != nil {
		return err
	}
	opts := ditherqr.Options{
		Ratio:      c.Ratio,
		Gamma:      c.Gamma,
		Contrast:   c.Contrast,
		Brightness: c.Brightness,
		Level:      level,
		Upscale:    c.Upscale,
	}

	// Parameter validation comes first so a bad ratio fails before any
	// image decoding happens.
	if err := opts.Validate(); err != nil {
		return err
	}

	logger.Info("generating QR code", "text", c.Text, "level", level)

	logger.Info("loading image", "path", c.Image)
	src, err := imaging.Open(c.Image, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("loading %s: %w", c.Image, err)
	}

	out, err := ditherqr.Generate(c.Text, src, opts)
	if err != nil {
		return err
	}

	if err := imaging.Save(out, c.Output); err != nil {
		return fmt.Errorf("saving %s: %w", c.Output, err)
	}
	logger.Info("saved", "path", c.Output, "size", out.Bounds().Dx())

	if c.Verify {
		decoded, err := ditherqr.Verify(out)
		if err != nil {
			return err
		}
		if decoded != c.Text {
			return fmt.Errorf("verification mismatch: decoded %q, want %q", decoded, c.Text)
		}
		logger.Info("verified", "decoded", decoded)
	}

	return nil
}
