package ditherqr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func midGray(size int) *image.NRGBA {
	return imaging.New(size, size, color.NRGBA{128, 128, 128, 255})
}

func TestGenerateEndToEnd(t *testing.T) {
	opts := DefaultOptions()
	out, err := Generate("TEST", midGray(100), opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	m, err := EncodeQR("TEST", opts.Level)
	if err != nil {
		t.Fatal(err)
	}
	wantSide := m.Size() * opts.Ratio
	if b := out.Bounds(); b.Dx() != wantSide || b.Dy() != wantSide {
		t.Fatalf("output is %dx%d, want %dx%d", b.Dx(), b.Dy(), wantSide, wantSide)
	}

	ratio := opts.Ratio
	center := ratio / 2
	for y := 0; y < wantSide; y++ {
		for x := 0; x < wantSide; x++ {
			px := out.NRGBAAt(x, y)
			if px != renderBlack && px != renderWhite {
				t.Fatalf("pixel (%d,%d) = %v is not strictly black or white", x, y, px)
			}

			moduleX, moduleY := x/ratio, y/ratio
			fixed := lockedModule(moduleX, moduleY, m.Size()) ||
				(x%ratio == center && y%ratio == center)
			if !fixed {
				continue
			}
			want := renderWhite
			if m[moduleY][moduleX] {
				want = renderBlack
			}
			if px != want {
				t.Fatalf("fixed pixel (%d,%d) = %v, want module (%d,%d) color %v",
					x, y, px, moduleX, moduleY, want)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := DefaultOptions()
	a, err := Generate("TEST", midGray(100), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate("TEST", midGray(100), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("identical inputs produced different output bytes")
	}
}

func TestGenerateUpscale(t *testing.T) {
	opts := DefaultOptions()
	base, err := Generate("TEST", midGray(100), opts)
	if err != nil {
		t.Fatal(err)
	}

	opts.Upscale = 2
	scaled, err := Generate("TEST", midGray(100), opts)
	if err != nil {
		t.Fatal(err)
	}
	if scaled.Bounds().Dx() != base.Bounds().Dx()*2 {
		t.Fatalf("upscaled side = %d, want %d", scaled.Bounds().Dx(), base.Bounds().Dx()*2)
	}
	for y := 0; y < scaled.Bounds().Dy(); y++ {
		for x := 0; x < scaled.Bounds().Dx(); x++ {
			if scaled.NRGBAAt(x, y) != base.NRGBAAt(x/2, y/2) {
				t.Fatalf("pixel (%d,%d) does not replicate base pixel (%d,%d)", x, y, x/2, y/2)
			}
		}
	}
}

func TestGenerateRejectsEvenRatio(t *testing.T) {
	opts := DefaultOptions()
	opts.Ratio = 4
	// Validation runs before anything touches the source image: a nil
	// image must not be dereferenced.
	_, err := Generate("TEST", nil, opts)
	if !errors.Is(err, ErrRatio) {
		t.Fatalf("got %v, want ErrRatio", err)
	}
}

func TestGenerateRejectsBadUpscale(t *testing.T) {
	opts := DefaultOptions()
	opts.Upscale = 0
	_, err := Generate("TEST", nil, opts)
	if !errors.Is(err, ErrUpscale) {
		t.Fatalf("got %v, want ErrUpscale", err)
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	// A crisp render (no dithering) framed in a quiet zone must decode
	// back to the encoded text.
	const text = "HELLO DITHERQR"
	m, err := EncodeQR(text, ECLevelM)
	if err != nil {
		t.Fatal(err)
	}

	const ratio = 3
	crisp := Render(NewGrid(m, ratio))
	quiet := 4 * ratio
	framed := imaging.New(crisp.Bounds().Dx()+2*quiet, crisp.Bounds().Dy()+2*quiet,
		color.NRGBA{255, 255, 255, 255})
	framed = imaging.Paste(framed, crisp, image.Pt(quiet, quiet))

	decoded, err := Verify(framed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if decoded != text {
		t.Fatalf("decoded %q, want %q", decoded, text)
	}
}
