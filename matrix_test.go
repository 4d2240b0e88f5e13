package ditherqr

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeQR(t *testing.T) {
	m, err := EncodeQR("TEST", ECLevelL)
	if err != nil {
		t.Fatalf("EncodeQR failed: %v", err)
	}
	size := m.Size()
	if size < 21 || (size-21)%4 != 0 {
		t.Fatalf("matrix side %d is not a valid QR version size", size)
	}
	for y, row := range m {
		if len(row) != size {
			t.Fatalf("row %d has %d modules, want %d", y, len(row), size)
		}
	}

	// Raw modules carry no quiet zone: the top-left finder corner is dark.
	if !m[0][0] {
		t.Error("module (0,0) should be dark (finder pattern, no quiet zone)")
	}
	// Timing pattern alternates along row 6 between the finders.
	for x := 8; x < size-8; x++ {
		if m[6][x] != (x%2 == 0) {
			t.Errorf("timing module (%d,6) = %v", x, m[6][x])
		}
	}
}

func TestEncodeQRAllECLevels(t *testing.T) {
	for _, level := range []ECLevel{ECLevelL, ECLevelM, ECLevelQ, ECLevelH} {
		t.Run(level.String(), func(t *testing.T) {
			m, err := EncodeQR("Hello, World!", level)
			if err != nil {
				t.Fatalf("EncodeQR failed: %v", err)
			}
			if m.Size() == 0 {
				t.Fatal("empty matrix")
			}
		})
	}
}

func TestEncodeQREmpty(t *testing.T) {
	_, err := EncodeQR("", ECLevelL)
	if !errors.Is(err, ErrEncode) {
		t.Fatalf("got %v, want ErrEncode", err)
	}
}

func TestEncodeQROversized(t *testing.T) {
	_, err := EncodeQR(strings.Repeat("A", 8000), ECLevelH)
	if !errors.Is(err, ErrEncode) {
		t.Fatalf("got %v, want ErrEncode", err)
	}
}

func TestParseECLevel(t *testing.T) {
	for _, level := range []ECLevel{ECLevelL, ECLevelM, ECLevelQ, ECLevelH} {
		got, err := ParseECLevel(level.String())
		if err != nil {
			t.Fatalf("ParseECLevel(%q): %v", level.String(), err)
		}
		if got != level {
			t.Errorf("ParseECLevel(%q) = %v", level.String(), got)
		}
	}
	if _, err := ParseECLevel("X"); !errors.Is(err, ErrECLevel) {
		t.Errorf("got %v, want ErrECLevel", err)
	}
}
