package pixel

import (
	"image/color"
	"testing"
)

func TestColor565(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 255, 255, 255, 0xffff},
		{"red", 255, 0, 0, 0xf800},
		{"green", 0, 255, 0, 0x07e0},
		{"blue", 0, 0, 255, 0x001f},
		{"dodger blue", 30, 144, 255, 0x1c9f},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if v := Color565(test.r, test.g, test.b); v != test.want {
				t.Errorf("expected %#04x, got %#04x", test.want, v)
			}
		})
	}
}

func TestCRGB16RGBA(t *testing.T) {
	for _, c := range []CRGB16{Black, White, Red, Green, Blue} {
		r, g, b, a := c.RGBA()
		if a != 0xffff {
			t.Errorf("%#04x: expected opaque alpha, got %#04x", c.V, a)
		}
		if v := crgb16Model(color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}); v != c {
			t.Errorf("%#04x: round trip through RGBA gave %#04x", c.V, v.(CRGB16).V)
		}
	}
}

func TestCRGB16RGB666(t *testing.T) {
	tests := []struct {
		c       CRGB16
		r, g, b byte
	}{
		{Black, 0x00, 0x00, 0x00},
		{White, 0xf8, 0xfc, 0xf8},
		{Red, 0xf8, 0x00, 0x00},
		{Green, 0x00, 0xfc, 0x00},
		{Blue, 0x00, 0x00, 0xf8},
	}
	for _, test := range tests {
		r, g, b := test.c.RGB666()
		if r != test.r || g != test.g || b != test.b {
			t.Errorf("%#04x: expected %#02x %#02x %#02x, got %#02x %#02x %#02x", test.c.V, test.r, test.g, test.b, r, g, b)
		}
	}
}
