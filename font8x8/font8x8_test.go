package font8x8

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestGlyph(t *testing.T) {
	assert.Equal(t, [Size]byte{0x0c, 0x1e, 0x33, 0x33, 0x3f, 0x33, 0x33, 0x00}, Glyph('A'))
	assert.Equal(t, Glyph('?'), Glyph('\u00e9'))
	assert.Equal(t, Glyph('?'), Glyph('\n'))
	assert.Equal(t, [Size]byte{}, Glyph(' '))
}

func TestFaceMetrics(t *testing.T) {
	assert.Equal(t, fixed.I(3*Size), font.MeasureString(Face, "abc"))

	m := Face.Metrics()
	assert.Equal(t, fixed.I(Size), m.Height)
	assert.Equal(t, fixed.I(Size-1), m.Ascent)
}

func TestFaceDraw(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2*Size, Size))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: Face,
		Dot:  fixed.P(0, Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString("A\u2603")

	for _, test := range []struct {
		R     rune
		Left  int
		Glyph [Size]byte
	}{
		{'A', 0, Glyph('A')},
		{'?', Size, Glyph('?')},
	} {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				want := test.Glyph[row]&(1<<col) != 0
				got := img.GrayAt(test.Left+col, row).Y != 0
				require.Equal(t, want, got, "glyph %q pixel (%d,%d)", test.R, col, row)
			}
		}
	}

	// Dot advanced past both cells, even for the substituted rune.
	assert.Equal(t, fixed.I(2*Size), d.Dot.X)
}
