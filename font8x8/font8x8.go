// Package font8x8 is a fixed 8x8 pixel bitmap font covering printable ASCII.
package font8x8

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// Size is the glyph cell size in pixels.
	Size = 8

	firstRune   = 0x20
	replacement = '?'
)

// Face is the 8x8 font. Runes outside of the printable ASCII range render as '?'.
var Face font.Face = newFace()

func newFace() *basicfont.Face {
	mask := image.NewAlpha(image.Rect(0, 0, Size, Size*len(glyphs)))
	for i, glyph := range glyphs {
		for row, bits := range glyph {
			for col := 0; col < Size; col++ {
				if bits&(1<<col) != 0 {
					mask.Pix[(i*Size+row)*mask.Stride+col] = 0xff
				}
			}
		}
	}
	return &basicfont.Face{
		Advance: Size,
		Width:   Size,
		Height:  Size,
		Ascent:  Size - 1,
		Descent: 1,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: firstRune, High: firstRune + rune(len(glyphs)), Offset: 0},
			{Low: '\ufffd', High: '\ufffe', Offset: replacement - firstRune},
		},
	}
}

// Glyph returns the rows of r, bit 0 being the leftmost pixel.
func Glyph(r rune) [Size]byte {
	if r < firstRune || r >= firstRune+rune(len(glyphs)) {
		r = replacement
	}
	return glyphs[r-firstRune]
}
