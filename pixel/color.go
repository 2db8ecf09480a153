package pixel

import "image/color"

// CRGB16Model converts colors to CRGB16.
var CRGB16Model color.Model = color.ModelFunc(crgb16Model)

// Common RGB565 colors.
var (
	Black = CRGB16{0x0000}
	White = CRGB16{0xffff}
	Red   = CRGB16{0xf800}
	Green = CRGB16{0x07e0}
	Blue  = CRGB16{0x001f}
)

// Color565 packs 8-bit red, green and blue components into a 16-bit 5-6-5 RGB value.
func Color565(r, g, b uint8) uint16 {
	return uint16(r&0xf8)<<8 | uint16(g&0xfc)<<3 | uint16(b)>>3
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

// RGB returns the 8-bit components of the color, with the low bits replicated.
func (c CRGB16) RGB() (r, g, b uint8) {
	red := (c.V & 0xf800) >> 8
	grn := (c.V & 0x07e0) >> 3
	blu := (c.V & 0x001f) << 3
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	return uint8(red), uint8(grn), uint8(blu)
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	red, grn, blu := c.RGB()
	// Duplicate the whole value in the high byte.
	r = uint32(red) | uint32(red)<<8
	g = uint32(grn) | uint32(grn)<<8
	b = uint32(blu) | uint32(blu)<<8
	return r, g, b, 0xffff
}

// RGB666 returns the three bytes an 18-bit interface expects for this color. Only the upper six
// bits of each byte are significant.
func (c CRGB16) RGB666() (r, g, b byte) {
	return byte(c.V>>8) & 0xf8, byte(c.V>>3) & 0xfc, byte(c.V<<3) & 0xf8
}

func crgb16Model(c color.Color) color.Color {
	if c, ok := c.(CRGB16); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = (r & 0xf800)
	g = (g & 0xfc00) >> 5
	b = (b & 0xf800) >> 11
	return CRGB16{uint16(r | g | b)}
}
