package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Buffer holds the pixel values of an image.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

// Clear sets every byte to zero, which is black in RGB565.
func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

// NewCRGB16Image allocates a w by h image, stored big endian like the panel RAM.
func NewCRGB16Image(w, h int) *CRGB16Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &CRGB16Image{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, w*2*h),
			Stride: w * 2,
		},
		Order: binary.BigEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) offset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return CRGB16{p.Order.Uint16(p.Pix[p.offset(x, y):])}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, crgb16Model(c).(CRGB16).V)
}

// RGB565At returns the raw pixel value at (x, y), or 0 outside of the bounds.
func (p *CRGB16Image) RGB565At(x, y int) uint16 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return 0
	}
	return p.Order.Uint16(p.Pix[p.offset(x, y):])
}

// SetRGB565 sets the raw pixel value at (x, y). Pixels outside of the bounds are ignored.
func (p *CRGB16Image) SetRGB565(x, y int, v uint16) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint16(p.Pix[p.offset(x, y):], v)
}

// FillRGB565 sets every pixel to the raw value v.
func (p *CRGB16Image) FillRGB565(v uint16) {
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, v)
	for i, l := 0, len(p.Pix); i+1 < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

// RGB666 appends the pixels inside r, row by row, as 3 bytes per pixel to dst.
func (p *CRGB16Image) RGB666(dst []byte, r image.Rectangle) []byte {
	r = r.Intersect(p.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			red, grn, blu := CRGB16{p.Order.Uint16(p.Pix[p.offset(x, y):])}.RGB666()
			dst = append(dst, red, grn, blu)
		}
	}
	return dst
}
