package ili9488

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/screenili/font8x8"
	"github.com/BeatGlow/screenili/pixel"
)

// LoadFont loads a TrueType font file as a face of size points at 72 DPI, so size is in pixels.
func LoadFont(path string, size float64) (font.Face, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ili9488: font: %w", err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("ili9488: font %s: %w", path, err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// DrawText8x8 draws text with the built-in 8x8 font, rotated clockwise by rotate degrees
// (0, 90, 180 or 270) around its top left corner at (x,y).
func (d *Dev) DrawText8x8(x, y int, text string, fg, bg uint16, rotate int) error {
	switch rotate {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("%w: text at %d°", ErrRotation, rotate)
	}
	return d.blit(renderText(font8x8.Face, text, fg, bg, 0), x, y, rotate)
}

// DrawText draws text with face. In landscape mode the text runs bottom to top. Spacing adds
// pixels between glyphs.
func (d *Dev) DrawText(x, y int, text string, face font.Face, fg, bg uint16, landscape bool, spacing int) error {
	if face == nil {
		face = font8x8.Face
	}
	rotate := 0
	if landscape {
		rotate = 270
	}
	return d.blit(renderText(face, text, fg, bg, spacing), x, y, rotate)
}

// renderText draws text on a bg filled image just large enough to hold it.
func renderText(face font.Face, text string, fg, bg uint16, spacing int) *pixel.CRGB16Image {
	var (
		m     = face.Metrics()
		runes = []rune(text)
		w     = font.MeasureString(face, text).Ceil()
		h     = (m.Ascent + m.Descent).Ceil()
	)
	if len(runes) > 1 {
		w += spacing * (len(runes) - 1)
	}

	img := pixel.NewCRGB16Image(w, h)
	img.FillRGB565(bg)

	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(pixel.CRGB16{V: fg}),
		Face: face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	for i, r := range runes {
		if i > 0 {
			dr.Dot.X += fixed.I(spacing)
		}
		dr.DrawString(string(r))
	}
	return img
}
