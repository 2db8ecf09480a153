package screen

import "golang.org/x/image/font"

// TextOpts are the options for Text.
type TextOpts struct {
	// Face is the font, nil for the built-in 8x8 font.
	Face font.Face

	// Color and Background are RGB565 colors.
	Color, Background uint16

	// Landscape draws the text bottom to top. Ignored by the 8x8 font.
	Landscape bool

	// Spacing is the number of pixels between glyphs. Ignored by the 8x8 font.
	Spacing int
}

// DefaultTextOpts draws white on black with the built-in font.
var DefaultTextOpts = TextOpts{
	Color:   0xffff,
	Spacing: 1,
}

func (d *Device) check() error {
	if d.closed {
		return ErrClosed
	}
	return nil
}

// Pixel sets a single pixel.
func (d *Device) Pixel(x, y int, c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Debug("pixel", "x", x, "y", y, "color", c)
	return d.driver.DrawPixel(x, y, c)
}

// Line draws a line between (x1,y1) and (x2,y2).
func (d *Device) Line(x1, y1, x2, y2 int, c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Debug("line", "x1", x1, "y1", y1, "x2", x2, "y2", y2, "color", c)
	return d.driver.DrawLine(x1, y1, x2, y2, c)
}

// HLine draws a horizontal line of w pixels.
func (d *Device) HLine(x, y, w int, c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Debug("hline", "x", x, "y", y, "w", w, "color", c)
	return d.driver.DrawHLine(x, y, w, c)
}

// VLine draws a vertical line of h pixels.
func (d *Device) VLine(x, y, h int, c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Debug("vline", "x", x, "y", y, "h", h, "color", c)
	return d.driver.DrawVLine(x, y, h, c)
}

// Rect draws a rectangle outline.
func (d *Device) Rect(x, y, w, h int, c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("rect", "x", x, "y", y, "w", w, "h", h, "color", c)
	return d.driver.DrawRect(x, y, w, h, c)
}

// FillRect draws a filled rectangle.
func (d *Device) FillRect(x, y, w, h int, c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("fill_rect", "x", x, "y", y, "w", w, "h", h, "color", c)
	return d.driver.FillRect(x, y, w, h, c)
}

// Circle draws a circle outline centered at (x,y).
func (d *Device) Circle(x, y, r int, c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("circle", "x", x, "y", y, "r", r, "color", c)
	return d.driver.DrawCircle(x, y, r, c)
}

// FillCircle draws a filled circle centered at (x,y).
func (d *Device) FillCircle(x, y, r int, c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("fill_circle", "x", x, "y", y, "r", r, "color", c)
	return d.driver.FillCircle(x, y, r, c)
}

// Ellipse draws an ellipse outline centered at (x,y).
func (d *Device) Ellipse(x, y, rx, ry int, c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("ellipse", "x", x, "y", y, "rx", rx, "ry", ry, "color", c)
	return d.driver.DrawEllipse(x, y, rx, ry, c)
}

// FillEllipse draws a filled ellipse centered at (x,y).
func (d *Device) FillEllipse(x, y, rx, ry int, c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("fill_ellipse", "x", x, "y", y, "rx", rx, "ry", ry, "color", c)
	return d.driver.FillEllipse(x, y, rx, ry, c)
}

// Polygon draws a regular polygon outline of radius r centered at (x0,y0).
func (d *Device) Polygon(sides, x0, y0, r int, c uint16, rotate float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("polygon", "sides", sides, "x0", x0, "y0", y0, "r", r, "color", c, "rotate", rotate)
	return d.driver.DrawPolygon(sides, x0, y0, r, c, rotate)
}

// FillPolygon draws a filled regular polygon of radius r centered at (x0,y0).
func (d *Device) FillPolygon(sides, x0, y0, r int, c uint16, rotate float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("fill_polygon", "sides", sides, "x0", x0, "y0", y0, "r", r, "color", c, "rotate", rotate)
	return d.driver.FillPolygon(sides, x0, y0, r, c, rotate)
}

// Text8x8 draws text with the built-in 8x8 font, rotated by 0, 90, 180 or 270 degrees.
func (d *Device) Text8x8(x, y int, text string, fg, bg uint16, rotate int) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("text8x8", "x", x, "y", y, "text", text, "color", fg, "background", bg, "rotate", rotate)
	return d.driver.DrawText8x8(x, y, text, fg, bg, rotate)
}

// Text draws text. A nil opts uses DefaultTextOpts.
func (d *Device) Text(x, y int, text string, opts *TextOpts) error {
	if err := d.check(); err != nil {
		return err
	}
	if opts == nil {
		opts = &DefaultTextOpts
	}
	fontName := "builtin"
	if opts.Face != nil {
		fontName = "face"
	}
	d.log.Info("text", "x", x, "y", y, "text", text, "font", fontName, "color", opts.Color,
		"background", opts.Background, "landscape", opts.Landscape)
	if opts.Face == nil {
		return d.driver.DrawText8x8(x, y, text, opts.Color, opts.Background, 0)
	}
	return d.driver.DrawText(x, y, text, opts.Face, opts.Color, opts.Background, opts.Landscape, opts.Spacing)
}

// Image draws an image file at (x,y). A width or height <= 0 uses the logical display size.
func (d *Device) Image(path string, x, y, w, h int) error {
	if err := d.check(); err != nil {
		return err
	}
	if w <= 0 {
		w = d.width
	}
	if h <= 0 {
		h = d.height
	}
	d.log.Info("image", "path", path, "x", x, "y", y, "w", w, "h", h)
	return d.driver.DrawImage(path, x, y, w, h)
}

// Sprite draws a w by h RGB565 big endian buffer at (x,y).
func (d *Device) Sprite(buf []byte, x, y, w, h int) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("sprite", "x", x, "y", y, "w", w, "h", h)
	return d.driver.DrawSprite(buf, x, y, w, h)
}

// BlitBuffer is Sprite.
func (d *Device) BlitBuffer(buf []byte, x, y, w, h int) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("blit_buffer", "x", x, "y", y, "w", w, "h", h)
	return d.Sprite(buf, x, y, w, h)
}

// LoadSprite loads an image file as a buffer for Sprite.
func (d *Device) LoadSprite(path string, w, h int) ([]byte, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	d.log.Info("load_sprite", "path", path, "w", w, "h", h)
	return d.driver.LoadSprite(path, w, h)
}

// Fill fills the display with c.
func (d *Device) Fill(c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("fill", "color", c)
	return d.driver.Clear(c)
}

// Clear fills the display with c, usually black.
func (d *Device) Clear(c uint16) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("clear", "color", c)
	return d.driver.Clear(c)
}

// On turns the display on.
func (d *Device) On() error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("display_on")
	return d.driver.DisplayOn()
}

// Off turns the display off.
func (d *Device) Off() error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("display_off")
	return d.driver.DisplayOff()
}

// Sleep enters or leaves the panel sleep mode.
func (d *Device) Sleep(enable bool) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("sleep", "enable", enable)
	return d.driver.Sleep(enable)
}

// SetScroll defines the vertical scroll area between fixed top and bottom margins.
func (d *Device) SetScroll(top, bottom int) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("scroll:set", "top", top, "bottom", bottom)
	return d.driver.SetScrollArea(top, bottom)
}

// Scroll moves the scroll area start line.
func (d *Device) Scroll(offset int) error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Debug("scroll", "offset", offset)
	return d.driver.Scroll(offset)
}

// Refresh sends the whole frame to the panel, needed after drawing when auto-write is off.
func (d *Device) Refresh() error {
	if err := d.check(); err != nil {
		return err
	}
	d.log.Info("refresh")
	return d.driver.Refresh()
}
