package ili9488

import (
	"image"

	"github.com/BeatGlow/screenili/draw"
	"github.com/BeatGlow/screenili/pixel"
)

func ink(c uint16) pixel.CRGB16 {
	return pixel.CRGB16{V: c}
}

// span is the smallest rectangle holding all points.
func span(points ...image.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: points[0], Max: points[0].Add(image.Pt(1, 1))}
	for _, p := range points[1:] {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return r
}

func around(x, y, rx, ry int) image.Rectangle {
	return image.Rect(x-rx, y-ry, x+rx+1, y+ry+1)
}

// DrawPixel sets a single pixel.
func (d *Dev) DrawPixel(x, y int, c uint16) error {
	d.buf.SetRGB565(x, y, c)
	return d.touch(image.Rect(x, y, x+1, y+1))
}

// DrawLine draws a line between (x1,y1) and (x2,y2).
func (d *Dev) DrawLine(x1, y1, x2, y2 int, c uint16) error {
	a, b := image.Pt(x1, y1), image.Pt(x2, y2)
	draw.Line(d.buf, a, b, ink(c))
	return d.touch(span(a, b))
}

// DrawHLine draws a horizontal line of w pixels starting at (x,y).
func (d *Dev) DrawHLine(x, y, w int, c uint16) error {
	draw.HorizontalLine(d.buf, x, y, w, ink(c))
	return d.touch(image.Rect(x, y, x+w, y+1))
}

// DrawVLine draws a vertical line of h pixels starting at (x,y).
func (d *Dev) DrawVLine(x, y, h int, c uint16) error {
	draw.VerticalLine(d.buf, x, y, h, ink(c))
	return d.touch(image.Rect(x, y, x+1, y+h))
}

// DrawRect draws a rectangle outline with its top left corner at (x,y).
func (d *Dev) DrawRect(x, y, w, h int, c uint16) error {
	r := image.Rect(x, y, x+w, y+h)
	draw.Rectangle(d.buf, r, ink(c))
	return d.touch(r)
}

// FillRect draws a filled rectangle with its top left corner at (x,y).
func (d *Dev) FillRect(x, y, w, h int, c uint16) error {
	r := image.Rect(x, y, x+w, y+h)
	draw.Box(d.buf, r, ink(c))
	return d.touch(r)
}

// DrawCircle draws a circle outline centered at (x,y).
func (d *Dev) DrawCircle(x, y, r int, c uint16) error {
	draw.Circle(d.buf, image.Pt(x, y), r, ink(c))
	return d.touch(around(x, y, r, r))
}

// FillCircle draws a filled circle centered at (x,y).
func (d *Dev) FillCircle(x, y, r int, c uint16) error {
	draw.FillCircle(d.buf, image.Pt(x, y), r, ink(c))
	return d.touch(around(x, y, r, r))
}

// DrawEllipse draws an ellipse outline centered at (x,y).
func (d *Dev) DrawEllipse(x, y, rx, ry int, c uint16) error {
	draw.Ellipse(d.buf, image.Pt(x, y), rx, ry, ink(c))
	return d.touch(around(x, y, rx, ry))
}

// FillEllipse draws a filled ellipse centered at (x,y).
func (d *Dev) FillEllipse(x, y, rx, ry int, c uint16) error {
	draw.FillEllipse(d.buf, image.Pt(x, y), rx, ry, ink(c))
	return d.touch(around(x, y, rx, ry))
}

// DrawPolygon draws a regular polygon outline inscribed in a circle of radius r at (x,y). The
// first vertex is at rotate degrees.
func (d *Dev) DrawPolygon(sides, x, y, r int, c uint16, rotate float64) error {
	points := draw.RegularPolygon(sides, image.Pt(x, y), r, rotate)
	draw.Polygon(d.buf, points, ink(c))
	return d.touch(span(points...))
}

// FillPolygon draws a filled regular polygon, see DrawPolygon.
func (d *Dev) FillPolygon(sides, x, y, r int, c uint16, rotate float64) error {
	points := draw.RegularPolygon(sides, image.Pt(x, y), r, rotate)
	draw.FillPolygon(d.buf, points, ink(c))
	return d.touch(span(points...))
}

// Clear fills the whole drawing area with c.
func (d *Dev) Clear(c uint16) error {
	if c == 0 {
		d.buf.Clear()
	} else {
		d.buf.FillRGB565(c)
	}
	return d.touch(d.buf.Bounds())
}

// blit copies src to (x,y), rotated clockwise by rotate degrees.
func (d *Dev) blit(src image.Image, x, y, rotate int) error {
	r := draw.Blit(d.buf, image.Pt(x, y), src, rotate)
	if r.Empty() {
		return nil
	}
	return d.touch(r)
}
