package draw

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// Ellipse draws an ellipse outline around center with horizontal radius rx and vertical radius ry.
func Ellipse(dst Image, center image.Point, rx, ry int, c color.Color) {
	if rx < 0 || ry < 0 {
		return
	}
	if rx == 0 || ry == 0 {
		Line(dst, image.Pt(center.X-rx, center.Y-ry), image.Pt(center.X+rx, center.Y+ry), c)
		return
	}

	// Walk both axes so steep and flat segments are both gap free.
	for x := -rx; x <= rx; x++ {
		y := ellipseSpan(x, rx, ry)
		dst.Set(center.X+x, center.Y+y, c)
		dst.Set(center.X+x, center.Y-y, c)
	}
	for y := -ry; y <= ry; y++ {
		x := ellipseSpan(y, ry, rx)
		dst.Set(center.X+x, center.Y+y, c)
		dst.Set(center.X-x, center.Y+y, c)
	}
}

// FillEllipse draws a filled ellipse around center.
func FillEllipse(dst Image, center image.Point, rx, ry int, c color.Color) {
	if rx < 0 || ry < 0 {
		return
	}
	if ry == 0 {
		HorizontalLine(dst, center.X-rx, center.Y, 2*rx+1, c)
		return
	}
	for y := -ry; y <= ry; y++ {
		x := ellipseSpan(y, ry, rx)
		HorizontalLine(dst, center.X-x, center.Y+y, 2*x+1, c)
	}
}

// ellipseSpan returns the half chord on the other axis at offset d along an axis of radius a.
func ellipseSpan(d, a, b int) int {
	t := 1 - float64(d*d)/float64(a*a)
	if t <= 0 {
		return 0
	}
	return int(math.Round(float64(b) * math.Sqrt(t)))
}

// RegularPolygon returns the vertices of a regular polygon with the given number of sides,
// inscribed in a circle of radius r around center. The first vertex sits at rotate degrees,
// measured clockwise from the positive X axis (screen coordinates).
func RegularPolygon(sides int, center image.Point, r int, rotate float64) []image.Point {
	if sides < 3 {
		return nil
	}
	points := make([]image.Point, sides)
	for i := range points {
		a := (rotate + float64(i)*360/float64(sides)) * math.Pi / 180
		points[i] = image.Point{
			X: center.X + int(math.Round(float64(r)*math.Cos(a))),
			Y: center.Y + int(math.Round(float64(r)*math.Sin(a))),
		}
	}
	return points
}

// Polygon draws the closed outline through points.
func Polygon(dst Image, points []image.Point, c color.Color) {
	switch len(points) {
	case 0:
		return
	case 1:
		dst.Set(points[0].X, points[0].Y, c)
		return
	}
	for i, p := range points {
		Line(dst, p, points[(i+1)%len(points)], c)
	}
}

// FillPolygon fills the polygon through points using the even-odd rule.
func FillPolygon(dst Image, points []image.Point, c color.Color) {
	if len(points) < 3 {
		Polygon(dst, points, c)
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	xs := make([]int, 0, len(points))
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i, a := range points {
			b := points[(i+1)%len(points)]
			if a.Y == b.Y {
				continue
			}
			if (a.Y <= y && y < b.Y) || (b.Y <= y && y < a.Y) {
				t := float64(y-a.Y) / float64(b.Y-a.Y)
				xs = append(xs, int(math.Round(float64(a.X)+t*float64(b.X-a.X))))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			HorizontalLine(dst, xs[i], y, xs[i+1]-xs[i]+1, c)
		}
	}

	// The half-open scanline rule leaves the bottom edge and vertices out.
	Polygon(dst, points, c)
}
