package draw

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testInk = color.RGBA{R: 0xff, A: 0xff}

func testCanvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 24, 24))
}

func testSet(img *image.RGBA, x, y int) bool {
	return img.RGBAAt(x, y) == testInk
}

func testCount(img *image.RGBA) (n int) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if testSet(img, x, y) {
				n++
			}
		}
	}
	return
}

func TestLine(t *testing.T) {
	tests := []struct {
		Name string
		A, B image.Point
		Want int
	}{
		{"point", image.Pt(3, 3), image.Pt(3, 3), 1},
		{"horizontal", image.Pt(1, 2), image.Pt(10, 2), 10},
		{"vertical", image.Pt(4, 9), image.Pt(4, 0), 10},
		{"diagonal", image.Pt(0, 0), image.Pt(5, 5), 6},
		{"shallow", image.Pt(0, 0), image.Pt(10, 3), 11},
		{"steep", image.Pt(2, 12), image.Pt(0, 0), 13},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			img := testCanvas()
			Line(img, test.A, test.B, testInk)
			assert.Equal(it, test.Want, testCount(img))
			assert.True(it, testSet(img, test.A.X, test.A.Y))
			assert.True(it, testSet(img, test.B.X, test.B.Y))
		})
	}
}

func TestHorizontalVerticalLine(t *testing.T) {
	img := testCanvas()
	HorizontalLine(img, 2, 3, 5, testInk)
	assert.Equal(t, 5, testCount(img))
	assert.True(t, testSet(img, 6, 3))
	assert.False(t, testSet(img, 7, 3))

	img = testCanvas()
	VerticalLine(img, 2, 3, 4, testInk)
	assert.Equal(t, 4, testCount(img))
	assert.True(t, testSet(img, 2, 6))
	assert.False(t, testSet(img, 2, 7))

	img = testCanvas()
	HorizontalLine(img, 2, 3, 0, testInk)
	VerticalLine(img, 2, 3, -1, testInk)
	assert.Zero(t, testCount(img))
}

func TestRectangle(t *testing.T) {
	img := testCanvas()
	Rectangle(img, image.Rect(1, 1, 5, 5), testInk)
	assert.Equal(t, 12, testCount(img))
	assert.True(t, testSet(img, 1, 1))
	assert.True(t, testSet(img, 4, 4))
	assert.False(t, testSet(img, 2, 2))
	assert.False(t, testSet(img, 5, 5))

	img = testCanvas()
	Rectangle(img, image.Rect(3, 3, 3, 8), testInk)
	assert.Zero(t, testCount(img))
}

func TestBox(t *testing.T) {
	img := testCanvas()
	Box(img, image.Rect(2, 2, 6, 5), testInk)
	assert.Equal(t, 12, testCount(img))
	assert.True(t, testSet(img, 3, 3))
	assert.False(t, testSet(img, 6, 2))
}

func TestCircle(t *testing.T) {
	img := testCanvas()
	Circle(img, image.Pt(10, 10), 5, testInk)
	for _, p := range []image.Point{{10, 5}, {10, 15}, {5, 10}, {15, 10}} {
		assert.True(t, testSet(img, p.X, p.Y), "expected %s to be set", p)
	}
	assert.False(t, testSet(img, 10, 10))

	img = testCanvas()
	FillCircle(img, image.Pt(10, 10), 3, testInk)
	for _, p := range []image.Point{{10, 10}, {10, 7}, {13, 10}, {7, 10}, {12, 12}} {
		assert.True(t, testSet(img, p.X, p.Y), "expected %s to be set", p)
	}
	assert.False(t, testSet(img, 13, 13))
	assert.False(t, testSet(img, 14, 10))
}

func TestEllipse(t *testing.T) {
	img := testCanvas()
	Ellipse(img, image.Pt(10, 10), 4, 2, testInk)
	for _, p := range []image.Point{{14, 10}, {6, 10}, {10, 12}, {10, 8}} {
		assert.True(t, testSet(img, p.X, p.Y), "expected %s to be set", p)
	}
	assert.False(t, testSet(img, 10, 10))

	img = testCanvas()
	FillEllipse(img, image.Pt(10, 10), 4, 2, testInk)
	assert.True(t, testSet(img, 10, 10))
	assert.True(t, testSet(img, 6, 10))
	assert.True(t, testSet(img, 14, 10))
	assert.True(t, testSet(img, 10, 12))
	assert.False(t, testSet(img, 14, 12))
}

func TestRegularPolygon(t *testing.T) {
	assert.Nil(t, RegularPolygon(2, image.Pt(0, 0), 5, 0))
	assert.Equal(t, []image.Point{
		{15, 10}, {10, 15}, {5, 10}, {10, 5},
	}, RegularPolygon(4, image.Pt(10, 10), 5, 0))
	assert.Equal(t, image.Pt(10, 15), RegularPolygon(3, image.Pt(10, 10), 5, 90)[0])
}

func TestPolygon(t *testing.T) {
	square := []image.Point{{2, 2}, {6, 2}, {6, 6}, {2, 6}}

	img := testCanvas()
	Polygon(img, square, testInk)
	assert.Equal(t, 16, testCount(img))
	assert.False(t, testSet(img, 4, 4))

	img = testCanvas()
	FillPolygon(img, square, testInk)
	assert.Equal(t, 25, testCount(img))
	assert.True(t, testSet(img, 4, 4))
	assert.True(t, testSet(img, 6, 6))
	assert.False(t, testSet(img, 7, 4))

	img = testCanvas()
	FillPolygon(img, RegularPolygon(3, image.Pt(12, 12), 8, -90), testInk)
	assert.True(t, testSet(img, 12, 12))
	assert.True(t, testSet(img, 12, 4))
	assert.False(t, testSet(img, 4, 4))
}
