package draw

import (
	"image"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Blit copies src into dst with its top left corner at pt, turned clockwise by 0, 90, 180 or 270
// degrees. It returns the part of dst that was written.
func Blit(dst Image, pt image.Point, src image.Image, rotate int) image.Rectangle {
	var (
		b    = src.Bounds()
		size = b.Size()
	)
	if rotate == 90 || rotate == 270 {
		size.X, size.Y = size.Y, size.X
	}
	r := image.Rectangle{Min: pt, Max: pt.Add(size)}.Intersect(dst.Bounds())
	if r.Empty() {
		return image.Rectangle{}
	}
	if rotate == 0 {
		draw.Draw(dst, r, src, b.Min.Add(r.Min.Sub(pt)), draw.Src)
		return r
	}

	w, h := b.Dx(), b.Dy()
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			dx, dy := sx, sy
			switch rotate {
			case 90:
				dx, dy = h-1-sy, sx
			case 180:
				dx, dy = w-1-sx, h-1-sy
			case 270:
				dx, dy = sy, w-1-sx
			}
			dst.Set(pt.X+dx, pt.Y+dy, src.At(b.Min.X+sx, b.Min.Y+sy))
		}
	}
	return r
}
