package ili9488

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF support
	_ "image/jpeg" // JPEG support
	_ "image/png"  // PNG support
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // BMP support
	xdraw "golang.org/x/image/draw"

	"github.com/BeatGlow/screenili/pixel"
)

// ErrSprite is returned for sprite buffers that don't match their size.
var ErrSprite = errors.New("ili9488: invalid sprite")

// DrawImage draws an image file at (x,y) scaled to w by h pixels.
//
// Files with a .raw extension are RGB565 big endian pixel dumps of exactly w by h pixels. Other
// files are decoded as PNG, JPEG, GIF or BMP; w or h <= 0 keep the image size.
func (d *Dev) DrawImage(path string, x, y, w, h int) error {
	img, err := loadImage(path, w, h)
	if err != nil {
		return err
	}
	return d.blit(img, x, y, 0)
}

// LoadSprite loads an image file as an RGB565 big endian buffer for DrawSprite.
func (d *Dev) LoadSprite(path string, w, h int) ([]byte, error) {
	img, err := loadImage(path, w, h)
	if err != nil {
		return nil, err
	}
	return img.Pix, nil
}

// DrawSprite draws a w by h RGB565 big endian buffer at (x,y).
func (d *Dev) DrawSprite(buf []byte, x, y, w, h int) error {
	img, err := spriteImage(buf, w, h)
	if err != nil {
		return err
	}
	return d.blit(img, x, y, 0)
}

func spriteImage(buf []byte, w, h int) (*pixel.CRGB16Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrSprite, w, h)
	}
	if len(buf) < w*h*2 {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrSprite, w, h, w*h*2, len(buf))
	}
	img := pixel.NewCRGB16Image(w, h)
	copy(img.Pix, buf)
	return img, nil
}

func loadImage(path string, w, h int) (*pixel.CRGB16Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".raw") {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ili9488: image: %w", err)
		}
		img, err := spriteImage(b, w, h)
		if err != nil {
			return nil, fmt.Errorf("ili9488: image %s: %w", path, err)
		}
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ili9488: image: %w", err)
	}
	defer func() { _ = f.Close() }()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ili9488: image %s: %w", path, err)
	}

	size := src.Bounds().Size()
	if w <= 0 || h <= 0 {
		w, h = size.X, size.Y
	}
	dst := pixel.NewCRGB16Image(w, h)
	if size == image.Pt(w, h) {
		xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	}
	return dst, nil
}
