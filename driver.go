package screen

import (
	"golang.org/x/image/font"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/screenili/ili9488"
)

// Driver is the panel driver the device forwards to. Colors are RGB565.
type Driver interface {
	// Rotations maps supported rotations in degrees to the driver's orientation code.
	Rotations() map[int]byte

	// SetRotation sends an orientation code from Rotations to the panel.
	SetRotation(code byte) error

	// SetSize sets the logical drawing area.
	SetSize(w, h int)

	// WriteCommand sends a raw panel command.
	WriteCommand(cmd byte, data ...byte) error

	DrawPixel(x, y int, c uint16) error
	DrawLine(x1, y1, x2, y2 int, c uint16) error
	DrawHLine(x, y, w int, c uint16) error
	DrawVLine(x, y, h int, c uint16) error
	DrawRect(x, y, w, h int, c uint16) error
	FillRect(x, y, w, h int, c uint16) error
	DrawCircle(x, y, r int, c uint16) error
	FillCircle(x, y, r int, c uint16) error
	DrawEllipse(x, y, rx, ry int, c uint16) error
	FillEllipse(x, y, rx, ry int, c uint16) error
	DrawPolygon(sides, x, y, r int, c uint16, rotate float64) error
	FillPolygon(sides, x, y, r int, c uint16, rotate float64) error

	DrawText8x8(x, y int, text string, fg, bg uint16, rotate int) error
	DrawText(x, y int, text string, face font.Face, fg, bg uint16, landscape bool, spacing int) error

	DrawImage(path string, x, y, w, h int) error
	LoadSprite(path string, w, h int) ([]byte, error)
	DrawSprite(buf []byte, x, y, w, h int) error

	// Clear fills the drawing area with c.
	Clear(c uint16) error

	DisplayOn() error
	DisplayOff() error
	Sleep(enable bool) error

	SetScrollArea(top, bottom int) error
	Scroll(offset int) error

	// Refresh sends the whole drawing area to the panel.
	Refresh() error
}

// Operator is implemented by drivers with features outside of Driver, see Device.Call.
type Operator interface {
	// Operations lists the supported operation names.
	Operations() []string

	// Operation runs a named operation.
	Operation(name string, args ...any) (any, error)
}

// DriverOpts is what a DriverFunc gets to build a driver.
type DriverOpts struct {
	CS, DC, Reset gpio.PinOut

	// Width and Height are the native panel geometry.
	Width, Height int

	Rotation  Rotation
	AutoWrite bool
}

// DriverFunc builds a driver on an SPI connection.
type DriverFunc func(c spi.Conn, opts DriverOpts) (Driver, error)

// ILI9488 builds the ILI9488 driver.
func ILI9488(c spi.Conn, opts DriverOpts) (Driver, error) {
	d, err := ili9488.New(c, opts.CS, opts.DC, opts.Reset, &ili9488.Opts{
		Width:     opts.Width,
		Height:    opts.Height,
		Rotation:  int(opts.Rotation),
		AutoWrite: opts.AutoWrite,
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Interface checks.
var (
	_ Driver   = (*ili9488.Dev)(nil)
	_ Operator = (*ili9488.Dev)(nil)
)
