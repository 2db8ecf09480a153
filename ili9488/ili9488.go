// Package ili9488 drives ILI9488 TFT panels over SPI in 18-bit color mode.
//
// Drawing happens in an RGB565 frame buffer. Touched regions are sent to the panel as RGB666
// after every operation when auto-write is enabled, or on Refresh otherwise.
package ili9488

import (
	"errors"
	"fmt"
	"image"
	"os"
	"slices"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/screenili/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("SCREEN_DEBUG") != ""
}

// sleep is replaced in tests.
var sleep = time.Sleep

const (
	DefaultWidth  = 480
	DefaultHeight = 320
)

// Errors.
var (
	ErrResetPin  = errors.New("ili9488: reset GPIO pin is invalid")
	ErrDCPin     = errors.New("ili9488: data/command (DC) GPIO pin is invalid")
	ErrRotation  = errors.New("ili9488: unsupported rotation")
	ErrOperation = errors.New("ili9488: unknown operation")
)

// Opts are the driver options.
type Opts struct {
	// Width and Height are the native panel geometry at 0° rotation.
	Width, Height int

	// Rotation in degrees clockwise.
	Rotation int

	// AutoWrite sends every drawing operation to the panel immediately.
	AutoWrite bool

	// BatchSize is the largest single SPI transfer, 4096 when zero.
	BatchSize int
}

// DefaultOpts are the default options.
var DefaultOpts = Opts{
	Width:     DefaultWidth,
	Height:    DefaultHeight,
	AutoWrite: true,
	BatchSize: batchSize,
}

// Dev is an ILI9488 panel.
type Dev struct {
	c            *spiConn
	nativeWidth  int
	nativeHeight int
	madctl       byte
	autoWrite    bool
	buf          *pixel.CRGB16Image
	dirty        image.Rectangle
}

// New resets and initializes the panel connected to c.
func New(c spi.Conn, cs, dc, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	if rst == nil || rst == gpio.INVALID {
		return nil, ErrResetPin
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, ErrDCPin
	}
	if opts == nil {
		opts = new(Opts)
		*opts = DefaultOpts
	}

	madctl, ok := rotations[opts.Rotation]
	if !ok {
		return nil, fmt.Errorf("%w: %d°", ErrRotation, opts.Rotation)
	}

	d := &Dev{
		c:            newSPIConn(c, cs, dc, rst, opts.BatchSize),
		nativeWidth:  opts.Width,
		nativeHeight: opts.Height,
		madctl:       madctl,
		autoWrite:    opts.AutoWrite,
	}
	if d.nativeWidth <= 0 {
		d.nativeWidth = DefaultWidth
	}
	if d.nativeHeight <= 0 {
		d.nativeHeight = DefaultHeight
	}
	if opts.Rotation == 90 || opts.Rotation == 270 {
		d.SetSize(d.nativeHeight, d.nativeWidth)
	} else {
		d.SetSize(d.nativeWidth, d.nativeHeight)
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	bounds := d.Bounds()
	return fmt.Sprintf("ILI9488 %dx%d", bounds.Dx(), bounds.Dy())
}

func (d *Dev) init() (err error) {
	// reset the device.
	if err = d.c.Reset(gpio.High); err != nil {
		return
	}
	sleep(50 * time.Millisecond)
	if err = d.c.Reset(gpio.Low); err != nil {
		return
	}
	sleep(50 * time.Millisecond)
	if err = d.c.Reset(gpio.High); err != nil {
		return
	}
	sleep(150 * time.Millisecond)

	if err = d.commands([][]byte{
		{GMCTRP1, 0x00, 0x03, 0x09, 0x08, 0x16, 0x0A, 0x3F, 0x78, 0x4C, 0x09, 0x0A, 0x08, 0x16, 0x1A, 0x0F}, // Positive Gamma Control
		{GMCTRN1, 0x00, 0x16, 0x19, 0x03, 0x0F, 0x05, 0x32, 0x45, 0x46, 0x04, 0x0E, 0x0D, 0x35, 0x37, 0x0F}, // Negative Gamma Control
		{PWCTR1, 0x17, 0x15},              // Power Control 1: Vreg1out, Verg2out
		{PWCTR2, 0x41},                    // Power Control 2: VGH, VGL
		{VMCTR1, 0x00, 0x12, 0x80},        // VCOM Control
		{MADCTL, d.madctl},                // Memory Access Control
		{PIXFMT, 0x66},                    // Interface Pixel Format: 18 bits per pixel
		{IFMODE, 0x00},                    // Interface Mode Control: SDO used
		{FRMCTR1, 0xA0},                   // Frame Rate Control: 60Hz
		{INVCTR, 0x02},                    // Display Inversion Control: 2-dot
		{DFUNCTR, 0x02, 0x02, 0x3B},       // Display Function Control
		{ETMOD, 0xC6},                     // Entry Mode Set
		{ADJCTL3, 0xA9, 0x51, 0x2C, 0x82}, // Adjust Control 3: DSI write DCS command, loosely packet stream
		{SLPOUT},                          // Sleep Out
	}); err != nil {
		return fmt.Errorf("ili9488: init: %w", err)
	}
	sleep(120 * time.Millisecond)

	if err = d.c.Command(DISPON); err != nil {
		return fmt.Errorf("ili9488: init: %w", err)
	}
	sleep(100 * time.Millisecond)
	return
}

func (d *Dev) commands(commands [][]byte) (err error) {
	for _, command := range commands {
		if err = d.c.Command(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

// Bounds is the logical drawing area.
func (d *Dev) Bounds() image.Rectangle {
	return d.buf.Bounds()
}

// AutoWrite reports whether drawing operations are sent to the panel immediately.
func (d *Dev) AutoWrite() bool {
	return d.autoWrite
}

// Rotations returns the MADCTL value for every supported rotation in degrees.
func (d *Dev) Rotations() map[int]byte {
	out := make(map[int]byte, len(rotations))
	for deg, code := range rotations {
		out[deg] = code
	}
	return out
}

// SetRotation writes a MADCTL value from Rotations. The drawing area is not resized, see SetSize.
func (d *Dev) SetRotation(code byte) error {
	if err := d.c.Command(MADCTL, code); err != nil {
		return fmt.Errorf("ili9488: rotation: %w", err)
	}
	d.madctl = code
	return nil
}

// SetSize resizes the logical drawing area. The frame buffer is reallocated when the size changes.
func (d *Dev) SetSize(w, h int) {
	if d.buf != nil && d.buf.Bounds().Size() == image.Pt(w, h) {
		return
	}
	d.buf = pixel.NewCRGB16Image(w, h)
	d.dirty = image.Rectangle{}
}

// WriteCommand sends a raw command with parameters.
func (d *Dev) WriteCommand(cmd byte, data ...byte) error {
	return d.c.Command(cmd, data...)
}

// DisplayOn turns the panel on.
func (d *Dev) DisplayOn() error {
	return d.c.Command(DISPON)
}

// DisplayOff turns the panel off, memory content is retained.
func (d *Dev) DisplayOff() error {
	return d.c.Command(DISPOFF)
}

// Sleep enters or leaves sleep mode.
func (d *Dev) Sleep(enable bool) (err error) {
	if enable {
		return d.c.Command(SLPIN)
	}
	err = d.c.Command(SLPOUT)
	sleep(120 * time.Millisecond)
	return
}

// SetScrollArea defines the vertical scrolling area between top and bottom fixed areas, in
// panel memory lines.
func (d *Dev) SetScrollArea(top, bottom int) error {
	lines := max(d.nativeWidth, d.nativeHeight)
	if top < 0 || bottom < 0 || top+bottom > lines {
		return fmt.Errorf("ili9488: invalid scroll area top=%d bottom=%d, panel has %d lines", top, bottom, lines)
	}
	middle := lines - top - bottom
	return d.c.Command(VSCRDEF,
		byte(top>>8), byte(top),
		byte(middle>>8), byte(middle),
		byte(bottom>>8), byte(bottom))
}

// Scroll sets the vertical scroll start line.
func (d *Dev) Scroll(offset int) error {
	lines := max(d.nativeWidth, d.nativeHeight)
	offset %= lines
	if offset < 0 {
		offset += lines
	}
	return d.c.Command(VSCRSADD, byte(offset>>8), byte(offset))
}

// Refresh sends the whole frame buffer to the panel.
func (d *Dev) Refresh() error {
	d.dirty = d.buf.Bounds()
	return d.flush()
}

func (d *Dev) setWindow(r image.Rectangle) error {
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	return d.commands([][]byte{
		{CASET, byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}, // Column address
		{PASET, byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}, // Page address
		{RAMWR}, // Write to RAM
	})
}

// touch marks r as changed and flushes when auto-write is enabled.
func (d *Dev) touch(r image.Rectangle) error {
	d.dirty = d.dirty.Union(r.Intersect(d.buf.Bounds()))
	if !d.autoWrite {
		return nil
	}
	return d.flush()
}

func (d *Dev) flush() error {
	r := d.dirty
	if r.Empty() {
		return nil
	}
	d.dirty = image.Rectangle{}
	if err := d.setWindow(r); err != nil {
		return fmt.Errorf("ili9488: window: %w", err)
	}
	data := d.buf.RGB666(make([]byte, 0, r.Dx()*r.Dy()*3), r)
	if err := d.c.Data(data...); err != nil {
		return fmt.Errorf("ili9488: write: %w", err)
	}
	return nil
}

// Operations lists the names accepted by Operation.
func (d *Dev) Operations() []string {
	return []string{"brightness", "idle", "invert"}
}

// Operation runs a named panel feature that has no dedicated method:
//
//	brightness <0-255>   display brightness (WRDISBV)
//	idle <bool>          idle mode, 8 colors (IDMON/IDMOFF)
//	invert <bool>        color inversion (INVON/INVOFF)
func (d *Dev) Operation(name string, args ...any) (any, error) {
	if !slices.Contains(d.Operations(), name) {
		return nil, fmt.Errorf("%w %q", ErrOperation, name)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("ili9488: %s takes 1 argument, got %d", name, len(args))
	}

	switch name {
	case "brightness":
		level, ok := args[0].(int)
		if !ok || level < 0 || level > 0xff {
			return nil, fmt.Errorf("ili9488: brightness must be an int between 0 and 255, got %v", args[0])
		}
		return nil, d.c.Command(WRDISBV, byte(level))
	default:
		enable, ok := args[0].(bool)
		if !ok {
			return nil, fmt.Errorf("ili9488: %s takes a bool, got %T", name, args[0])
		}
		on, off := byte(INVON), byte(INVOFF)
		if name == "idle" {
			on, off = IDMON, IDMOFF
		}
		if enable {
			return nil, d.c.Command(on)
		}
		return nil, d.c.Command(off)
	}
}
