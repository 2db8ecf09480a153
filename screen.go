// Package screen is a device handle for SPI TFT panels.
//
// A Device owns the bus setup, keeps track of the orientation and of the logical drawing size,
// and forwards drawing to a Driver. The default driver is package ili9488.
package screen

import (
	"fmt"
	"image"
	"runtime"
	"slices"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/screenili/internal/log"
	"github.com/BeatGlow/screenili/pixel"
)

// sleep is replaced in tests.
var sleep = time.Sleep

// Color565 packs 8-bit red, green and blue components into an RGB565 color.
func Color565(r, g, b uint8) uint16 {
	return pixel.Color565(r, g, b)
}

// Device is a display handle. It is not safe for concurrent use.
type Device struct {
	log          *log.Logger
	bus          *bus
	driver       Driver
	nativeWidth  int
	nativeHeight int
	width        int
	height       int
	rotation     Rotation
	autoWrite    bool
	closed       bool
}

// New sets up the bus and the driver. A nil config uses DefaultConfig, which lacks the
// required pins.
func New(config *Config) (*Device, error) {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config
	cfg.Normalize()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidLevel, err)
		log.New(cfg.LogOutput, logPrefix, log.LevelWarn).Error("init:invalid_log_level", err)
		return nil, err
	}
	d := &Device{
		log:          log.New(cfg.LogOutput, logPrefix, level),
		nativeWidth:  cfg.Width,
		nativeHeight: cfg.Height,
		rotation:     cfg.Rotation,
		autoWrite:    cfg.AutoWriteEnabled(),
	}
	d.log.Info("init:start", "bus", cfg.BusName, "speed_hz", cfg.SpeedHz, "width", cfg.Width, "height", cfg.Height,
		"rotation", cfg.Rotation.Name())

	if err = cfg.Validate(); err != nil {
		d.log.Error("init:invalid_config", err)
		return nil, err
	}

	var cs, dc, rst gpio.PinIO
	if !cfg.CS.IsZero() {
		if cs, err = cfg.CS.Resolve(); err != nil {
			return nil, d.fail("init:pin", fmt.Errorf("cs: %w", err))
		}
	}
	if dc, err = cfg.DC.Resolve(); err != nil {
		return nil, d.fail("init:pin", fmt.Errorf("dc: %w", err))
	}
	if rst, err = cfg.Reset.Resolve(); err != nil {
		return nil, d.fail("init:pin", fmt.Errorf("rst: %w", err))
	}

	if d.bus, err = openBus(&cfg, d.log); err != nil {
		return nil, d.fail("spi:create", err)
	}

	d.log.Debug("driver:create", "width", d.nativeWidth, "height", d.nativeHeight, "rotation_deg", int(d.rotation))
	opts := DriverOpts{
		DC:        dc,
		Reset:     rst,
		Width:     d.nativeWidth,
		Height:    d.nativeHeight,
		Rotation:  d.rotation,
		AutoWrite: d.autoWrite,
	}
	if cs != nil {
		opts.CS = cs
	}
	if d.driver, err = cfg.Driver(d.bus.conn, opts); err != nil {
		_ = d.bus.release()
		return nil, d.fail("driver:create", err)
	}

	d.width, d.height = d.logicalSize()
	d.driver.SetSize(d.width, d.height)

	runtime.SetFinalizer(d, finalize)

	d.log.Info("init:done", "width", d.width, "height", d.height, "rotation_deg", int(d.rotation),
		"rotation_name", d.rotation.Name(), "own_bus", d.bus.owned)
	return d, nil
}

const logPrefix = "SCREEN"

// fail logs err at error level and returns it.
func (d *Device) fail(event string, err error) error {
	d.log.Error(event, err)
	return err
}

func (d *Device) logicalSize() (w, h int) {
	if d.rotation.Swapped() {
		return d.nativeHeight, d.nativeWidth
	}
	return d.nativeWidth, d.nativeHeight
}

func (d *Device) String() string {
	return fmt.Sprintf("screen %dx%d %s", d.width, d.height, d.rotation)
}

// Width is the logical width for the current rotation.
func (d *Device) Width() int { return d.width }

// Height is the logical height for the current rotation.
func (d *Device) Height() int { return d.height }

// Bounds is the logical drawing area.
func (d *Device) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// NativeWidth is the panel width at landscape rotation.
func (d *Device) NativeWidth() int { return d.nativeWidth }

// NativeHeight is the panel height at landscape rotation.
func (d *Device) NativeHeight() int { return d.nativeHeight }

// Rotation is the current rotation.
func (d *Device) Rotation() Rotation { return d.rotation }

// RotationName is the current rotation name, such as "portrait".
func (d *Device) RotationName() string { return d.rotation.Name() }

// RotationDegrees is the current rotation in degrees.
func (d *Device) RotationDegrees() int { return int(d.rotation) }

// AutoWrite is the auto-write setting passed to the driver.
func (d *Device) AutoWrite() bool { return d.autoWrite }

// OwnsBus reports whether the device opened the SPI port itself.
func (d *Device) OwnsBus() bool { return d.bus.owned }

// Closed reports whether Cleanup ran.
func (d *Device) Closed() bool { return d.closed }

// Driver returns the driver for typed access to features the device doesn't wrap.
func (d *Device) Driver() Driver { return d.driver }

// LogLevel is the current diagnostic threshold name.
func (d *Device) LogLevel() string { return d.log.Level().String() }

// SetLogLevel changes the diagnostic threshold.
func (d *Device) SetLogLevel(name string) error {
	if err := d.log.SetLevel(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	return nil
}

// SetRotation rotates the display and resizes the logical drawing area.
func (d *Device) SetRotation(r Rotation) error {
	if d.closed {
		return ErrClosed
	}
	r, err := NormalizeRotation(r)
	if err != nil {
		return d.fail("rotation:invalid", err)
	}
	code, ok := d.driver.Rotations()[int(r)]
	if !ok {
		err = fmt.Errorf("%w: %s", ErrUnsupportedRotation, r)
		d.log.Error("rotation:unsupported", err, "deg", int(r))
		return err
	}
	if err = d.driver.SetRotation(code); err != nil {
		return d.fail("rotation:write", err)
	}

	d.rotation = r
	d.width, d.height = d.logicalSize()
	d.driver.SetSize(d.width, d.height)
	d.log.Info("rotation:set", "deg", int(r), "name", r.Name(), "width", d.width, "height", d.height)
	return nil
}

// Call runs a driver operation that has no wrapper, see Operator.
func (d *Device) Call(name string, args ...any) (any, error) {
	if d.closed {
		return nil, ErrClosed
	}
	op, ok := d.driver.(Operator)
	if !ok || !slices.Contains(op.Operations(), name) {
		return nil, d.fail("call:unknown", fmt.Errorf("%w: %T has no operation %q", ErrUnknownOperation, d, name))
	}
	d.log.Info("call", "name", name, "args", args)
	return op.Operation(name, args...)
}

// SelfTest cycles through red, green, blue and black, then draws a circle and a label. Failures
// are logged and otherwise ignored.
func (d *Device) SelfTest(delay time.Duration) {
	d.log.Info("self_test:start", "width", d.width, "height", d.height, "delay", delay)
	white := Color565(0xff, 0xff, 0xff)
	steps := []func() error{
		func() error { return d.Fill(Color565(0xff, 0x00, 0x00)) },
		func() error { return d.Fill(Color565(0x00, 0xff, 0x00)) },
		func() error { return d.Fill(Color565(0x00, 0x00, 0xff)) },
		func() error { return d.Fill(Color565(0x00, 0x00, 0x00)) },
		func() error { return d.Circle(d.width/2, d.height/2, min(d.width, d.height)/4, white) },
		func() error { return d.Text8x8(5, 5, "SELF TEST", white, 0x0000, 0) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			d.log.Error("self_test:failed", err, "step", i)
			return
		}
		if !d.autoWrite {
			if err := d.driver.Refresh(); err != nil {
				d.log.Error("self_test:failed", err, "step", i)
				return
			}
		}
		if i < 4 {
			sleep(delay)
		}
	}
	d.log.Info("self_test:end")
}
