package screen

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/BeatGlow/screenili/internal/log"
)

// openPort is replaced in tests.
var openPort = func(name string) (spi.PortCloser, error) {
	return spireg.Open(name)
}

// bus is the SPI port shared by the device and its driver. Only owned ports are released.
type bus struct {
	port     spi.Port
	conn     spi.Conn
	owned    bool
	released bool
}

func (b *bus) String() string {
	if s, ok := b.port.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", b.port)
}

// openBus connects the configured port, opening it first when none was supplied.
func openBus(cfg *Config, l *log.Logger) (*bus, error) {
	b := &bus{port: cfg.Bus}
	if b.port == nil {
		l.Debug("spi:create", "bus", cfg.BusName, "sck", cfg.Clock, "mosi", cfg.Data, "miso", cfg.Read,
			"polarity", cfg.Polarity, "phase", cfg.Phase)
		port, err := openPort(cfg.BusName)
		if err != nil {
			return nil, fmt.Errorf("screen: open SPI port %q: %w", cfg.BusName, err)
		}
		b.port, b.owned = port, true

		if err = checkPins(port, cfg, l); err != nil {
			_ = b.release()
			return nil, err
		}
	}

	mode := spi.Mode(cfg.Polarity<<1 | cfg.Phase)
	c, err := b.port.Connect(physic.Frequency(cfg.SpeedHz)*physic.Hertz, mode, 8)
	if err != nil {
		_ = b.release()
		return nil, fmt.Errorf("screen: connect SPI port %s: %w", b, err)
	}
	b.conn = c
	return b, nil
}

// checkPins resolves the configured SPI pins and compares them with the pins the port uses.
func checkPins(port spi.Port, cfg *Config, l *log.Logger) error {
	want := []struct {
		name string
		pin  Pin
	}{
		{"sck", cfg.Clock},
		{"mosi", cfg.Data},
		{"miso", cfg.Read},
	}
	resolved := make(map[string]gpio.PinIO, len(want))
	for _, w := range want {
		if w.pin.IsZero() {
			continue
		}
		p, err := w.pin.Resolve()
		if err != nil {
			return fmt.Errorf("%s: %w", w.name, err)
		}
		resolved[w.name] = p
	}

	pins, ok := port.(spi.Pins)
	if !ok {
		return nil
	}
	actual := map[string]string{
		"sck":  pinName(pins.CLK()),
		"mosi": pinName(pins.MOSI()),
		"miso": pinName(pins.MISO()),
	}
	for name, p := range resolved {
		if got := actual[name]; got != "" && got != p.Name() {
			l.Warn("spi:pin_mismatch", "pin", name, "want", p.Name(), "port", got)
		}
	}
	return nil
}

func pinName(p interface{ Name() string }) string {
	if p == nil {
		return ""
	}
	if name := p.Name(); name != gpio.INVALID.Name() {
		return name
	}
	return ""
}

// release closes the port if the device opened it. Later calls do nothing.
func (b *bus) release() error {
	if !b.owned || b.released {
		return nil
	}
	b.released = true
	if c, ok := b.port.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
