package screen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/screenili/internal/log"
)

// Defaults.
const (
	DefaultWidth    = 480
	DefaultHeight   = 320
	DefaultSpeedHz  = 60_000_000
	DefaultLogLevel = "warn"
)

// Pin is a GPIO pin given either by its registry name (for example "GPIO25") or as a handle.
type Pin struct {
	Name string
	IO   gpio.PinIO
}

// PinByName refers to a pin by its registry name.
func PinByName(name string) Pin {
	return Pin{Name: name}
}

// PinHandle wraps an existing pin handle.
func PinHandle(p gpio.PinIO) Pin {
	return Pin{IO: p}
}

// IsZero reports whether no pin was given.
func (p Pin) IsZero() bool {
	return p.Name == "" && (p.IO == nil || p.IO == gpio.INVALID)
}

// Resolve returns the pin handle, looking up the name in the GPIO registry if needed.
func (p Pin) Resolve() (gpio.PinIO, error) {
	if p.IO != nil && p.IO != gpio.INVALID {
		return p.IO, nil
	}
	if p.Name == "" {
		return nil, fmt.Errorf("%w: no pin given", ErrMissingConfig)
	}
	if pin := gpioreg.ByName(p.Name); pin != nil {
		return pin, nil
	}
	return nil, fmt.Errorf("%w: unknown GPIO pin %q", ErrInvalidConfig, p.Name)
}

func (p Pin) String() string {
	switch {
	case p.IO != nil:
		return p.IO.Name()
	case p.Name != "":
		return p.Name
	default:
		return "<none>"
	}
}

// UnmarshalYAML accepts a pin name or number.
func (p *Pin) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	*p = Pin{Name: name}
	return nil
}

// MarshalYAML encodes the pin by name.
func (p Pin) MarshalYAML() (any, error) {
	if p.IsZero() {
		return "", nil
	}
	return p.String(), nil
}

// Config is the device configuration.
type Config struct {
	// Bus is a pre-built SPI port. The device borrows it and never closes it.
	Bus spi.Port `yaml:"-"`

	// BusName is the SPI port to open when Bus is nil, empty for the first available port.
	BusName string `yaml:"bus"`

	// SpeedHz is the SPI clock.
	SpeedHz int64 `yaml:"speed_hz"`

	// Polarity and Phase select the SPI mode.
	Polarity int `yaml:"polarity"`
	Phase    int `yaml:"phase"`

	// Clock, Data and Read are the SPI pins, required when Bus is nil. Read is optional.
	Clock Pin `yaml:"sck"`
	Data  Pin `yaml:"mosi"`
	Read  Pin `yaml:"miso"`

	// CS is the chip select pin, leave empty when the SPI port drives it.
	CS Pin `yaml:"cs"`

	// DC is the data/command pin. It is required along with Reset: the ILI9488 4-wire SPI
	// interface has no other way to tell commands from parameters.
	DC Pin `yaml:"dc"`

	// Reset is the reset pin.
	Reset Pin `yaml:"rst"`

	// Width and Height are the native panel geometry at landscape rotation.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Rotation is the initial rotation.
	Rotation Rotation `yaml:"rotation"`

	// AutoWrite is passed to the driver, true when nil.
	AutoWrite *bool `yaml:"auto_write"`

	// LogLevel is the diagnostic threshold: debug, info, warn, error or none.
	LogLevel string `yaml:"log_level"`

	// LogOutput receives diagnostics, stderr when nil.
	LogOutput io.Writer `yaml:"-"`

	// Driver builds the panel driver, ILI9488 when nil.
	Driver DriverFunc `yaml:"-"`
}

// DefaultConfig returns the default configuration. Pins must still be filled in.
func DefaultConfig() *Config {
	return &Config{
		SpeedHz:  DefaultSpeedHz,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Rotation: Landscape,
		LogLevel: DefaultLogLevel,
	}
}

// Normalize fills in zero values with defaults.
func (c *Config) Normalize() {
	if c.SpeedHz <= 0 {
		c.SpeedHz = DefaultSpeedHz
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Driver == nil {
		c.Driver = ILI9488
	}
}

// Validate checks the settings that don't need hardware access.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	if err := c.Rotation.Validate(); err != nil {
		return err
	}
	if c.Polarity&^1 != 0 || c.Phase&^1 != 0 {
		return fmt.Errorf("%w: SPI polarity and phase must be 0 or 1", ErrInvalidConfig)
	}
	if c.Bus == nil && (c.Clock.IsZero() || c.Data.IsZero()) {
		return fmt.Errorf("%w: sck and mosi pins are required without a bus", ErrMissingConfig)
	}
	if c.Reset.IsZero() {
		return fmt.Errorf("%w: rst pin is required", ErrMissingConfig)
	}
	if c.DC.IsZero() {
		return fmt.Errorf("%w: dc pin is required", ErrMissingConfig)
	}
	return nil
}

// AutoWriteEnabled resolves the AutoWrite setting.
func (c *Config) AutoWriteEnabled() bool {
	return c.AutoWrite == nil || *c.AutoWrite
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("screen: config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("screen: config: %w", err)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); cfg.LogLevel != "" && err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	cfg.Normalize()
	return cfg, nil
}
