package screen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

var testRegisteredPin = &gpiotest.Pin{N: "SCREEN_TEST_DC", Num: 1024}

func init() {
	if err := gpioreg.Register(testRegisteredPin); err != nil {
		panic(err)
	}
}

func TestPin(t *testing.T) {
	var zero Pin
	assert.True(t, zero.IsZero())
	assert.True(t, PinHandle(gpio.INVALID).IsZero())
	assert.Equal(t, "<none>", zero.String())
	_, err := zero.Resolve()
	assert.ErrorIs(t, err, ErrMissingConfig)

	p, err := PinByName("SCREEN_TEST_DC").Resolve()
	require.NoError(t, err)
	assert.Equal(t, "SCREEN_TEST_DC", p.Name())

	h := &gpiotest.Pin{N: "HANDLE"}
	p, err = PinHandle(h).Resolve()
	require.NoError(t, err)
	assert.Same(t, h, p)
	assert.Equal(t, "HANDLE", PinHandle(h).String())

	_, err = PinByName("NO_SUCH_PIN").Resolve()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.NotErrorIs(t, err, ErrMissingConfig)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
bus: SPI0.0
speed_hz: 40000000
phase: 1
sck: GPIO11
mosi: GPIO10
cs: GPIO8
dc: 24
rst: GPIO25
rotation: reverse_portrait
auto_write: false
log_level: info
`))
	require.NoError(t, err)
	assert.Equal(t, "SPI0.0", cfg.BusName)
	assert.Equal(t, int64(40_000_000), cfg.SpeedHz)
	assert.Equal(t, 0, cfg.Polarity)
	assert.Equal(t, 1, cfg.Phase)
	assert.Equal(t, PinByName("GPIO11"), cfg.Clock)
	assert.Equal(t, PinByName("GPIO10"), cfg.Data)
	assert.True(t, cfg.Read.IsZero())
	assert.Equal(t, PinByName("24"), cfg.DC)
	assert.Equal(t, ReversePortrait, cfg.Rotation)
	assert.False(t, cfg.AutoWriteEnabled())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.NotNil(t, cfg.Driver)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultSpeedHz), cfg.SpeedHz)
	assert.Equal(t, Landscape, cfg.Rotation)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.True(t, cfg.AutoWriteEnabled())
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		Name string
		YAML string
		Err  error
	}{
		{"rotation", "rotation: sideways\n", ErrInvalidRotation},
		{"degrees", "rotation: 45\n", ErrInvalidRotation},
		{"log level", "log_level: shout\n", ErrInvalidLevel},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			_, err := ParseConfig([]byte(test.YAML))
			assert.ErrorIs(it, err, test.Err)
			assert.ErrorIs(it, err, ErrInvalidConfig)
		})
	}

	_, err := ParseConfig([]byte("colour: red\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "screen.yaml")
	require.NoError(t, os.WriteFile(name, []byte("width: 320\nheight: 240\ndc: GPIO24\n"), 0o600))

	cfg, err := LoadConfig(name)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 240, cfg.Height)
	assert.Equal(t, "GPIO24", cfg.DC.String())

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig()
	cfg.Normalize()
	require.NoError(t, cfg.Validate())

	cfg.Phase = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
