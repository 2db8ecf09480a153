package screen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/screenili/internal/log"
)

type testConn struct {
	spi.Conn
}

func (testConn) String() string { return "test conn" }

// testPort is an SPI port that records how it was used.
type testPort struct {
	name       string
	freq       physic.Frequency
	mode       spi.Mode
	bits       int
	connectErr error
	closeErr   error
	closed     int
}

func (p *testPort) String() string { return p.name }

func (p *testPort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if p.connectErr != nil {
		return nil, p.connectErr
	}
	p.freq, p.mode, p.bits = f, mode, bits
	return testConn{}, nil
}

func (p *testPort) LimitSpeed(f physic.Frequency) error { return nil }

func (p *testPort) Close() error {
	p.closed++
	return p.closeErr
}

// testPinsPort also reports the pins it is wired to.
type testPinsPort struct {
	*testPort
	clk, mosi *gpiotest.Pin
}

func (p testPinsPort) CLK() gpio.PinOut  { return p.clk }
func (p testPinsPort) MOSI() gpio.PinOut { return p.mosi }
func (p testPinsPort) MISO() gpio.PinIn  { return gpio.INVALID }
func (p testPinsPort) CS() gpio.PinOut   { return gpio.INVALID }

// withPort makes openPort return port for the duration of the test.
func withPort(t *testing.T, port spi.PortCloser, openErr error) *[]string {
	t.Helper()
	var opened []string
	saved := openPort
	openPort = func(name string) (spi.PortCloser, error) {
		opened = append(opened, name)
		if openErr != nil {
			return nil, openErr
		}
		return port, nil
	}
	t.Cleanup(func() { openPort = saved })
	return &opened
}

func TestOpenBusBorrowed(t *testing.T) {
	opened := withPort(t, nil, errors.New("must not open"))
	port := &testPort{name: "SPI1.0"}

	b, err := openBus(&Config{Bus: port, SpeedHz: 32_000_000, Polarity: 1, Phase: 1}, log.New(nil, "", log.LevelNone))
	require.NoError(t, err)
	assert.Empty(t, *opened)
	assert.False(t, b.owned)
	assert.Equal(t, 32*physic.MegaHertz, port.freq)
	assert.Equal(t, spi.Mode3, port.mode)
	assert.Equal(t, 8, port.bits)

	require.NoError(t, b.release())
	assert.Zero(t, port.closed, "borrowed ports are never closed")
}

func TestOpenBusOwned(t *testing.T) {
	port := &testPort{name: "SPI0.0"}
	opened := withPort(t, port, nil)

	cfg := &Config{
		BusName: "SPI0.0",
		SpeedHz: DefaultSpeedHz,
		Clock:   PinHandle(&gpiotest.Pin{N: "GPIO11"}),
		Data:    PinHandle(&gpiotest.Pin{N: "GPIO10"}),
	}
	b, err := openBus(cfg, log.New(nil, "", log.LevelNone))
	require.NoError(t, err)
	assert.Equal(t, []string{"SPI0.0"}, *opened)
	assert.True(t, b.owned)
	assert.Equal(t, spi.Mode0, port.mode)
	assert.Equal(t, "SPI0.0", b.String())

	require.NoError(t, b.release())
	require.NoError(t, b.release())
	assert.Equal(t, 1, port.closed)
}

func TestOpenBusFailures(t *testing.T) {
	cfg := &Config{
		Clock: PinHandle(&gpiotest.Pin{N: "GPIO11"}),
		Data:  PinHandle(&gpiotest.Pin{N: "GPIO10"}),
	}
	quiet := log.New(nil, "", log.LevelNone)

	t.Run("open", func(it *testing.T) {
		openErr := errors.New("no such port")
		withPort(it, nil, openErr)
		_, err := openBus(cfg, quiet)
		assert.ErrorIs(it, err, openErr)
	})

	t.Run("connect", func(it *testing.T) {
		connectErr := errors.New("busy")
		port := &testPort{connectErr: connectErr}
		withPort(it, port, nil)
		_, err := openBus(cfg, quiet)
		assert.ErrorIs(it, err, connectErr)
		assert.Equal(it, 1, port.closed)
	})

	t.Run("pin", func(it *testing.T) {
		port := &testPort{}
		withPort(it, port, nil)
		bad := *cfg
		bad.Read = PinByName("NO_SUCH_PIN")
		_, err := openBus(&bad, quiet)
		assert.ErrorIs(it, err, ErrInvalidConfig)
		assert.Equal(it, 1, port.closed)
	})
}

func TestOpenBusPinMismatch(t *testing.T) {
	var (
		out  = new(bytes.Buffer)
		port = testPinsPort{
			testPort: &testPort{name: "SPI0.0"},
			clk:      &gpiotest.Pin{N: "GPIO11"},
			mosi:     &gpiotest.Pin{N: "GPIO10"},
		}
	)
	withPort(t, port, nil)

	cfg := &Config{
		Clock: PinHandle(&gpiotest.Pin{N: "GPIO11"}),
		Data:  PinHandle(&gpiotest.Pin{N: "GPIO20"}),
	}
	_, err := openBus(cfg, log.New(out, "SCREEN", log.LevelWarn))
	require.NoError(t, err)
	assert.Equal(t, "[SCREEN][WARN] spi:pin_mismatch pin=mosi want=GPIO20 port=GPIO10\n", out.String())
}
