package ili9488

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// batchSize is the largest single SPI transfer.
const batchSize = 4096

// spiConn drives the panel over a 4-wire SPI connection: the DC pin selects command (low) or
// data (high) and an optional CS pin frames each transfer.
type spiConn struct {
	bus       spi.Conn
	reset     gpio.PinOut
	dc        gpio.PinOut
	dcLevel   gpio.Level
	dcValid   bool
	cs        gpio.PinOut
	batchSize int
}

func newSPIConn(bus spi.Conn, cs, dc, reset gpio.PinOut, size int) *spiConn {
	if size <= 0 {
		size = batchSize
	}
	if cs == gpio.INVALID {
		cs = nil
	}
	return &spiConn{
		bus:       bus,
		reset:     reset,
		dc:        dc,
		cs:        cs,
		batchSize: size,
	}
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI %s", c.bus)
}

func (c *spiConn) Reset(level gpio.Level) error {
	return c.reset.Out(level)
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if !c.dcValid || c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel, c.dcValid = level, true
	}
	return nil
}

func (c *spiConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

// Command sends a command byte followed by its parameters.
func (c *spiConn) Command(cmnd byte, data ...byte) (err error) {
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	defer func() {
		if csErr := c.updateCS(gpio.High); err == nil {
			err = csErr
		}
	}()
	if err = c.updateDC(gpio.Low); err != nil {
		return
	}
	if err = c.bus.Tx([]byte{cmnd}, nil); err != nil {
		return
	}
	if len(data) > 0 {
		if err = c.updateDC(gpio.High); err != nil {
			return
		}
		err = c.writeChunked(data)
	}
	return
}

// Data sends pixel or parameter data.
func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(gpio.High); err != nil {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	defer func() {
		if csErr := c.updateCS(gpio.High); err == nil {
			err = csErr
		}
	}()
	return c.writeChunked(data)
}

func (c *spiConn) writeChunked(data []byte) (err error) {
	if len(data) <= c.batchSize {
		return c.bus.Tx(data, nil)
	}

	if debug {
		log.Printf("ili9488: write %d bytes of data in %d chunks", len(data), (len(data)+c.batchSize-1)/c.batchSize)
	}
	for len(data) > 0 {
		n := min(len(data), c.batchSize)
		if err = c.bus.Tx(data[:n], nil); err != nil {
			return
		}
		data = data[n:]
	}
	return
}
