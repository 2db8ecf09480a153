package screen

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/BeatGlow/screenili/internal/log"
)

// CleanupOptions select the teardown steps.
type CleanupOptions struct {
	// Clear fills the display with black.
	Clear bool

	// TurnOff turns the display off.
	TurnOff bool

	// ReleaseBus closes the SPI port if the device opened it.
	ReleaseBus bool
}

// DefaultCleanupOptions run every teardown step.
var DefaultCleanupOptions = CleanupOptions{
	Clear:      true,
	TurnOff:    true,
	ReleaseBus: true,
}

// Cleanup tears the device down. Each step runs even if an earlier one failed; failures are
// logged and returned joined. The device is closed afterwards. Later calls only release an owned
// bus that is still open, otherwise they do nothing.
func (d *Device) Cleanup(opts CleanupOptions) error {
	if d.closed {
		if !opts.ReleaseBus || !d.bus.owned || d.bus.released {
			d.log.Debug("cleanup:skipped", "reason", "closed")
			return nil
		}
		opts.Clear, opts.TurnOff = false, false
	}
	d.log.Info("cleanup:start", "clear", opts.Clear, "turn_off", opts.TurnOff, "release_bus", opts.ReleaseBus,
		"own_bus", d.bus.owned)

	var errs []error
	if opts.Clear {
		if err := d.driver.Clear(0x0000); err != nil {
			d.log.Warn("cleanup:clear_failed", "err", err)
			errs = append(errs, fmt.Errorf("clear: %w", err))
		}
	}
	if opts.TurnOff {
		if err := d.driver.DisplayOff(); err != nil {
			d.log.Warn("cleanup:display_off_failed", "err", err)
			errs = append(errs, fmt.Errorf("display off: %w", err))
		}
	}
	if opts.ReleaseBus && d.bus.owned && !d.bus.released {
		if err := d.bus.release(); err != nil {
			d.log.Warn("cleanup:bus_release_failed", "err", err)
			errs = append(errs, fmt.Errorf("release bus: %w", err))
		} else {
			d.log.Info("cleanup:bus_released")
		}
	}

	d.closed = true
	if !d.bus.owned || d.bus.released {
		// The finalizer stays armed while an owned bus is open.
		runtime.SetFinalizer(d, nil)
	}
	d.log.Info("cleanup:done", "errors", len(errs))
	return errors.Join(errs...)
}

// Close runs Cleanup with DefaultCleanupOptions.
func (d *Device) Close() error {
	return d.Cleanup(DefaultCleanupOptions)
}

// With opens a device, runs fn and always cleans up, also when fn panics. Teardown failures
// are joined to the error of fn.
func With(config *Config, fn func(*Device) error) (err error) {
	d, err := New(config)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = d.Close()
			panic(r)
		}
		err = errors.Join(err, d.Close())
	}()
	return fn(d)
}

// finalize is the fallback for devices that were never cleaned up: it turns the display off and
// releases the bus, without logging and ignoring every failure.
func finalize(d *Device) {
	defer func() { _ = recover() }()
	d.log = log.New(io.Discard, "", log.LevelNone)
	_ = d.Cleanup(CleanupOptions{TurnOff: true, ReleaseBus: true})
}

var _ io.Closer = (*Device)(nil)
