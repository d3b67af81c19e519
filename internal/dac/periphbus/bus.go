// internal/dac/periphbus/bus.go
package periphbus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Bus adapts a periph I2C bus to the driver's transport port. One write or
// one read per transaction, matching the device's turn-based protocol.
type Bus struct {
	bus i2c.BusCloser
}

// Config selects the host bus by periph name ("/dev/i2c-1", "1", ...).
// An empty name opens the first available bus.
type Config struct {
	Name string
}

// New initializes the host drivers and opens the bus.
func New(cfg Config) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periphbus: host init: %w", err)
	}
	b, err := i2creg.Open(cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("periphbus: open %q: %w", cfg.Name, err)
	}
	return &Bus{bus: b}, nil
}

// Close releases the bus.
func (b *Bus) Close() error {
	if b == nil || b.bus == nil {
		return nil
	}
	return b.bus.Close()
}

// Write performs a single write transaction.
func (b *Bus) Write(addr uint16, w []byte) error {
	return b.bus.Tx(addr, w, nil)
}

// Read performs a single read transaction of exactly n bytes.
func (b *Bus) Read(addr uint16, n int) ([]byte, error) {
	if n <= 0 {
		return nil, errors.New("periphbus: read length must be > 0")
	}
	r := make([]byte, n)
	if err := b.bus.Tx(addr, nil, r); err != nil {
		return nil, err
	}
	return r, nil
}
