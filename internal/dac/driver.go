// internal/dac/driver.go
package dac

import (
	"errors"
	"fmt"

	"github.com/tamzrod/mcp47x6/internal/frame"
)

// Bus abstracts the I2C operations the driver needs. Transactions run in
// strict request/response turns: one write or one read, never interleaved.
// Read is trusted to deliver exactly n bytes on success.
type Bus interface {
	Write(addr uint16, w []byte) error
	Read(addr uint16, n int) ([]byte, error)
}

// Clock is a monotonic millisecond source. The driver only compares
// differences, so wraparound of the counter is harmless.
type Clock interface {
	Millis() uint32
}

// General call bytes. A general call addresses every device on the bus.
const (
	generalCallAddr uint16 = 0x00
	generalCallWake byte   = 0x09
)

// eepromWaitMillis bounds the readiness wait after a persisting write.
// The device specifies up to 50 ms per EEPROM write; 100 ms gives slack.
const eepromWaitMillis uint32 = 100

// Driver drives one MCP47X6 at a fixed address. It holds configuration only
// and no lock: callers sharing a driver serialize access themselves.
type Driver struct {
	model frame.Model
	addr  uint16
	bus   Bus
	clk   Clock
}

// New creates a driver. Addresses 0-7 are shorthand for the factory range
// 0x60-0x67; anything else is taken as a raw 7-bit address.
func New(model frame.Model, addr uint16, bus Bus, clk Clock) (*Driver, error) {
	if bus == nil {
		return nil, errors.New("dac: bus required")
	}
	if clk == nil {
		return nil, errors.New("dac: clock required")
	}
	if addr < 0x08 {
		addr |= frame.BaseAddr
	}
	if addr > 0x7F {
		return nil, fmt.Errorf("dac: address %#x out of 7-bit range", addr)
	}
	return &Driver{model: model, addr: addr, bus: bus, clk: clk}, nil
}

// Model returns the configured device model.
func (d *Driver) Model() frame.Model { return d.model }

// Addr returns the resolved 7-bit device address.
func (d *Driver) Addr() uint16 { return d.addr }

// ReadStatus reads and decodes the device status frame. A fresh record is
// returned on every call. This is the only transaction the device answers
// while an EEPROM write is in progress.
func (d *Driver) ReadStatus() (frame.DeviceStatus, error) {
	raw, err := d.bus.Read(d.addr, d.model.StatusLen())
	if err != nil {
		return frame.DeviceStatus{}, fmt.Errorf("dac: status read: %w", err)
	}
	return frame.DecodeStatus(d.model, raw), nil
}

// IsReady reports whether no EEPROM write is in progress.
func (d *Driver) IsReady() (bool, error) {
	st, err := d.ReadStatus()
	if err != nil {
		return false, err
	}
	return st.Volatile.Ready != 0, nil
}

// UpdateSettings writes reference, gain and output value. With persist set
// the EEPROM image is programmed too and the call blocks until the device
// reports ready or the wait window closes.
//
// The return reflects only the command transaction. A readiness timeout is
// NOT an error: callers that care issue ReadStatus afterwards and check the
// ready bit themselves.
func (d *Driver) UpdateSettings(vref, gain uint8, value uint16, persist bool) error {
	w := frame.EncodeWrite(d.model, frame.WriteRequest{
		VRef:    vref,
		Gain:    gain,
		Value:   value,
		Persist: persist,
	})
	if err := d.bus.Write(d.addr, w); err != nil {
		return fmt.Errorf("dac: command write: %w", err)
	}
	if persist {
		d.waitReady()
	}
	return nil
}

// waitReady busy-polls the status frame until the volatile ready bit is set
// or eepromWaitMillis elapses. No sleep between polls; the status read is
// the pacing. Poll failures end the wait the same silent way a timeout does.
func (d *Driver) waitReady() {
	start := d.clk.Millis()
	for d.clk.Millis()-start < eepromWaitMillis {
		st, err := d.ReadStatus()
		if err != nil {
			return
		}
		if st.Volatile.Ready != 0 {
			return
		}
	}
}

// PersistIfChanged programs the EEPROM only when the stored reference, gain
// or value differ from the request. A full match returns without issuing a
// single write, avoiding EEPROM wear and the write latency. Comparison is
// exact; the gain arguments on both sides reduce to the nonzero test.
func (d *Driver) PersistIfChanged(vref, gain uint8, value uint16) error {
	st, err := d.ReadStatus()
	if err != nil {
		return err
	}
	if st.NonVolatile.VRef == vref&0b11 &&
		st.NonVolatile.Gain == gainFlag(gain) &&
		st.NonVolatileValue == value {
		return nil
	}
	return d.UpdateSettings(vref, gain, value, true)
}

// UpdateValue changes the volatile output value only. The current volatile
// reference and gain are read back first so a plain value update cannot
// clobber them.
func (d *Driver) UpdateValue(value uint16) error {
	st, err := d.ReadStatus()
	if err != nil {
		return err
	}
	return d.UpdateSettings(st.Volatile.VRef, st.Volatile.Gain, value, false)
}

// Powerdown puts the output into the given power-down mode, preserving the
// volatile reference and gain bits.
func (d *Driver) Powerdown(mode uint8) error {
	st, err := d.ReadStatus()
	if err != nil {
		return err
	}
	w := frame.EncodeVolatileConfig(st.Volatile.VRef, st.Volatile.Gain, mode)
	if err := d.bus.Write(d.addr, w); err != nil {
		return fmt.Errorf("dac: powerdown write: %w", err)
	}
	return nil
}

// Wake leaves power-down via the I2C general call. Every MCP47X6 on the bus
// wakes, not just this device.
func (d *Driver) Wake() error {
	if err := d.bus.Write(generalCallAddr, []byte{generalCallWake}); err != nil {
		return fmt.Errorf("dac: general call wake: %w", err)
	}
	return nil
}

func gainFlag(gain uint8) uint8 {
	if gain != 0 {
		return 1
	}
	return 0
}
