// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/mcp47x6/internal/frame"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	d := cfg.DAC

	if _, err := frame.ParseModel(d.Model); err != nil {
		return fmt.Errorf("dac.model: %w", err)
	}

	// 0-7 shorthand is resolved by Normalize; anything else must already be
	// a 7-bit address.
	if d.Address > 0x7F {
		return fmt.Errorf("dac.address %#x out of 7-bit range", d.Address)
	}

	switch d.VRef {
	case "", "vdd", "unbuffered", "buffered":
	default:
		return fmt.Errorf("dac.vref %q (want vdd, unbuffered or buffered)", d.VRef)
	}

	// 0 means unset and defaults to 1x in Normalize.
	if d.Gain > 2 {
		return fmt.Errorf("dac.gain %d (want 1 or 2)", d.Gain)
	}

	if d.Gain == 2 && (d.VRef == "" || d.VRef == "vdd") {
		return fmt.Errorf("dac.gain 2 requires a vref pin reference")
	}

	if d.Watch.IntervalMs < 0 {
		return fmt.Errorf("dac.watch.interval_ms must be >= 0")
	}

	return nil
}
