// internal/config/config.go
package config

import "github.com/tamzrod/mcp47x6/internal/frame"

type Config struct {
	DAC DACConfig `yaml:"dac"`
}

// ---- DAC ----

type DACConfig struct {
	// Bus is the periph bus name. Empty selects the first available bus.
	Bus string `yaml:"bus"`

	// Address is the 7-bit device address, or 0-7 shorthand for the
	// factory range 0x60-0x67.
	Address uint16 `yaml:"address"`

	Model string `yaml:"model"` // mcp4706 | mcp4716 | mcp4726
	VRef  string `yaml:"vref"`  // vdd | unbuffered | buffered
	Gain  uint8  `yaml:"gain"`  // 1 | 2

	Watch WatchConfig `yaml:"watch"`
}

// ---- WATCH ----

type WatchConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- WIRE MAPPINGS ----

// VRefSelector maps the configured reference name to its wire selector.
// Call only after Validate.
func (d DACConfig) VRefSelector() uint8 {
	switch d.VRef {
	case "unbuffered":
		return frame.VRefUnbuffered
	case "buffered":
		return frame.VRefBuffered
	default:
		return frame.VRefVDD
	}
}

// GainFlag maps the configured gain (1 or 2) to the wire gain bit.
func (d DACConfig) GainFlag() uint8 {
	if d.Gain == 2 {
		return frame.Gain2X
	}
	return frame.Gain1X
}
