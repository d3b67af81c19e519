// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.DAC

	// Address shorthand 0-7 selects the factory range 0x60-0x67.
	if d.Address < 0x08 {
		d.Address |= 0x60
	}

	if d.VRef == "" {
		d.VRef = "vdd"
	}
	if d.Gain == 0 {
		d.Gain = 1
	}
	if d.Watch.IntervalMs == 0 {
		d.Watch.IntervalMs = 500
	}
}
