// internal/dac/periphbus/clock.go
package periphbus

import "time"

// WallClock implements the driver's millisecond clock from the process
// monotonic clock. The counter wraps at 2^32 ms (~49 days); the driver
// compares differences only, so the wrap is harmless.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a clock at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Millis returns elapsed milliseconds since construction.
func (c *WallClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}
