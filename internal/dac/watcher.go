// internal/dac/watcher.go
package dac

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/mcp47x6/internal/frame"
)

// StatusResult is one observation of the device status.
type StatusResult struct {
	At     time.Time
	Status frame.DeviceStatus
	Err    error // non-nil means the read failed
}

// Watcher polls the device status on a fixed interval. It is a dumb,
// clock-driven reader: no overlap, no retries.
type Watcher struct {
	drv      *Driver
	interval time.Duration
}

// NewWatcher creates a watcher with immutable config.
func NewWatcher(drv *Driver, interval time.Duration) (*Watcher, error) {
	if drv == nil {
		return nil, errors.New("dac: watcher driver required")
	}
	if interval <= 0 {
		return nil, errors.New("dac: watcher interval must be > 0")
	}
	return &Watcher{drv: drv, interval: interval}, nil
}

// Run emits one StatusResult per tick until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, out chan<- StatusResult) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st, err := w.drv.ReadStatus()
			select {
			case out <- StatusResult{At: time.Now(), Status: st, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}
