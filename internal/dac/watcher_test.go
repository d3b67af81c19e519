// internal/dac/watcher_test.go
package dac

import (
	"context"
	"testing"
	"time"

	"github.com/tamzrod/mcp47x6/internal/frame"
)

func TestNewWatcher_Validation(t *testing.T) {
	drv := newTestDriver(t, frame.MCP4726, &fakeBus{}, &fakeClock{})

	if _, err := NewWatcher(nil, time.Second); err == nil {
		t.Fatalf("expected error for nil driver")
	}
	if _, err := NewWatcher(drv, 0); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}

func TestWatcher_EmitsUntilCancelled(t *testing.T) {
	fb := &fakeBus{frames: [][]byte{wideFrame(cfgReady, 0x0123, cfgReady, 0x0123)}}
	drv := newTestDriver(t, frame.MCP4726, fb, &fakeClock{})

	w, err := NewWatcher(drv, 2*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan StatusResult)
	go w.Run(ctx, out)

	for i := 0; i < 3; i++ {
		res := <-out
		if res.Err != nil {
			t.Fatalf("result %d err=%v", i, res.Err)
		}
		if res.Status.VolatileValue != 0x0123 {
			t.Fatalf("result %d value: got %#x", i, res.Status.VolatileValue)
		}
	}

	cancel()
}
