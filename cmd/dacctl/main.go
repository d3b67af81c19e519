// cmd/dacctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/tamzrod/mcp47x6/internal/config"
	"github.com/tamzrod/mcp47x6/internal/dac"
	"github.com/tamzrod/mcp47x6/internal/dac/periphbus"
	"github.com/tamzrod/mcp47x6/internal/frame"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("usage: dacctl <config.yaml> <status|set|raw|persist|powerdown|wake|watch> [arg]")
	}

	cfgPath := os.Args[1]
	command := os.Args[2]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	model, err := frame.ParseModel(cfg.DAC.Model)
	if err != nil {
		log.Fatalf("config model: %v", err)
	}

	// --------------------
	// Open bus + build driver
	// --------------------

	bus, err := periphbus.New(periphbus.Config{Name: cfg.DAC.Bus})
	if err != nil {
		log.Fatalf("bus open failed: %v", err)
	}
	defer bus.Close()

	drv, err := dac.New(model, cfg.DAC.Address, bus, periphbus.NewWallClock())
	if err != nil {
		log.Fatalf("driver build failed: %v", err)
	}

	// --------------------
	// Run command
	// --------------------

	switch command {
	case "status":
		st, err := drv.ReadStatus()
		if err != nil {
			log.Fatalf("status read failed: %v", err)
		}
		printStatus(st)

	case "set":
		// Volatile value update, current vref/gain preserved.
		if err := drv.UpdateValue(argCount(drv, 3)); err != nil {
			log.Fatalf("set failed: %v", err)
		}

	case "raw":
		// Volatile write of the configured vref/gain plus the value.
		err := drv.UpdateSettings(
			cfg.DAC.VRefSelector(),
			cfg.DAC.GainFlag(),
			argCount(drv, 3),
			false,
		)
		if err != nil {
			log.Fatalf("raw write failed: %v", err)
		}

	case "persist":
		v := argCount(drv, 3)
		if err := drv.PersistIfChanged(cfg.DAC.VRefSelector(), cfg.DAC.GainFlag(), v); err != nil {
			log.Fatalf("persist failed: %v", err)
		}

		// The driver's readiness wait is silent; surface a late EEPROM
		// write to the operator here.
		ready, err := drv.IsReady()
		if err != nil {
			log.Fatalf("post-persist status failed: %v", err)
		}
		if !ready {
			log.Printf("warning: EEPROM write still in progress after wait window")
		}

	case "powerdown":
		if err := drv.Powerdown(argPowerdown(3)); err != nil {
			log.Fatalf("powerdown failed: %v", err)
		}

	case "wake":
		// General call: wakes every MCP47X6 on the bus.
		if err := drv.Wake(); err != nil {
			log.Fatalf("wake failed: %v", err)
		}

	case "watch":
		watch(drv, time.Duration(cfg.DAC.Watch.IntervalMs)*time.Millisecond)

	default:
		log.Fatalf("unknown command %q", command)
	}
}

// argCount parses and range-checks the count argument. The encoder truncates
// out-of-range values silently, so the check lives here.
func argCount(drv *dac.Driver, idx int) uint16 {
	if len(os.Args) <= idx {
		log.Fatal("missing count argument")
	}
	v, err := strconv.ParseUint(os.Args[idx], 0, 16)
	if err != nil {
		log.Fatalf("bad count %q: %v", os.Args[idx], err)
	}
	if uint16(v) > drv.Model().MaxCount() {
		log.Fatalf("count %d exceeds %s maximum %d", v, drv.Model(), drv.Model().MaxCount())
	}
	return uint16(v)
}

func argPowerdown(idx int) uint8 {
	if len(os.Args) <= idx {
		log.Fatal("missing powerdown mode argument")
	}
	switch os.Args[idx] {
	case "normal":
		return frame.PowerdownNormal
	case "1k":
		return frame.Powerdown1K
	case "125k":
		return frame.Powerdown125K
	case "640k":
		return frame.Powerdown640K
	}
	log.Fatalf("unknown powerdown mode %q (want normal, 1k, 125k or 640k)", os.Args[idx])
	return 0
}

func printStatus(st frame.DeviceStatus) {
	log.Printf("volatile: %s value=%d", formatConfig(st.Volatile), st.VolatileValue)
	log.Printf("eeprom:   %s value=%d", formatConfig(st.NonVolatile), st.NonVolatileValue)
}

func formatConfig(c frame.ConfigStatus) string {
	return fmt.Sprintf("ready=%d por=%d vref=%d powerdown=%d gain=%d",
		c.Ready, c.POR, c.VRef, c.Powerdown, c.Gain)
}

func watch(drv *dac.Driver, interval time.Duration) {
	w, err := dac.NewWatcher(drv, interval)
	if err != nil {
		log.Fatalf("watcher build failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := make(chan dac.StatusResult)
	go w.Run(ctx, out)

	for {
		select {
		case <-ctx.Done():
			return
		case res := <-out:
			if res.Err != nil {
				log.Printf("status read failed: %v", res.Err)
				continue
			}
			printStatus(res.Status)
		}
	}
}
