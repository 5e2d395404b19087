// Command lumatonectl is a small operator CLI for a Lumatone keyboard:
// ping the device, push or dump a preset, or monitor traffic.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumatone-midi/lumatone"
	"github.com/lumatone-midi/lumatone/preset"
	"github.com/lumatone-midi/lumatone/transport/coremidi"
	"github.com/lumatone-midi/lumatone/transport/serial"
)

// Config is the on-disk connection configuration, loaded with -config.
type Config struct {
	Transport   string   `json:"transport"`    // "coremidi" or "serial"
	SerialPaths []string `json:"serial_paths"` // candidate device paths, serial transport only
}

func defaultConfig() Config {
	return Config{Transport: "coremidi"}
}

func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := defaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func saveConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func main() {
	configPath := flag.String("config", "", "path to connection config (JSON)")
	genConfig := flag.String("genconfig", "", "write a default connection config to this path and exit")
	flag.Usage = usage
	flag.Parse()

	if *genConfig != "" {
		if err := saveConfig(*genConfig, defaultConfig()); err != nil {
			log.Fatalf("writing config: %v", err)
		}
		fmt.Printf("wrote default config to %s\n", *genConfig)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "ping":
		runPing(cfg)
	case "send-preset":
		runSendPreset(cfg, rest)
	case "dump-preset":
		runDumpPreset(cfg, rest)
	case "monitor":
		runMonitor(cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: lumatonectl [-config path] <command> [args]

Commands:
  ping                    probe for a device and report its serial/firmware info
  send-preset <file.ltn>  compile a preset file and send it to the device
  dump-preset <file.ltn>  read the device's current configuration and write a preset file
  monitor                 log inbound frames from the device until interrupted`)
}

func openDriver(cfg Config) (*lumatone.Driver, lumatone.Transport, error) {
	clock := lumatone.NewSystemClock()

	var t lumatone.Transport
	var err error
	switch cfg.Transport {
	case "serial":
		if len(cfg.SerialPaths) == 0 {
			return nil, nil, fmt.Errorf("config has transport \"serial\" but no serial_paths")
		}
		t, err = serial.Discover(cfg.SerialPaths, clock)
	case "coremidi", "":
		t, err = coremidi.Discover(clock)
	default:
		return nil, nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("discovering device: %w", err)
	}

	d := lumatone.NewDriver(t, clock, log.Default())
	return d, t, nil
}

func runPing(cfg Config) {
	d, _, err := openDriver(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Shutdown()

	result := <-d.Submit(lumatone.GetSerialID())
	if result.Err != nil {
		log.Fatalf("ping failed: %v", result.Err)
	}
	fmt.Printf("serial: %x\n", result.Response.SerialID)

	result = <-d.Submit(lumatone.GetFirmwareRevision())
	if result.Err != nil {
		log.Fatalf("firmware query failed: %v", result.Err)
	}
	fmt.Printf("firmware: %d.%d.%d\n", result.Response.FirmwareMajor, result.Response.FirmwareMinor, result.Response.FirmwareRevision)
}

func runSendPreset(cfg Config, args []string) {
	if len(args) != 1 {
		log.Fatal("usage: lumatonectl send-preset <file.ltn>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("reading %s: %v", args[0], err)
	}
	p, err := preset.Parse(string(data))
	if err != nil {
		log.Fatalf("parsing %s: %v", args[0], err)
	}

	d, _, err := openDriver(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Shutdown()

	for _, c := range preset.Compile(p) {
		result := <-d.Submit(c)
		if result.Err != nil {
			log.Fatalf("sending %s: %v", c, result.Err)
		}
	}
	fmt.Println("preset sent")
}

func runDumpPreset(cfg Config, args []string) {
	if len(args) != 1 {
		log.Fatal("usage: lumatonectl dump-preset <file.ltn>")
	}

	d, _, err := openDriver(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Shutdown()

	p := preset.New()
	for board := lumatone.Octave1; board <= lumatone.Octave5; board++ {
		notes := mustSubmit(d, lumatone.GetNoteConfig(board))
		channels := mustSubmit(d, lumatone.GetMidiChannelConfig(board))
		types := mustSubmit(d, lumatone.GetKeyTypeConfig(board))
		red := mustSubmit(d, lumatone.GetRedLEDConfig(board))
		green := mustSubmit(d, lumatone.GetGreenLEDConfig(board))
		blue := mustSubmit(d, lumatone.GetBlueLEDConfig(board))

		for k := 0; k < lumatone.KeysPerBoard; k++ {
			idx, err := lumatone.NewKeyIndex(uint8(k))
			if err != nil {
				log.Fatal(err)
			}
			loc, err := lumatone.NewKeyLocation(board, idx)
			if err != nil {
				log.Fatal(err)
			}
			fn, _ := lumatone.KeyFunctionFromINI(types.Bytes[k], channels.Channels[k], notes.Bytes[k], false)
			color := lumatone.RGBColor{R: red.Bytes[k], G: green.Bytes[k], B: blue.Bytes[k]}
			p.SetKey(loc, preset.KeyDefinition{Function: fn, Color: color})
		}
	}

	out := preset.Render(p)
	if err := os.WriteFile(args[0], []byte(out), 0644); err != nil {
		log.Fatalf("writing %s: %v", args[0], err)
	}
	fmt.Printf("wrote %s\n", args[0])
}

func mustSubmit(d *lumatone.Driver, cmd lumatone.Command) lumatone.Response {
	result := <-d.Submit(cmd)
	if result.Err != nil {
		log.Fatalf("sending %s: %v", cmd, result.Err)
	}
	return result.Response
}

func runMonitor(cfg Config) {
	d, t, err := openDriver(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Shutdown()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	log.Println("monitoring, press Ctrl+C to stop")
	for {
		select {
		case frame, ok := <-t.Inbound():
			if !ok {
				return
			}
			resp, err := lumatone.DecodeResponse(frame)
			if err != nil {
				log.Printf("recv %s: decode error: %v", lumatone.HexDebugString(frame), err)
				continue
			}
			log.Printf("recv %s", resp)
		case <-sigCh:
			log.Println("shutting down")
			return
		case <-time.After(lumatone.DefaultResponseTimeout):
			// Periodic wake just to keep the select loop responsive to
			// signals even when the device is silent.
		}
	}
}
