// flagtool is a small operator utility around the flag catalog: list the
// built-in and configured custom flags, describe one, decode a packed flag
// instance record captured off the wire, or replay a captured message stream
// through the dispatcher.
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/wahidmounir/bzflag/internal/codec"
	"github.com/wahidmounir/bzflag/internal/config"
	"github.com/wahidmounir/bzflag/internal/dispatch"
	"github.com/wahidmounir/bzflag/internal/flag"
	"github.com/wahidmounir/bzflag/internal/logging"
	"github.com/wahidmounir/bzflag/internal/session"
	"github.com/wahidmounir/bzflag/pkg/wire"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	logger, logFile := setup()
	if logFile != nil {
		defer logFile.Close()
	}

	reg := flag.NewRegistry(logger)
	registerConfigured(logger, reg)

	var err error
	switch os.Args[1] {
	case "list":
		listFlags(reg)
	case "describe":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		err = describe(reg, os.Args[2])
	case "decode":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		err = decode(reg, os.Args[2])
	case "replay":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		err = replay(logger, reg, os.Args[2])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: flagtool list | describe <abbrev> | decode <hex> | replay <hex>")
}

// setup loads config and initializes logging. A missing config file is
// fine for a read-only tool; defaults apply.
func setup() (*slog.Logger, *os.File) {
	manager := logging.NewManager()

	configErr := config.Load(".")

	var logFile *os.File
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0o755); err == nil {
		path := logging.LogFilePath(logsDir, "flagtool", time.Now())
		logFile, _ = os.Create(path)
	}
	if logFile != nil {
		manager.Setup(logFile, config.GetString("logLevel"))
	} else {
		manager.Setup(nil, config.GetString("logLevel"))
	}

	logger := manager.Logger()
	if configErr != nil {
		logger.Warn("no config file found, using defaults", "error", configErr)
	}
	return logger, logFile
}

func registerConfigured(logger *slog.Logger, reg *flag.Registry) {
	customs, err := config.CustomFlags()
	if err != nil {
		logger.Error("invalid custom flag config", "error", err)
		os.Exit(1)
	}
	for _, t := range customs {
		if _, err := reg.RegisterCustom(t); err != nil {
			logger.Error("cannot register custom flag", "abbrev", t.Abbrev, "error", err)
			os.Exit(1)
		}
	}
}

func listFlags(reg *flag.Registry) {
	fmt.Println("Good flags:")
	for _, t := range reg.Good() {
		fmt.Printf("  %s\n", t.Label())
	}
	fmt.Println("Bad flags:")
	for _, t := range reg.Bad() {
		fmt.Printf("  %s\n", t.Label())
	}
	if customs := reg.Custom(); len(customs) > 0 {
		fmt.Println("Custom flags:")
		for _, t := range customs {
			fmt.Printf("  %s\n", t.Label())
		}
	}
}

func describe(reg *flag.Registry, abbrev string) error {
	t, ok := reg.Lookup(abbrev)
	if !ok {
		return fmt.Errorf("no flag type %q", abbrev)
	}
	fmt.Println(t.Information())
	fmt.Printf("  endurance: %s  shot: %s  quality: %s  team: %s  effect: %s\n",
		t.Endurance, t.Shot, t.Quality, t.Team, t.Effect)
	c, rc := t.Color(), t.RadarColor()
	fmt.Printf("  color: %.2f,%.2f,%.2f  radar: %.2f,%.2f,%.2f\n",
		c[0], c[1], c[2], rc[0], rc[1], rc[2])
	fmt.Printf("  wire: type ref %d bytes, instance record %d bytes (budget %d)\n",
		codec.TypePackSize, codec.InstancePackSize, codec.FlagPLen)
	return nil
}

func decode(reg *flag.Registry, hexData string) error {
	data, err := hex.DecodeString(hexData)
	if err != nil {
		return fmt.Errorf("bad hex: %w", err)
	}
	inst, err := codec.UnpackInstance(wire.NewReader(data), reg)
	if err != nil {
		return err
	}
	fmt.Printf("type: %s\n", inst.Type.Label())
	fmt.Printf("status: %s  endurance: %s  owner: %d\n",
		inst.Status, inst.Endurance, inst.Owner)
	fmt.Printf("position: %v  launch: %v  landing: %v\n",
		inst.Position, inst.LaunchPosition, inst.LandingPosition)
	fmt.Printf("flight: %.2fs of %.2fs  v0: %.2f\n",
		inst.FlightTime, inst.FlightEnd, inst.InitialVelocity)
	return nil
}

// replay runs a captured message stream through the dispatcher and prints
// the resulting session state. Each message is framed as uint16 payload
// length, uint16 code, payload.
func replay(logger *slog.Logger, reg *flag.Registry, hexData string) error {
	data, err := hex.DecodeString(hexData)
	if err != nil {
		return fmt.Errorf("bad hex: %w", err)
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	d, err := dispatch.New(logging.NewDispatchLogger(zl))
	if err != nil {
		return fmt.Errorf("creating dispatcher: %w", err)
	}

	sess, err := session.New(logger, reg)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	sess.Attach(d)

	r := wire.NewReader(data)
	for r.Remaining() > 0 {
		length := r.Uint16()
		code := r.Uint16()
		payload := r.Bytes(int(length))
		if err := r.Err(); err != nil {
			return fmt.Errorf("bad framing: %w", err)
		}
		if err := d.Dispatch(dispatch.Message{
			Code:      code,
			Payload:   payload,
			Timestamp: time.Now(),
		}); err != nil {
			return err
		}
	}

	fmt.Printf("%d flags tracked, %d custom types\n", sess.Len(), len(reg.Custom()))
	for index, inst := range sess.Flags() {
		fmt.Printf("  [%d] %s %s\n", index, inst.Type.Label(), inst.Status)
	}
	return nil
}
