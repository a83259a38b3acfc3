// Command parkassist is an interactive console parking assistant. It
// scans for a suitable parking space, then guides the driver step by
// step from simulated distance-sensor readings until the car is either
// perfectly parked or a collision is detected.
//
// Usage:
//
//	parkassist [-config file] [-no-transcript]   run the assistant
//	parkassist view [file]                       replay a saved transcript
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/parkassist/internal/config"
	"github.com/luki/parkassist/internal/console"
	"github.com/luki/parkassist/internal/logging"
	"github.com/luki/parkassist/internal/session"
	"github.com/luki/parkassist/internal/space"
	"github.com/luki/parkassist/internal/store"
	"github.com/luki/parkassist/internal/viewer"
)

const defaultConfigPath = "parkassist.yaml"

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("51"))

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to the YAML config file")
	noTranscript := flag.Bool("no-transcript", false, "do not save a session transcript")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *configPath != defaultConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *noTranscript {
		cfg.Transcript.Enabled = false
	}
	logger := logging.NewLogger(cfg.LogLevel)

	if flag.NArg() > 0 && flag.Arg(0) == "view" {
		runViewer(flag.Arg(1), cfg)
		return
	}

	runAssistant(cfg, logger)
}

// loadConfig reads the config file. A missing file at the default
// location is fine; a missing file the user asked for is not.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return config.Default(), nil
	}
	return nil, err
}

func runViewer(path string, cfg *config.Config) {
	if path == "" {
		paths, err := store.List(cfg.Transcript.Dir)
		if err != nil || len(paths) == 0 {
			fmt.Fprintln(os.Stderr, "No transcripts found. Run a session first.")
			os.Exit(1)
		}
		path = paths[0]
	}
	viewer.Run(path)
}

func runAssistant(cfg *config.Config, logger *slog.Logger) {
	c := console.New(os.Stdin, os.Stdout)

	c.Print(bannerStyle.Render("========================================"))
	c.Print(bannerStyle.Render("    AUTONOMOUS PARKING ASSISTANT"))
	c.Print(bannerStyle.Render("========================================"))
	c.Print("")

	carLength := cfg.Car.Length
	if carLength <= 0 {
		carLength = c.ReadFloat("Enter car length (meters): ", false)
	}
	carWidth := cfg.Car.Width
	if carWidth <= 0 {
		carWidth = c.ReadFloat("Enter car width (meters): ", false)
	}

	var parallel bool
	switch strings.ToLower(cfg.Parking.Type) {
	case "parallel":
		parallel = true
	case "perpendicular":
		parallel = false
	default:
		c.Print("Select parking type:")
		c.Print("P - Parallel parking")
		c.Print("T - Perpendicular parking")
		parallel = c.ReadChoice("Enter choice (P/T): ", "P", "T") == "P"
	}

	var reverse bool
	switch strings.ToLower(cfg.Parking.Mode) {
	case "reverse":
		reverse = true
	case "forward":
		reverse = false
	default:
		c.Print("")
		c.Print("Select driving mode:")
		c.Print("F - Forward")
		c.Print("R - Reverse")
		reverse = c.ReadChoice("Enter choice (F/R): ", "F", "R") == "R"
	}

	if !space.Scan(parallel, carLength, carWidth, c, c) {
		c.Print("")
		c.Print("No suitable parking space available. Exiting...")
		c.Print("")
		c.Print("Thank you for using Autonomous Parking Assistant!")
		return
	}

	s := session.Run(session.Config{
		ReverseMode: reverse,
		Parallel:    parallel,
		CarLength:   carLength,
		CarWidth:    carWidth,
	}, c, c)

	if cfg.Transcript.Enabled {
		path, err := store.Save(s, cfg.Transcript.Dir, time.Now())
		if err != nil {
			logger.Error("transcript save failed", "error", err)
		} else {
			c.Print("")
			c.Print("Transcript saved: " + path)
		}
	}

	c.Print("")
	c.Print("Thank you for using Autonomous Parking Assistant!")
}
