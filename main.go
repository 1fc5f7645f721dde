package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"arenashooter/game"
	"arenashooter/internal/observability"
)

func main() {
	configPath := flag.String("config", os.Getenv("ARENA_CONFIG"), "YAML config file (defaults to $ARENA_CONFIG)")
	width := flag.Int("width", 0, "window width, overrides the config")
	height := flag.Int("height", 0, "window height, overrides the config")
	seed := flag.Int64("seed", 0, "random seed for spawns and enemy reloads (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "start with the debug overlay (toggle with F1)")
	profileDir := flag.String("profile-dir", "", "capture CPU profiles and traces here when the frame rate drops")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	level, levelErr := observability.ParseLevel(*logLevel)
	logger, err := observability.NewLogger(os.Stderr, "host", observability.FormatText, level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if levelErr != nil {
		logger.Warn("falling back to info logging", "error", levelErr)
	}

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Bounds.Width = float64(*width)
	}
	if *height > 0 {
		cfg.Bounds.Height = float64(*height)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g, err := NewGame(cfg, logger, *seed)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	g.debug = *debug
	if *profileDir != "" {
		if g.profiler, err = NewProfiler(*profileDir, logger.With("subsystem", "profiler")); err != nil {
			logger.Error("failed to enable profiling", "error", err)
			os.Exit(1)
		}
	}

	ebiten.SetWindowSize(int(cfg.Bounds.Width), int(cfg.Bounds.Height))
	ebiten.SetWindowTitle("Arena Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ticksPerSecond)

	logger.Info("starting", "config", *configPath, "seed", *seed)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game exited", "error", err)
		os.Exit(1)
	}
}
