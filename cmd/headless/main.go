package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"arenashooter/game"
	"arenashooter/internal/observability"
)

func main() {
	configPath := flag.String("config", os.Getenv("ARENA_CONFIG"), "YAML config file (defaults to $ARENA_CONFIG)")
	seed := flag.Int64("seed", 1, "random seed for spawns and enemy reloads")
	maxTicks := flag.Int("max-ticks", 10*60*ticksPerSecond, "give up after this many ticks")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile of the run to this file")
	flag.Parse()

	level, err := observability.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := observability.NewLogger(os.Stderr, "headless", observability.Format(*logFormat), level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	stopProfile, err := startCPUProfile(*cpuProfile)
	if err != nil {
		logger.Error("failed to start cpu profile", "error", err)
		os.Exit(1)
	}
	defer stopProfile()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting run", "config", *configPath, "seed", *seed, "max_ticks", *maxTicks)
	summary, err := run(ctx, cfg, *seed, *maxTicks, logger)
	if err != nil {
		logger.Error("run failed", "error", err)
		stopProfile()
		stop()
		os.Exit(1)
	}

	logger.Info("run finished",
		"outcome", summary.Outcome,
		"levels_cleared", summary.LevelsCleared,
		"levels", summary.Levels,
		"score", summary.Score,
		"kills", summary.Kills,
		"shots", summary.ShotsFired,
		"damage_taken", summary.DamageTaken,
		"ticks", summary.Ticks,
		"sim_seconds", float64(summary.Ticks)/ticksPerSecond)
}

// startCPUProfile writes a CPU profile to path until the returned func is called.
// An empty path disables profiling.
func startCPUProfile(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}
