package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	logger          *slog.Logger
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, logger *slog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		logger:          logger,
	}, nil
}

// CaptureProfile starts a background capture. It refuses while a capture is
// running or the cooldown since the last one has not elapsed.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since.Round(time.Second))
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".cpu.prof", startCPUProfile); err != nil {
				p.logger.Error("cpu profile failed", "error", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".trace", startTrace); err != nil {
				p.logger.Error("trace failed", "error", err)
			}
		}()
		wg.Wait()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		p.logger.Info("profile captured",
			"base", filepath.Join(p.profilesDir, baseName),
			"heap_alloc_kb", m.HeapAlloc/1024,
			"num_gc", m.NumGC,
			"heap_objects", m.HeapObjects)
	}()

	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// startFunc starts a recorder on f and returns the function that stops it
type startFunc func(f *os.File) (stop func(), err error)

func startCPUProfile(f *os.File) (func(), error) {
	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, err
	}
	return pprof.StopCPUProfile, nil
}

func startTrace(f *os.File) (func(), error) {
	if err := trace.Start(f); err != nil {
		return nil, err
	}
	return trace.Stop, nil
}

// capture records into name for captureDuration
func (p *Profiler) capture(name string, start startFunc) error {
	path := filepath.Join(p.profilesDir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	stop, err := start(file)
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	time.Sleep(p.captureDuration)
	stop()
	return nil
}
