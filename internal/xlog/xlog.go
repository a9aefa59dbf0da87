// Package xlog is a thin log/slog wrapper scaled down from
// jinterlante1206-AleutianLocal's pkg/logging design (a default stderr
// logger, an optional Configure call to raise the level or add a file
// sink, and a small set of named sub-loggers) to what a single-process CLI
// solver needs: one destination, one level, and named loggers standing in
// for the "Step N", "merged partitions", "elapsed" and table-state log lines
// original_source's Config{log_steps, log_constraints, log_elapsed,
// log_states} flags select between.
package xlog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	base    = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	steps   = base.With("component", "steps")
	constrs = base.With("component", "constraints")
	states  = base.With("component", "states")
)

// Configure replaces the base logger's level and destination. Called once
// at process startup from cmd/solvomatic based on CLI flags.
func Configure(level slog.Level, w *os.File) {
	mu.Lock()
	defer mu.Unlock()
	base = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	steps = base.With("component", "steps")
	constrs = base.With("component", "constraints")
	states = base.With("component", "states")
}

// Steps is the logger driven by Config.LogSteps ("Step N: size=...").
func Steps() *slog.Logger { mu.RLock(); defer mu.RUnlock(); return steps }

// Constraints is the logger driven by Config.LogConstraints.
func Constraints() *slog.Logger { mu.RLock(); defer mu.RUnlock(); return constrs }

// States is the logger driven by Config.LogStates.
func States() *slog.Logger { mu.RLock(); defer mu.RUnlock(); return states }
