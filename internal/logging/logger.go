// Package logging provides categorized zap loggers for the pokedex.
// Each subsystem logs through a named child logger so log lines can be
// filtered per category. Until Init is called every logger is a no-op,
// which keeps the TUI quiet by default.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names used across the codebase.
const (
	CategoryAPI       = "api"       // PokéAPI fetches
	CategoryCache     = "cache"     // session cache hits/misses
	CategoryTCG       = "tcg"       // card API
	CategoryTUI       = "tui"       // browse UI lifecycle
	CategoryGenerator = "generator" // random team generator
	CategoryShiny     = "shiny"     // shiny log persistence
	CategoryPrefetch  = "prefetch"  // offline dataset tool
)

var (
	mu   sync.RWMutex
	root = zap.NewNop()
)

// Init builds the root logger. level is one of debug/info/warn/error; file
// is an optional log file path (empty logs to stderr).
func Init(level, file string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	mu.Lock()
	root = logger
	mu.Unlock()
	return nil
}

// For returns the named logger for a category.
func For(category string) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.Named(category)
}

// Sync flushes buffered log entries. Safe to call on the no-op logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
