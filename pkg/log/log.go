// Package log provides the structured logger shared by the driver, the
// cache, and the CLI. It follows the package-level-logger shape common
// across the corpus: a safe no-op default so callers never need a nil
// check, and an Initialize that swaps in a real sink.
package log

import (
	"go.uber.org/zap"
)

// Logger is the package-level structured logger. It starts as a no-op
// so driver/cache code can log unconditionally before main() calls
// Initialize.
var Logger *zap.Logger = zap.NewNop()

// Initialize builds the real logger. Human-readable console output in
// development, JSON in production.
func Initialize(jsonOutput bool) error {
	if jsonOutput {
		built, err := zap.NewProduction()
		if err != nil {
			return err
		}
		Logger = built
		return nil
	}
	built, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	Logger = built
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
