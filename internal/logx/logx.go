// Package logx provides the package-wide structured logger. It mirrors the
// teacher's internal/logger pattern: a single package-level *zap.Logger
// initialized once at process start, falling back to a no-op logger rather
// than failing the caller if zap itself cannot initialize.
package logx

import "go.uber.org/zap"

// Log is the shared structured logger. It is safe for concurrent use.
var Log *zap.Logger

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	Log = l
}
