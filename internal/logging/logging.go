// Package logging provides the file-backed logger. The TUI owns stdout, so
// everything goes to a log file instead.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Open returns a logger writing JSON lines to the given file. If the file
// cannot be opened, a no-op logger is returned; logging must never take the
// UI down.
func Open(logFile string) *zap.Logger {
	if logFile == "" {
		return zap.NewNop()
	}

	_ = os.MkdirAll(filepath.Dir(logFile), 0o755)
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zap.NewNop()
	}

	encCfg := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.InfoLevel)
	return zap.New(core)
}
