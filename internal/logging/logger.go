// Where: cli/internal/logging/logger.go
// What: zap logger construction for the CLI.
// Why: Keep diagnostic logs on stderr, separate from the tables on stdout.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a config or flag value to a zap level. Empty means warn.
func ParseLevel(value string) (zapcore.Level, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return zapcore.WarnLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(value))); err != nil {
		return zapcore.WarnLevel, fmt.Errorf("invalid log level %q: %w", value, err)
	}
	return level, nil
}

// New builds a console logger writing to out at the given level.
func New(level zapcore.Level, out io.Writer) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(out),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}
