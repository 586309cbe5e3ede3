// Package logging builds the zap logger shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Discard is the output name that silences logging entirely.
const Discard = "discard"

// New returns a JSON production logger at level, writing to file or to
// stderr when file is empty. An empty level means warn.
func New(level, file string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(strings.TrimSpace(file), Discard) {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil
	out := "stderr"
	if f := strings.TrimSpace(file); f != "" {
		out = f
	}
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return l.Named("appt"), nil
}

// ParseLevel maps a level name to a zap level, defaulting to warn.
func ParseLevel(level string) (zapcore.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.WarnLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}
