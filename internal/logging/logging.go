// Package logging builds the zap loggers used by the command-line hosts.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger's level, format and destination.
type Options struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string
	// Development switches to the human-readable console encoder.
	Development bool
	// Path is the output file. Empty means stderr. Terminal hosts must set
	// it, since stderr shares the screen.
	Path string
}

// New builds a logger. Production loggers are JSON, sampled and without
// caller information.
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := "stderr"
	if opts.Path != "" {
		out = opts.Path
	}

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{out},
		ErrorOutputPaths: []string{out},
		DisableCaller:    true,
	}
	if opts.Development {
		config.Development = true
		config.Sampling = nil
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.DisableCaller = false
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// ParseLevel converts a level name to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zap.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zap.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
