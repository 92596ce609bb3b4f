// Package logging builds the zap logger used for debug traces of a scan.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects verbosity and encoding.
type Options struct {
	Verbose bool
	// Format is "console" (default) or "json".
	Format string
}

// New builds a logger writing to stderr. Warnings and errors are always
// shown; Verbose enables debug traces.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	config.Sampling = nil
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	switch opts.Format {
	case "", "console":
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	case "json":
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	return config.Build()
}
