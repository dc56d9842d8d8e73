// Package diagnostics builds the structured logger cmd/imacs uses for
// operational output (what was loaded, which issues were recorded, at
// what severity) — separate from the colored, human-facing report
// rendering the CLI does directly with fatih/color.
package diagnostics

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger configured for CLI use: human-readable console
// output at info level, or debug level with verbose set.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}

// LogIssue records one analysis issue at the level its kind warrants:
// fatal kinds are logged as errors, everything else as a warning.
func LogIssue(log *zap.Logger, kind string, ruleID, message string, fatal bool) {
	fields := []zap.Field{zap.String("kind", kind), zap.String("message", message)}
	if ruleID != "" {
		fields = append(fields, zap.String("rule", ruleID))
	}
	if fatal {
		log.Error("analysis issue", fields...)
		return
	}
	log.Warn("analysis issue", fields...)
}
