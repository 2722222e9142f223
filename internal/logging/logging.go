// Package logging builds the logr.Logger used across lvpack, backed by zap
// through zapr.
//
// Callers log through logr verbosity levels:
//
//	log.V(logging.DEBUG).Info("Solving knapsack", "states", n)
//
// zapr maps V(n) to zap level -n, so DEBUG and TRACE sit below zap's Info.
package logging

import (
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logr's V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// LevelFor maps a -v repeat count to a zap level: no flag keeps errors only,
// -v adds warnings, -vv info, -vvv DEBUG and -vvvv TRACE.
func LevelFor(verbose int) zapcore.Level {
	switch {
	case verbose <= 0:
		return zapcore.ErrorLevel
	case verbose == 1:
		return zapcore.WarnLevel
	case verbose == 2:
		return zapcore.InfoLevel
	default:
		return zapcore.Level(-(verbose - 2))
	}
}

// NewLogger returns a console logger writing to w at the level selected by
// verbose. quiet discards everything.
func NewLogger(w io.Writer, verbose int, quiet bool) logr.Logger {
	if quiet {
		return logr.Discard()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(LevelFor(verbose)),
	)

	return zapr.NewLogger(zap.New(core))
}

// NewTestLogger returns a TRACE-level logger on stderr for tests.
func NewTestLogger() logr.Logger {
	return NewLogger(os.Stderr, 2+TRACE, false)
}
