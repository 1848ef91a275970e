// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log encodings accepted by --log-format.
const (
	logConsole = "console"
	logJSON    = "json"
)

// maxVerbosity keeps -verbosity within zapcore.Level (int8).
const maxVerbosity = 127

// newZapLogger builds a zap logger writing to w. verbosity n enables logr
// V(n) lines, which zapr maps to zap level -n.
func newZapLogger(w io.Writer, format string, verbosity int) (*zap.Logger, error) {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity > maxVerbosity {
		verbosity = maxVerbosity
	}

	var enc zapcore.Encoder
	switch format {
	case logConsole, "":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.00")
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	case logJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s or %s)", format, logConsole, logJSON)
	}

	level := zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)

	return zap.New(core), nil
}

// newLogr bridges a zap logger to logr.
func newLogr(zl *zap.Logger) logr.Logger {
	return zapr.NewLogger(zl)
}

// progress logs completion of an operation with its elapsed time.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger logr.Logger
	start  time.Time
}

func newProgress(l logr.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
func (p *progress) done(msg string, kv ...any) {
	kv = append(kv, "elapsed", time.Since(p.start).Round(time.Millisecond).String())
	p.logger.Info(msg, kv...)
}
