// Package logger provides a convenience function to constructing a
// logger for use in the application, built on top of zap.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a Sugared Logger that writes JSON to stderr with a
// "service" field set to service.
func New(service string) (*zap.SugaredLogger, error) {
	return newLogger(service, false)
}

// NewDebug constructs a Sugared Logger in development mode: a
// human-readable console encoder at debug level, used when the node's
// State.Debug setting is on.
func NewDebug(service string) (*zap.SugaredLogger, error) {
	return newLogger(service, true)
}

func newLogger(service string, debug bool) (*zap.SugaredLogger, error) {
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	config.DisableStacktrace = !debug
	config.InitialFields = map[string]any{
		"service": service,
	}

	log, err := config.Build(zap.WithCaller(true))
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
