package log

import "go.uber.org/zap"

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{
		sugar: zap.NewNop().Sugar(),
		level: zap.NewAtomicLevel(),
	}
}
