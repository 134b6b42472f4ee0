package util

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logOnce sync.Once
	gLog    *zap.Logger
)

func logger() *zap.Logger {
	logOnce.Do(func() {
		var err error
		gLog, err = zap.NewProduction()
		if err != nil {
			gLog = zap.NewNop()
		}
	})
	return gLog
}

// SetLogger replaces the process logger. Intended for cmd wiring.
func SetLogger(l *zap.Logger) {
	logger()
	gLog = l
}

func Info(msg string, fields ...zap.Field) {
	logger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger().Error(msg, fields...)
}
