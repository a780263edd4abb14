package logger

import (
	"context"
	"sync"
)

var (
	globalLock sync.RWMutex
	globalLog  Logger = Noop{}
)

// SetGlobalLogger replaces the process-wide logger. Call once at boot before
// serving traffic.
func SetGlobalLogger(log Logger) {
	if log == nil {
		return
	}

	globalLock.Lock()
	globalLog = log
	globalLock.Unlock()
}

func global() Logger {
	globalLock.RLock()
	defer globalLock.RUnlock()
	return globalLog
}

func Debug(ctx context.Context, msg string, fields ...KeyValue) {
	global().Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...KeyValue) {
	global().Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...KeyValue) {
	global().Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...KeyValue) {
	global().Error(ctx, msg, fields...)
}

func Access(ctx context.Context, data AccessLogData) {
	global().Access(ctx, data)
}

// Noop discards everything. It is the default until SetGlobalLogger is called,
// so packages can log unconditionally even under `go test`.
type Noop struct{}

var _ Logger = (*Noop)(nil)

func (Noop) Debug(context.Context, string, ...KeyValue) {}
func (Noop) Info(context.Context, string, ...KeyValue)  {}
func (Noop) Warn(context.Context, string, ...KeyValue)  {}
func (Noop) Error(context.Context, string, ...KeyValue) {}
func (Noop) Access(context.Context, AccessLogData)      {}
