package xlog

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	initOnce sync.Once
	current  atomic.Pointer[zap.Logger]
)

// Init installs logger as the process-wide sink, replacing whatever was
// previously installed (including the lazily-built default). Init is
// safe to call from multiple goroutines; the last call wins.
func Init(logger *zap.Logger) {
	current.Store(logger)
}

// Get returns the process-wide logger, lazily building a sane production
// default (JSON encoding, info level) the first time it is called if
// nothing was installed via Init.
func Get() *zap.Logger {
	initOnce.Do(func() {
		if current.Load() == nil {
			logger, err := zap.NewProduction()
			if err != nil {
				logger = zap.NewNop()
			}
			current.Store(logger)
		}
	})
	if l := current.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Sugar returns a SugaredLogger over Get(), for call sites that prefer
// printf-style logging over structured fields.
func Sugar() *zap.SugaredLogger {
	return Get().Sugar()
}

// Sync flushes any buffered log entries. Callers should defer Sync from
// main.
func Sync() error {
	return Get().Sync()
}
