package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// LogPanic records a recovered panic with its stack and re-panics. Defer it
// at the top of goroutines that own the terminal so the cause reaches the
// log file before the program dies:
//
//	defer logging.LogPanic(ctx)
func LogPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("panic")

	panic(r)
}
