package logging

import (
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxCallerDepth limits how far up the stack ContextHook looks for the caller
const maxCallerDepth = 25

// ContextHook will add go source information (file, line, func)
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire is the method that's executed when logging event is logged. It walks up the call stack, skipping
// the frames of logrus itself and of the hook, and records the first frame outside of them.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, maxCallerDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if !isLoggingFrame(frame.Function) {
			entry.Data["file"] = path.Base(frame.File)
			entry.Data["line"] = frame.Line
			entry.Data["func"] = path.Base(frame.Function)
			break
		}
		if !more {
			break
		}
	}

	return nil
}

func isLoggingFrame(function string) bool {
	return strings.Contains(function, "github.com/sirupsen/logrus") ||
		strings.Contains(function, "internal/logging.ContextHook") ||
		strings.Contains(function, "internal/logging.(*ContextHook)")
}
