package logging

import (
	log "github.com/sirupsen/logrus"
)

// DefaultLevel is the level used when no `-v` flags are given. Warnings and errors are always shown.
const DefaultLevel = log.WarnLevel

// SetVerbosity defines the verbosity level of the application. Every `-v` raises the level by one,
// starting from DefaultLevel.
func SetVerbosity(v []bool) {
	verbosity := DefaultLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
