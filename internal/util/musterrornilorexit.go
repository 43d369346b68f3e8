package util

import (
	"github.com/bokysan/b256/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrInvalidInput is returned when the data on stdin could not be converted
	ErrInvalidInput = 1
	ErrGeneric      = 99
)

// ErrInvalidUsage marks option combinations that parse fine but cannot be executed. It is treated like
// invalid input.
var ErrInvalidUsage = errors.New("invalid combination of options")

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Invalid input (see enc.IsInputError) and ErrInvalidUsage exit with ErrInvalidInput and a short message. Error code is
// unwrapped from `flags.Error` object. If it's a different kind of error, a generic error code - 99 -
// is returned
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	if enc.IsInputError(err) || errors.Is(err, ErrInvalidUsage) {
		log.StandardLogger().Logf(log.FatalLevel, "Error: %v", err)
		log.Exit(ErrInvalidInput)
	} else if flagsError, ok := errors.Cause(err).(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(int(flagsError.Type))
	} else {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(ErrGeneric)
	}

}
