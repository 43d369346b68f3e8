package enc

import "github.com/pkg/errors"

// Declare the standard validation failures. All errors returned from this package wrap one of these, so
// they can be matched with `errors.Is` or `errors.Cause`.
var (
	ErrInvalidCharacter   = errors.New("invalid base256 character")
	ErrInvalidHex         = errors.New("invalid hex input")
	ErrInvalidLength      = errors.New("invalid input length")
	ErrInvalidUTF8        = errors.New("invalid UTF-8 input")
	ErrInvalidInterchange = errors.New("invalid interchange input")
)

// InputErrors lists the sentinels which mean the caller provided invalid data
var InputErrors = []error{
	ErrInvalidCharacter, ErrInvalidHex, ErrInvalidLength, ErrInvalidUTF8, ErrInvalidInterchange,
}

// IsInputError returns true if the error was caused by invalid data provided by the caller, as opposed
// to an I/O or programming error.
func IsInputError(err error) bool {
	if err == nil {
		return false
	}
	for _, e := range InputErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
