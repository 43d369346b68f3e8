package enc

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Encoder is an interchange format: an ASCII text form of arbitrary binary data, used next to the base256
// form when talking to tools that do not understand base256.
type Encoder interface {
	// Name is the user-friendly name of this encoder. It is also the name used to select the encoder.
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// Return a list of valid encoded test patterns for the specified encoding
	TestPatterns() []string
}

// Interchanges lists all available interchange encoders. The first one is the default.
var Interchanges = []Encoder{
	&HexEncoder{},
	&Base32Encoder{},
	&Base64Encoder{},
	&Base64URLEncoder{},
	&Base85Encoder{},
	&Base91Encoder{},
}

// InterchangeNames returns the sorted names of all interchange encoders
func InterchangeNames() []string {
	names := make([]string, 0, len(Interchanges))
	for _, e := range Interchanges {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// InterchangeByName finds the encoder with the given name (case insensitive) or one-letter code.
func InterchangeByName(name string) (Encoder, error) {
	for _, e := range Interchanges {
		if strings.EqualFold(e.Name(), name) || (len(name) == 1 && name[0] == e.Code()) {
			return e, nil
		}
	}
	return nil, errors.Errorf("unknown interchange format '%s', expected one of: %s",
		name, strings.Join(InterchangeNames(), ", "))
}
