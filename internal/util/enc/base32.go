package enc

import (
	"encoding/base32"
	"fmt"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters, using the RFC 4648 alphabet with padding. Lower case
// input is accepted when decoding.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return base32.StdEncoding.EncodeToString(data)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	res, err := base32.StdEncoding.DecodeString(toUpperASCII(data))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInterchange, "base32: %v", err)
	}
	return res, nil
}

func (b *Base32Encoder) TestPatterns() []string {
	return []string{
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ234567",
		"abcdefghijklmnopqrstuvwxyz234567",
	}
}

func toUpperASCII(s string) string {
	res := []byte(s)
	for k, c := range res {
		if 'a' <= c && c <= 'z' {
			res[k] = c - 'a' + 'A'
		}
	}
	return string(res)
}
