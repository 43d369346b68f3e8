package enc

import (
	"encoding/ascii85"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters (Adobe ascii85, without the `<~ ~>` delimiters). An all-zero
// group is written as the single character `z`.
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "base85"
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) string {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return string(dst[:n])
}

func (b *Base85Encoder) Decode(data string) ([]byte, error) {
	// `z` expands to four bytes, so the output may be longer than the input
	dst := make([]byte, len(data)*4)
	ndst, nsrc, err := ascii85.Decode(dst, []byte(data), true)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInterchange, "base85: %v", err)
	}
	if nsrc != len(data) {
		return nil, errors.Wrapf(ErrInvalidInterchange, "base85: trailing data at position %d", nsrc)
	}
	return dst[:ndst], nil
}

func (b *Base85Encoder) TestPatterns() []string {
	str := make([]byte, 0, 85)
	// 33 (!) through 117 (u); 85 is a multiple of 5, so every group is complete
	for c := byte('!'); c <= 'u'; c++ {
		str = append(str, c)
	}

	return []string{
		"zs8W-!",
		string(str),
	}
}
