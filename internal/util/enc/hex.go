package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

const hextable = "0123456789abcdef"

// fromHexChar converts a hex character into its value. Both cases are accepted.
func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func encodeHex(dst, src []byte) {
	for i, v := range src {
		dst[i*2] = hextable[v>>4]
		dst[i*2+1] = hextable[v&0x0f]
	}
}

// decodeHex expects len(src) == 2*len(dst). Nothing is written to dst if src is invalid.
func decodeHex(dst, src []byte) error {
	for i, c := range src {
		if _, ok := fromHexChar(c); !ok {
			return errors.Wrapf(ErrInvalidHex, "%q at position %d", c, i)
		}
	}
	for i := range dst {
		hi, _ := fromHexChar(src[i*2])
		lo, _ := fromHexChar(src[i*2+1])
		dst[i] = hi<<4 | lo
	}
	return nil
}

// BytesToHex renders every byte as two lowercase hex digits, most significant nibble first.
func BytesToHex(key Key) Hex {
	var h Hex
	encodeHex(h[:], key[:])
	return h
}

// HexToBytes is the reverse of BytesToHex. Upper case digits are accepted. If any character is not a
// hex digit, an error wrapping ErrInvalidHex is returned together with a zero Key.
func HexToBytes(h Hex) (Key, error) {
	var k Key
	if err := decodeHex(k[:], h[:]); err != nil {
		return Key{}, err
	}
	return k, nil
}

// ToHex converts a base256 encoded key into its hex form
func (b *Base256Encoder) ToHex(data Encoded) (Hex, error) {
	k, err := b.Decode(data)
	if err != nil {
		return Hex{}, err
	}
	return BytesToHex(k), nil
}

// FromHex converts a hex key into its base256 form
func (b *Base256Encoder) FromHex(h Hex) (Encoded, error) {
	k, err := HexToBytes(h)
	if err != nil {
		return Encoded{}, err
	}
	return b.Encode(k), nil
}

// ToHex converts a base256 encoded key into its hex form using StdEncoding
func ToHex(data Encoded) (Hex, error) {
	return StdEncoding.ToHex(data)
}

// FromHex converts a hex key into its base256 form using StdEncoding
func FromHex(h Hex) (Encoded, error) {
	return StdEncoding.FromHex(h)
}

// -------------------------------------------------------

// HexEncoder encodes 1 byte to 2 characters
type HexEncoder struct {
}

func (b *HexEncoder) Name() string {
	return "hex"
}

func (b *HexEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *HexEncoder) Code() byte {
	return 'H'
}

func (b *HexEncoder) Encode(data []byte) string {
	dst := make([]byte, len(data)*2)
	encodeHex(dst, data)
	return string(dst)
}

func (b *HexEncoder) Decode(data string) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidHex, "odd length %d", len(data))
	}
	dst := make([]byte, len(data)/2)
	if err := decodeHex(dst, []byte(data)); err != nil {
		return nil, err
	}
	return dst, nil
}

func (b *HexEncoder) TestPatterns() []string {
	return []string{
		"00ff55aa" + hextable,
		"DEADBEEF",
	}
}
