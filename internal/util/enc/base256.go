package enc

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// KeySize is the number of bytes the codec works on
	KeySize = 32
	// EncodedSize is the number of characters in an encoded key
	EncodedSize = KeySize
	// HexSize is the number of hex digits in a hex encoded key
	HexSize = KeySize * 2
)

// Key is a raw 32-byte value, e.g. a digest or a public key.
type Key [KeySize]byte

// Encoded is the base256 form of a Key.
type Encoded [EncodedSize]rune

// Hex is the hex form of a Key. It consists of ASCII characters only.
type Hex [HexSize]byte

// KeyFromBytes copies the slice into a Key. The slice must be exactly KeySize bytes long.
func KeyFromBytes(data []byte) (Key, error) {
	var k Key
	if len(data) != KeySize {
		return k, errors.Wrapf(ErrInvalidLength, "expected %d bytes, got %d", KeySize, len(data))
	}
	copy(k[:], data)
	return k, nil
}

// EncodedFromString splits the string into characters. The string must be valid UTF-8 and exactly
// EncodedSize characters long. The characters are not checked against the alphabet; this is left
// to Decode.
func EncodedFromString(s string) (Encoded, error) {
	var e Encoded
	if !utf8.ValidString(s) {
		return e, errors.WithStack(ErrInvalidUTF8)
	}
	if n := utf8.RuneCountInString(s); n != EncodedSize {
		return e, errors.Wrapf(ErrInvalidLength, "expected %d chars, got %d", EncodedSize, n)
	}
	i := 0
	for _, r := range s {
		e[i] = r
		i++
	}
	return e, nil
}

// HexFromBytes copies the slice into a Hex. The slice must be exactly HexSize bytes long. The digits are
// not validated; this is left to HexToBytes.
func HexFromBytes(data []byte) (Hex, error) {
	var h Hex
	if len(data) != HexSize {
		return h, errors.Wrapf(ErrInvalidLength, "expected %d hex chars, got %d", HexSize, len(data))
	}
	copy(h[:], data)
	return h, nil
}

func (k Key) String() string {
	return BytesToHex(k).String()
}

func (e Encoded) String() string {
	return string(e[:])
}

func (h Hex) String() string {
	return string(h[:])
}

// -------------------------------------------------------

// Base256Encoder maps every byte to exactly one character of its alphabet
type Base256Encoder struct {
	alphabet *Alphabet
}

// NewBase256 creates an encoder for the given (already validated) alphabet.
func NewBase256(a *Alphabet) *Base256Encoder {
	return &Base256Encoder{
		alphabet: a,
	}
}

// StdEncoding is the base256 encoder using StdAlphabet
var StdEncoding = NewBase256(StdAlphabet)

func (b *Base256Encoder) Name() string {
	return "Base256"
}

func (b *Base256Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base256Encoder) Code() byte {
	return 'B'
}

// Alphabet returns the table used by this encoder
func (b *Base256Encoder) Alphabet() *Alphabet {
	return b.alphabet
}

// Encode maps each byte of the key to its character. Positions are preserved.
func (b *Base256Encoder) Encode(key Key) Encoded {
	var out Encoded
	for i, v := range key {
		out[i] = b.alphabet.Rune(v)
	}
	return out
}

// Decode is the reverse of Encode. If any character is not part of the alphabet, an error wrapping
// ErrInvalidCharacter is returned together with a zero Key.
func (b *Base256Encoder) Decode(data Encoded) (Key, error) {
	var out Key
	for i, r := range data {
		v, ok := b.alphabet.Index(r)
		if !ok {
			return Key{}, errors.Wrapf(ErrInvalidCharacter, "%q at position %d", r, i)
		}
		out[i] = v
	}
	return out, nil
}

// Encode encodes the key with StdEncoding
func Encode(key Key) Encoded {
	return StdEncoding.Encode(key)
}

// Decode decodes the characters with StdEncoding
func Decode(data Encoded) (Key, error) {
	return StdEncoding.Decode(data)
}
