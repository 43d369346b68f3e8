package enc

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const keyTestHex = "123456789abcdef0112233445566778899aabbccddeeff000f1e2d3c4b5a6978"

func mustHex(t *testing.T, s string) Hex {
	h, err := HexFromBytes([]byte(s))
	require.NoError(t, err)
	return h
}

func Test_BytesToHex(t *testing.T) {
	require.Equal(t, keyTestHex, BytesToHex(keyTest).String())
	require.Equal(t, keyTestHex, keyTest.String())
	require.Equal(t, strings.Repeat("00", KeySize), BytesToHex(Key{}).String())
}

func Test_HexToBytes(t *testing.T) {
	k, err := HexToBytes(mustHex(t, keyTestHex))
	require.NoError(t, err)
	require.Equal(t, keyTest, k)

	k, err = HexToBytes(mustHex(t, strings.ToUpper(keyTestHex)))
	require.NoError(t, err)
	require.Equal(t, keyTest, k)
}

func Test_HexRoundTrip(t *testing.T) {
	for v := 0; v < AlphabetSize; v++ {
		var k Key
		k[v%KeySize] = byte(v)
		k[(v+1)%KeySize] = byte(255 - v)
		decoded, err := HexToBytes(BytesToHex(k))
		require.NoError(t, err)
		require.Equal(t, k, decoded)
	}
}

func Test_HexToBytesInvalid(t *testing.T) {
	h := mustHex(t, keyTestHex)
	h[10] = 'G'

	k, err := HexToBytes(h)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidHex))
	require.Contains(t, err.Error(), "position 10")
	require.Equal(t, Key{}, k)

	for _, c := range []byte{' ', 'g', 'x', '-', 0x00, 0xFF} {
		h := mustHex(t, keyTestHex)
		h[63] = c
		_, err := HexToBytes(h)
		require.Truef(t, errors.Is(err, ErrInvalidHex), "Character %q", c)
	}
}

func Test_HexFromBytes(t *testing.T) {
	_, err := HexFromBytes([]byte(keyTestHex[:63]))
	require.True(t, errors.Is(err, ErrInvalidLength))
	require.Contains(t, err.Error(), "expected 64 hex chars, got 63")
}

func Test_ToHexFromHex(t *testing.T) {
	h, err := ToHex(Encode(keyTest))
	require.NoError(t, err)
	require.Equal(t, keyTestHex, h.String())

	e, err := FromHex(h)
	require.NoError(t, err)
	require.Equal(t, keyTestEncoded, e.String())
}

func Test_ToHexFromHexRoundTrip(t *testing.T) {
	var k Key
	for i := range k {
		k[i] = 0xDE
	}
	encoded := Encode(k)
	require.Equal(t, strings.Repeat("Ь", KeySize), encoded.String())

	h, err := ToHex(encoded)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("de", KeySize), h.String())

	back, err := FromHex(h)
	require.NoError(t, err)
	require.Equal(t, encoded, back)
}

func Test_FromHexKnownVector(t *testing.T) {
	e, err := FromHex(mustHex(t, "3ad8a5417c8d6ef7477d97f734cb85296e2502e1c781ec3aef8e0b9a5acdde0b"))
	require.NoError(t, err)
	require.Equal(t, "_ЦñgÆØ¸≠mÇã≠XΛÏM¸I%ЯωËя_∃Ù/æ¢ΠЬ/", e.String())
}

func Test_ToHexInvalid(t *testing.T) {
	e := Encode(keyTest)
	e[31] = '$'
	_, err := ToHex(e)
	require.True(t, errors.Is(err, ErrInvalidCharacter))
}

func Test_FromHexInvalid(t *testing.T) {
	h := mustHex(t, keyTestHex)
	h[0] = 'z'
	e, err := FromHex(h)
	require.True(t, errors.Is(err, ErrInvalidHex))
	require.Equal(t, Encoded{}, e)
}
