package enc

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var encoderTests = [][]byte{
	[]byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
		"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
		"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277"),
	keyTest[:],
	{},
	{0x0A},
}

func Test_Interchanges(t *testing.T) {
	for _, encoder := range Interchanges {
		for _, encoderTest := range encoderTests {
			encoded := encoder.Encode(encoderTest)
			require.NotContainsf(t, encoded, "\n", "%v", encoder.Name())
			decoded, err := encoder.Decode(encoded)
			require.NoErrorf(t, err, "%v", encoder.Name())
			require.Equalf(t, len(encoderTest), len(decoded), "%v", encoder.Name())
			if len(encoderTest) > 0 {
				require.Equalf(t, encoderTest, decoded, "%v", encoder.Name())
			}
		}
	}
}

func Test_InterchangeTestPatterns(t *testing.T) {
	for _, encoder := range Interchanges {
		for _, pattern := range encoder.TestPatterns() {
			_, err := encoder.Decode(pattern)
			require.NoErrorf(t, err, "%v: %v", encoder.Name(), pattern)
		}
	}
}

func Test_InterchangeInvalid(t *testing.T) {
	for _, encoder := range Interchanges {
		_, err := encoder.Decode("\x00\x01~~~")
		require.Errorf(t, err, "%v", encoder.Name())
		require.Truef(t, IsInputError(err), "%v: %v", encoder.Name(), err)
	}
}

func Test_InterchangeByName(t *testing.T) {
	for _, name := range InterchangeNames() {
		e, err := InterchangeByName(name)
		require.NoError(t, err)
		require.Equal(t, name, e.Name())
	}

	e, err := InterchangeByName("HEX")
	require.NoError(t, err)
	require.Equal(t, byte('H'), e.Code())

	e, err = InterchangeByName("X")
	require.NoError(t, err)
	require.Equal(t, "base91", e.Name())

	_, err = InterchangeByName("base58")
	require.Error(t, err)
	require.Contains(t, err.Error(), "base32, base64, base64url, base85, base91, hex")
}

func Test_HexEncoder(t *testing.T) {
	encoder := HexEncoder{}
	require.Equal(t, keyTestHex, encoder.Encode(keyTest[:]))

	_, err := encoder.Decode("abc")
	require.True(t, errors.Is(err, ErrInvalidHex))
}

func Test_Base32EncoderLowerCase(t *testing.T) {
	encoder := Base32Encoder{}
	encoded := encoder.Encode(keyTest[:])
	decoded, err := encoder.Decode(strings.ToLower(encoded))
	require.NoError(t, err)
	require.Equal(t, keyTest[:], decoded)
}

func Test_Base64Encoder(t *testing.T) {
	encoder := Base64Encoder{}
	require.Equal(t, "EjRWeJq83vARIjNEVWZ3iJmqu8zd7v8ADx4tPEtaaXg=", encoder.Encode(keyTest[:]))
}

func Test_Base64URLEncoder(t *testing.T) {
	encoder := Base64URLEncoder{}
	encoded := encoder.Encode(encoderTests[0])
	require.NotContains(t, encoded, "=")
	require.NotContains(t, encoded, "+")
	require.NotContains(t, encoded, "/")
}

func Test_Base85Encoder(t *testing.T) {
	encoder := Base85Encoder{}
	require.Equal(t, "&i<X6R_7MH&L'#!<G$H2RB!mCh<t:C%j!;b93Q%S", encoder.Encode(keyTest[:]))
	require.Equal(t, "z", encoder.Encode([]byte{0, 0, 0, 0}))

	decoded, err := encoder.Decode("zs8W-!")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}, decoded)

	_, err = encoder.Decode("s8W-!{")
	require.True(t, errors.Is(err, ErrInvalidInterchange))
}
