package enc

import (
	"encoding/base64"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters, using the standard RFC 4648 alphabet with padding.
// This is the format produced by the `base64` command line tool.
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "base64"
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	res, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInterchange, "base64: %v", err)
	}
	return res, nil
}

func (b *Base64Encoder) TestPatterns() []string {
	return []string{
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ+0129/==",
	}
}

// -------------------------------------------------------

// Base64URLEncoder encodes 3 bytes to 4 characters and uses the URL and file name safe alphabet without
// padding. None of its characters need quoting in a shell.
type Base64URLEncoder struct {
}

func (b *Base64URLEncoder) Name() string {
	return "base64url"
}

func (b *Base64URLEncoder) Code() byte {
	return 'U'
}

func (b *Base64URLEncoder) Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func (b *Base64URLEncoder) Decode(data string) ([]byte, error) {
	res, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInterchange, "base64url: %v", err)
	}
	return res, nil
}

func (b *Base64URLEncoder) TestPatterns() []string {
	return []string{
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ_0129-",
	}
}
