package enc

import (
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

const (
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,./:;<=>?@[]^_`{|}~\""
)

var stdBase91Encoding = base91.NewEncoding(cb91)

// -------------------------------------------------------

// Base91Encoder when encoding, each group of 13 bits is converted into 2 radix-91 digits. The output
// contains quotes and other shell metacharacters, so it must be quoted when used as an argument.
type Base91Encoder struct {
}

func (b *Base91Encoder) Name() string {
	return "base91"
}

func (b *Base91Encoder) Code() byte {
	return 'X'
}

func (b *Base91Encoder) Encode(data []byte) string {
	return stdBase91Encoding.EncodeToString(data)
}

func (b *Base91Encoder) Decode(data string) ([]byte, error) {
	res, err := stdBase91Encoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInterchange, "base91: %v", err)
	}
	return res, nil
}

func (b *Base91Encoder) TestPatterns() []string {
	return []string{
		cb91[:90],
	}
}
