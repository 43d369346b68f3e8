package convert

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/bokysan/b256/internal/logging"
	"github.com/bokysan/b256/internal/util"
	"github.com/bokysan/b256/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Mode is the conversion selected by the combination of flags
type Mode int

const (
	// EncodeRaw reads 32 raw bytes and outputs base256. This is the default.
	EncodeRaw Mode = iota
	// RawToInterchange reads 32 raw bytes and outputs the interchange format (`-x`)
	RawToInterchange
	// DecodeToRaw reads base256 and outputs raw bytes (`-d`)
	DecodeToRaw
	// DecodeToInterchange reads base256 and outputs the interchange format (`-dx`)
	DecodeToInterchange
	// InterchangeToBase256 reads the interchange format and outputs base256 (`-X`)
	InterchangeToBase256
	// InterchangeToRaw reads the interchange format and outputs raw bytes (`-Xd`)
	InterchangeToRaw
	// InterchangeValidate reads the interchange format and outputs it in canonical form (`-Xx`)
	InterchangeValidate
)

var modeNames = map[Mode]string{
	EncodeRaw:            "raw->base256",
	RawToInterchange:     "raw->interchange",
	DecodeToRaw:          "base256->raw",
	DecodeToInterchange:  "base256->interchange",
	InterchangeToBase256: "interchange->base256",
	InterchangeToRaw:     "interchange->raw",
	InterchangeValidate:  "interchange->interchange",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// RawOutput returns true if the mode writes binary data
func (m Mode) RawOutput() bool {
	return m == DecodeToRaw || m == InterchangeToRaw
}

// RawInput returns true if the mode reads binary data
func (m Mode) RawInput() bool {
	return m == EncodeRaw || m == RawToInterchange
}

// Command converts a single key read from stdin and writes the result to stdout
type Command struct {
	Encode      bool   `short:"e" long:"encode"      yaml:"-"           description:"Encode raw bytes to base256 (default)"`
	Decode      bool   `short:"d" long:"decode"      yaml:"-"           description:"Decode base256 to raw bytes"`
	Hex         bool   `short:"x" long:"hex"         yaml:"-"           description:"Use hex (or the selected interchange) format for output"`
	FromHex     bool   `short:"X" long:"from-hex"    yaml:"-"           description:"Read hex (or the selected interchange) format as input"`
	Interchange string `short:"i" long:"interchange" yaml:"interchange" env:"B256_INTERCHANGE" description:"Interchange format used by -x and -X" choice:"hex" choice:"base32" choice:"base64" choice:"base64url" choice:"base85" choice:"base91" default:"hex"`

	Stdin  io.Reader `no-flag:"true" yaml:"-"`
	Stdout io.Writer `no-flag:"true" yaml:"-"`
}

func NewCommand() *Command {
	return &Command{
		Interchange: enc.Interchanges[0].Name(),
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
	}
}

// Mode figures out the conversion from the flags
func (c *Command) Mode() (Mode, error) {
	if c.Encode && c.Decode {
		return 0, errors.Wrapf(util.ErrInvalidUsage, "--encode and --decode cannot be used together")
	}

	switch {
	case c.FromHex && c.Decode && c.Hex:
		return 0, errors.Wrapf(util.ErrInvalidUsage, "-Xdx makes no sense (hex to hex through decode)")
	case c.FromHex && c.Decode:
		return InterchangeToRaw, nil
	case c.FromHex && c.Hex:
		return InterchangeValidate, nil
	case c.FromHex:
		return InterchangeToBase256, nil
	case c.Decode && c.Hex:
		return DecodeToInterchange, nil
	case c.Decode:
		return DecodeToRaw, nil
	case c.Hex:
		return RawToInterchange, nil
	}
	return EncodeRaw, nil
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	if len(args) > 0 {
		return &flags.Error{
			Type:    flags.ErrUnknownCommand,
			Message: fmt.Sprintf("unexpected arguments: %v", args),
		}
	}

	return c.Run()
}

// Run reads the input, converts it and writes the output. Nothing is written if the conversion fails.
func (c *Command) Run() error {
	mode, err := c.Mode()
	if err != nil {
		return err
	}

	interchange, err := enc.InterchangeByName(c.Interchange)
	if err != nil {
		return errors.WithStack(err)
	}

	input, err := ioutil.ReadAll(c.Stdin)
	if err != nil {
		return errors.Wrapf(err, "Could not read input")
	}
	if len(input) == 0 {
		log.Debugf("Empty input, nothing to do")
		return nil
	}

	log.Debugf("Converting %v (%d bytes of input), interchange format %v", mode, len(input), interchange.Name())

	output, err := Convert(mode, interchange, input)
	if err != nil {
		return err
	}

	if mode.RawOutput() && isTerminal(c.Stdout) {
		log.Warnf("Writing raw binary data to a terminal. Use -x to get %v instead.", interchange.Name())
	}

	if _, err := c.Stdout.Write(output); err != nil {
		return errors.Wrapf(err, "Could not write output")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Convert runs the conversion on the input. Text outputs are terminated by a newline, raw outputs are not.
func Convert(mode Mode, interchange enc.Encoder, input []byte) ([]byte, error) {
	if mode.RawInput() {
		input = TrimRaw(input)
	} else {
		input = TrimText(input)
	}

	switch mode {
	case EncodeRaw:
		key, err := enc.KeyFromBytes(input)
		if err != nil {
			return nil, err
		}
		trace(key)
		return line(enc.Encode(key).String()), nil

	case RawToInterchange:
		key, err := enc.KeyFromBytes(input)
		if err != nil {
			return nil, err
		}
		trace(key)
		return line(toInterchange(interchange, key)), nil

	case DecodeToRaw:
		key, err := decodeBase256(input)
		if err != nil {
			return nil, err
		}
		trace(key)
		return key[:], nil

	case DecodeToInterchange:
		if isHex(interchange) {
			encoded, err := enc.EncodedFromString(string(input))
			if err != nil {
				return nil, err
			}
			h, err := enc.ToHex(encoded)
			if err != nil {
				return nil, err
			}
			return line(h.String()), nil
		}
		key, err := decodeBase256(input)
		if err != nil {
			return nil, err
		}
		trace(key)
		return line(toInterchange(interchange, key)), nil

	case InterchangeToBase256:
		if isHex(interchange) {
			h, err := enc.HexFromBytes(input)
			if err != nil {
				return nil, err
			}
			encoded, err := enc.FromHex(h)
			if err != nil {
				return nil, err
			}
			return line(encoded.String()), nil
		}
		key, err := fromInterchange(interchange, input)
		if err != nil {
			return nil, err
		}
		trace(key)
		return line(enc.Encode(key).String()), nil

	case InterchangeToRaw:
		key, err := fromInterchange(interchange, input)
		if err != nil {
			return nil, err
		}
		trace(key)
		return key[:], nil

	case InterchangeValidate:
		key, err := fromInterchange(interchange, input)
		if err != nil {
			return nil, err
		}
		return line(toInterchange(interchange, key)), nil
	}

	return nil, errors.Errorf("Unknown conversion mode: %v", mode)
}

// TrimText removes a single trailing newline (LF or CRLF)
func TrimText(input []byte) []byte {
	if l := len(input); l > 0 && input[l-1] == '\n' {
		input = input[:l-1]
		if l := len(input); l > 0 && input[l-1] == '\r' {
			input = input[:l-1]
		}
	}
	return input
}

// TrimRaw removes a single trailing newline, but only if the input is longer than a key. A key may
// end with the byte 0x0A.
func TrimRaw(input []byte) []byte {
	if l := len(input); l > enc.KeySize && input[l-1] == '\n' {
		return input[:l-1]
	}
	return input
}

func isHex(e enc.Encoder) bool {
	_, ok := e.(*enc.HexEncoder)
	return ok
}

func decodeBase256(input []byte) (enc.Key, error) {
	encoded, err := enc.EncodedFromString(string(input))
	if err != nil {
		return enc.Key{}, err
	}
	return enc.Decode(encoded)
}

func fromInterchange(e enc.Encoder, input []byte) (enc.Key, error) {
	if isHex(e) {
		h, err := enc.HexFromBytes(input)
		if err != nil {
			return enc.Key{}, err
		}
		return enc.HexToBytes(h)
	}

	data, err := e.Decode(string(input))
	if err != nil {
		return enc.Key{}, err
	}
	return enc.KeyFromBytes(data)
}

func toInterchange(e enc.Encoder, key enc.Key) string {
	if isHex(e) {
		return enc.BytesToHex(key).String()
	}
	return e.Encode(key[:])
}

func line(s string) []byte {
	return []byte(s + "\n")
}

func trace(key enc.Key) {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Key:\n%s", spew.Sdump(key))
	}
}
