package main

import (
	"fmt"
	"github.com/bokysan/b256/internal/args"
	"github.com/bokysan/b256/internal/commands/convert"
	"github.com/bokysan/b256/internal/commands/version"
	b256Flags "github.com/bokysan/b256/internal/flags"
	"github.com/bokysan/b256/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

const examples = `Reads a single 32-byte value from stdin and converts it. Without flags, raw bytes are encoded to base256.

Examples:
  # Encode 32 bytes to base256
  head -c 32 /dev/urandom | b256

  # Decode base256 to raw bytes
  echo '_ЦñgÆØ¸≠mÇã≠XΛÏM¸I%ЯωËя_∃Ù/æ¢ΠЬ/' | b256 -d | xxd

  # Encode bytes to hex
  head -c 32 /dev/urandom | b256 -x

  # Convert hex to base256
  echo '3ad8a5417c8d6ef7477d97f734cb85296e2502e1c781ec3aef8e0b9a5acdde0b' | b256 -X

  # Convert base256 to hex
  echo '_ЦñgÆØ¸≠mÇã≠XΛÏM¸I%ЯωËя_∃Ù/æ¢ΠЬ/' | b256 -dx

  # Convert hex to raw bytes
  echo '3ad8a5417c8d6ef7477d97f734cb85296e2502e1c781ec3aef8e0b9a5acdde0b' | b256 -Xd

  # Convert base64 to base256
  openssl rand -base64 32 | b256 -X -i base64`

// B256 is the main executable
type B256 struct {
	parser  *flags.Parser
	convert *convert.Command
}

// NewB256 will create a new instance of B256 and initialize the parser
func NewB256() *B256 {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &B256{
		parser:  flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
		convert: convert.NewCommand(),
	}
	b.parser.LongDescription = examples
	b.parser.SubcommandsOptional = true
	args.General.ConfigurationFile = b.configurationFile

	b.setupGeneral()
	b.setupCodec()
	b.setupVersion()

	return b
}

// setupGeneral will configure general options
func (b *B256) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupCodec adds the conversion options. Conversion is the default action, so they live in the
// root of the parser.
func (b *B256) setupCodec() {
	if _, err := b.parser.AddGroup("Codec", "Conversion options", b.convert); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (b *B256) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// configurationFile is called by the parser for `-c`. It only remembers the file: the flags parser sets
// `default` values at the end of parsing, so the file is read afterwards in Parse.
func (b *B256) configurationFile(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}
	args.General.ConfigurationFilePath = file
	return nil
}

// Parse parses the command line and then applies the configuration file, if one was given. Values from
// the file replace defaults, but not flags or environment variables.
func (b *B256) Parse(arguments []string) ([]string, error) {
	args.General.ConfigurationFilePath = ""

	rest, err := b.parser.ParseArgs(arguments)
	if err != nil {
		return rest, err
	}

	if file := args.General.ConfigurationFilePath; file != "" {
		if err := b256Flags.NewYamlParser(b.parser).ParseFile(file); err != nil {
			return rest, err
		}
	}
	return rest, nil
}

// main parses the arguments, reads the configuration file and runs the conversion
func main() {
	b := NewB256()

	rest, err := b.Parse(os.Args[1:])
	util.MustErrorNilOrExit(err)

	// Subcommands run from within Parse. Without one, convert the input.
	if b.parser.Active == nil {
		util.MustErrorNilOrExit(b.convert.Execute(rest))
	}
}
