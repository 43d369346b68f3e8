package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bokysan/b256/internal/args"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const testConfig = `general:
  log-format: json
codec:
  interchange: base64
`

func writeConfig(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "b256-config")
	require.NoError(t, err)

	file := filepath.Join(dir, "b256.yml")
	require.NoError(t, ioutil.WriteFile(file, []byte(content), 0644))
	return file, func() {
		_ = os.RemoveAll(dir)
	}
}

func Test_ConfigReplacesDefaults(t *testing.T) {
	file, cleanup := writeConfig(t, testConfig)
	defer cleanup()

	b := NewB256()
	rest, err := b.Parse([]string{"-c", file})
	require.NoError(t, err)
	require.Empty(t, rest)

	require.Equal(t, "base64", b.convert.Interchange)
	require.Equal(t, "json", args.General.LogFormat)
	require.Equal(t, file, args.General.ConfigurationFilePath)
}

func Test_CommandLineOverridesConfig(t *testing.T) {
	file, cleanup := writeConfig(t, testConfig)
	defer cleanup()

	b := NewB256()
	_, err := b.Parse([]string{"-c", file, "-i", "base91", "-f", "text"})
	require.NoError(t, err)

	require.Equal(t, "base91", b.convert.Interchange)
	require.Equal(t, "text", args.General.LogFormat)
}

func Test_EnvironmentOverridesConfig(t *testing.T) {
	file, cleanup := writeConfig(t, testConfig)
	defer cleanup()

	require.NoError(t, os.Setenv("B256_INTERCHANGE", "base32"))
	defer os.Unsetenv("B256_INTERCHANGE")

	b := NewB256()
	_, err := b.Parse([]string{"-c", file})
	require.NoError(t, err)

	require.Equal(t, "base32", b.convert.Interchange)
}

func Test_WithoutConfig(t *testing.T) {
	b := NewB256()
	_, err := b.Parse([]string{"-x"})
	require.NoError(t, err)

	require.Equal(t, "hex", b.convert.Interchange)
	require.Empty(t, args.General.ConfigurationFilePath)
}

func Test_MissingConfig(t *testing.T) {
	b := NewB256()
	_, err := b.Parse([]string{"-c", filepath.Join(os.TempDir(), "b256-does-not-exist.yml")})
	require.Error(t, err)

	flagsErr, ok := errors.Cause(err).(*flags.Error)
	require.True(t, ok)
	require.Equal(t, ErrConfigFileDoesNotExist, flagsErr.Type)
}

func Test_ConfigDrivesConversion(t *testing.T) {
	file, cleanup := writeConfig(t, testConfig)
	defer cleanup()

	b := NewB256()
	out := &bytes.Buffer{}
	b.convert.Stdin = bytes.NewReader(make([]byte, 32))
	b.convert.Stdout = out

	rest, err := b.Parse([]string{"-c", file, "-x"})
	require.NoError(t, err)
	require.Nil(t, b.parser.Active)
	require.NoError(t, b.convert.Execute(rest))

	require.Equal(t, "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=\n", out.String())
}

func Test_ExamplesFirstParagraphIsOneLine(t *testing.T) {
	// go-flags wraps LongDescription itself, hard breaks inside a paragraph end up in the help text
	paragraphs := strings.SplitN(examples, "\n\n", 2)
	require.Len(t, paragraphs, 2)
	require.NotContains(t, paragraphs[0], "\n")
}
