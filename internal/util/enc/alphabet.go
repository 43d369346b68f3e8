package enc

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// AlphabetSize is the number of characters in an alphabet: one for every possible byte value.
const AlphabetSize = 256

// ShellUnsafe lists the characters that would need escaping when pasted into a shell. None of them may
// appear in an alphabet. Whitespace and control characters are rejected separately.
const ShellUnsafe = "\"'\\$` \t\n\r"

// Block is a named, ordered run of characters. Alphabets are assembled from blocks.
type Block struct {
	Name  string
	Runes []rune
}

// RangeBlock creates a block with all characters from `from` to `to` (both inclusive), leaving out the
// characters listed in `skip`.
func RangeBlock(name string, from, to rune, skip ...rune) Block {
	b := Block{
		Name:  name,
		Runes: make([]rune, 0, to-from+1),
	}
	for r := from; r <= to; r++ {
		if !containsRune(skip, r) {
			b.Runes = append(b.Runes, r)
		}
	}
	return b
}

// ListBlock creates a block from an explicit list of characters.
func ListBlock(name string, runes ...rune) Block {
	return Block{
		Name:  name,
		Runes: runes,
	}
}

func containsRune(list []rune, r rune) bool {
	for _, v := range list {
		if v == r {
			return true
		}
	}
	return false
}

// Alphabet is the immutable byte <-> character table. The character at index `i` is the encoding of
// byte value `i`.
type Alphabet struct {
	runes   [AlphabetSize]rune
	reverse map[rune]byte
}

// widthCondition measures display width the way a non-CJK terminal does, regardless of the locale of
// the process building the table.
var widthCondition = &runewidth.Condition{EastAsianWidth: false}

// NewAlphabet concatenates the blocks and validates the result. Every violation found is reported in
// the returned error, not just the first one.
func NewAlphabet(blocks ...Block) (*Alphabet, error) {
	var errs error

	all := make([]rune, 0, AlphabetSize)
	origin := make([]string, 0, AlphabetSize)
	for _, b := range blocks {
		for _, r := range b.Runes {
			all = append(all, r)
			origin = append(origin, b.Name)
		}
	}

	if len(all) != AlphabetSize {
		errs = multierror.Append(errs, errors.Errorf("alphabet has %d characters, expected %d", len(all), AlphabetSize))
	}

	seen := make(map[rune]int, len(all))
	for i, r := range all {
		if prev, ok := seen[r]; ok {
			errs = multierror.Append(errs, errors.Errorf("character %U (%q) in block %s at index %d repeats index %d",
				r, r, origin[i], i, prev))
			continue
		}
		seen[r] = i

		if err := validateRune(r); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "character %U in block %s at index %d", r, origin[i], i))
		}
	}

	if errs != nil {
		return nil, errs
	}

	a := &Alphabet{
		reverse: make(map[rune]byte, AlphabetSize),
	}
	for i, r := range all {
		a.runes[i] = r
		a.reverse[r] = byte(i)
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics if the blocks do not form a valid alphabet.
func MustAlphabet(blocks ...Block) *Alphabet {
	a, err := NewAlphabet(blocks...)
	if err != nil {
		panic(fmt.Sprintf("invalid alphabet: %v", err))
	}
	return a
}

// validateRune checks a single character for shell and display safety
func validateRune(r rune) error {
	switch {
	case strings.ContainsRune(ShellUnsafe, r):
		return errors.New("is a shell metacharacter")
	case unicode.IsControl(r):
		return errors.New("is a control character")
	case unicode.IsSpace(r):
		return errors.New("is whitespace")
	case !unicode.IsPrint(r):
		return errors.New("is not printable")
	case unicode.Is(unicode.M, r):
		return errors.New("is a combining mark")
	case widthCondition.RuneWidth(r) != 1:
		return errors.Errorf("is %d columns wide", widthCondition.RuneWidth(r))
	case !norm.NFC.IsNormalString(string(r)):
		return errors.New("is not stable under NFC normalization")
	}
	return nil
}

// Rune returns the character encoding byte `b`.
func (a *Alphabet) Rune(b byte) rune {
	return a.runes[b]
}

// Index returns the byte encoded by the character `r`. The second return value is false if the
// character is not part of the alphabet.
func (a *Alphabet) Index(r rune) (byte, bool) {
	b, ok := a.reverse[r]
	return b, ok
}

// Runes returns a copy of the table.
func (a *Alphabet) Runes() [AlphabetSize]rune {
	return a.runes
}

func (a *Alphabet) String() string {
	return string(a.runes[:])
}

// StdBlocks is the composition of the standard alphabet. The closest look-alike pairs (Latin o / Greek
// omicron, micro sign / mu, sharp s / beta, Latin x / Greek chi, Cyrillic Г / Greek Γ, ...) are broken up by
// leaving one side out. Characters that only resemble each other loosely, like Greek upsilon and Latin u,
// stay in.
var StdBlocks = []Block{
	RangeBlock("ascii", 0x21, 0x7E, '"', '$', '\'', '\\', '`'),
	RangeBlock("latin-1", 0xA1, 0xFF, 0xAD, 0xB5, 0xD7, 0xDF),
	RangeBlock("greek-lower", 0x03B1, 0x03C9, 0x03BA, 0x03BD, 0x03BF, 0x03C1, 0x03C7),
	ListBlock("greek-upper", 'Γ', 'Δ', 'Θ', 'Λ', 'Ξ', 'Π', 'Σ', 'Φ', 'Ψ', 'Ω'),
	ListBlock("cyrillic-upper", 'Б', 'Д', 'Ж', 'И', 'Й', 'Л', 'Ц', 'Ч', 'Ш', 'Щ', 'Ъ', 'Ы', 'Ь', 'Э', 'Ю', 'Я'),
	ListBlock("cyrillic-lower", 'б', 'д', 'ж', 'л', 'ц', 'ч', 'ш', 'щ', 'э', 'ю', 'я'),
	ListBlock("math", '∀', '∂', '∃', '∇', '√', '∞', '∩', '∪', '∫', '≈', '≠', '≤', '≥', '≡', '⊂', '⊃', '⊕', '⊗', '∠'),
}

// StdAlphabet is the default alphabet
var StdAlphabet = MustAlphabet(StdBlocks...)
