package crypto

import (
	"errors"
	"fmt"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+~`|}{[]:;?><,./-="
)

var (
	ErrInvalidRequest   = errors.New("invalid generation request")
	ErrNoCharacterTypes = fmt.Errorf("%w: at least one character type must be selected", ErrInvalidRequest)
	ErrInvalidLength    = fmt.Errorf("%w: password length must be at least 1", ErrInvalidRequest)
)

// CharClass is a category of characters a password may draw from.
type CharClass int

const (
	Uppercase CharClass = iota
	Lowercase
	Digit
	Special
)

// Alphabet returns the fixed set of characters belonging to the class.
func (c CharClass) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return numberChars
	case Special:
		return symbolChars
	default:
		return ""
	}
}

func (c CharClass) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digit"
	case Special:
		return "special"
	default:
		return fmt.Sprintf("CharClass(%d)", int(c))
	}
}

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions mirrors the web form's initial state: 4 uppercase characters.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    4,
		Uppercase: true,
	}
}

// Classes returns the enabled character classes in their fixed order.
func (o GeneratorOptions) Classes() []CharClass {
	var classes []CharClass
	if o.Uppercase {
		classes = append(classes, Uppercase)
	}
	if o.Lowercase {
		classes = append(classes, Lowercase)
	}
	if o.Numbers {
		classes = append(classes, Digit)
	}
	if o.Symbols {
		classes = append(classes, Special)
	}
	return classes
}

// Generator produces passwords using a pluggable randomness source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator drawing from src. A nil src falls back to SecureSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = SecureSource()
	}
	return &Generator{src: src}
}

// Generate creates a random password using the default secure source.
func Generate(opts GeneratorOptions) (string, error) {
	return NewGenerator(nil).Generate(opts)
}

// Generate builds a password holding at least one character of every enabled
// class, padded from the combined pool and shuffled.
//
// If opts.Length is smaller than the number of enabled classes the result is
// one character per class, i.e. longer than requested.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	classes := opts.Classes()
	if len(classes) == 0 {
		return "", ErrNoCharacterTypes
	}
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}

	// Pool is not deduplicated across classes.
	var pool string
	for _, c := range classes {
		pool += c.Alphabet()
	}

	size := opts.Length
	if size < len(classes) {
		size = len(classes)
	}
	result := make([]byte, 0, size)

	for _, c := range classes {
		ch, err := g.randChar(c.Alphabet())
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	for len(result) < opts.Length {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

func (g *Generator) randChar(charset string) (byte, error) {
	n, err := g.src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.src.IntN(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
