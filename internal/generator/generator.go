// Package generator produces random secrets from a configurable
// character-class policy. It is a pure utility: it feeds generated passwords
// into the vault flow but depends on nothing else in the application.
package generator

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	upperSet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerSet  = "abcdefghijklmnopqrstuvwxyz"
	digitSet  = "0123456789"
	symbolSet = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// ambiguousSet holds look-alike characters removed when
	// Options.ExcludeAmbiguous is set.
	ambiguousSet = "0O1lI"

	// MinLength and MaxLength bound the requested secret length.
	// Out-of-range requests are clamped, not rejected.
	MinLength = 8
	MaxLength = 50
)

// Options selects the character classes and length for a generated secret.
type Options struct {
	Length           int
	UseUpper         bool
	UseLower         bool
	UseDigits        bool
	UseSymbols       bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns the generation policy the UI starts from:
// 16 characters, all classes enabled, look-alikes excluded.
func DefaultOptions() Options {
	return Options{
		Length:           16,
		UseUpper:         true,
		UseLower:         true,
		UseDigits:        true,
		UseSymbols:       true,
		ExcludeAmbiguous: true,
	}
}

// Generate draws a random secret according to opts.
//
// The candidate set is the union of the enabled classes, minus the
// ambiguous characters when requested. If that union ends up empty (all
// classes disabled, or everything filtered away), the lowercase class is
// used instead: generation never fails to produce a string of the requested
// length. Characters are drawn independently and uniformly from the final
// set using the OS CSPRNG.
func Generate(opts Options) string {
	length := clampLength(opts.Length)
	charset := buildCharset(opts)

	var b strings.Builder
	b.Grow(length)
	max := big.NewInt(int64(len(charset)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the OS entropy source is broken;
			// there is no meaningful recovery for a password generator.
			panic(err)
		}
		b.WriteByte(charset[n.Int64()])
	}
	return b.String()
}

func buildCharset(opts Options) string {
	var b strings.Builder
	if opts.UseUpper {
		b.WriteString(upperSet)
	}
	if opts.UseLower {
		b.WriteString(lowerSet)
	}
	if opts.UseDigits {
		b.WriteString(digitSet)
	}
	if opts.UseSymbols {
		b.WriteString(symbolSet)
	}

	charset := b.String()
	if opts.ExcludeAmbiguous {
		charset = stripAmbiguous(charset)
	}

	if charset == "" {
		charset = lowerSet
		if opts.ExcludeAmbiguous {
			charset = stripAmbiguous(charset)
		}
	}
	return charset
}

func stripAmbiguous(charset string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(ambiguousSet, r) {
			return -1
		}
		return r
	}, charset)
}

func clampLength(length int) int {
	if length < MinLength {
		return MinLength
	}
	if length > MaxLength {
		return MaxLength
	}
	return length
}
