package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	opts := Options{Length: 16, UseLower: true, ExcludeAmbiguous: true}

	for i := 0; i < 50; i++ {
		secret := Generate(opts)
		require.Len(t, secret, 16)
		for _, r := range secret {
			assert.True(t, r >= 'a' && r <= 'z', "unexpected rune %q", r)
			assert.NotEqual(t, 'l', r, "ambiguous rune must be excluded")
		}
	}
}

func TestGenerate_AllClassesDisabled_FallsBackToLowercase(t *testing.T) {
	secret := Generate(Options{Length: 10})

	require.Len(t, secret, 10)
	for _, r := range secret {
		assert.True(t, r >= 'a' && r <= 'z', "fallback must be lowercase, got %q", r)
	}
}

func TestGenerate_LengthClamping(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "below minimum", requested: 3, want: MinLength},
		{name: "zero", requested: 0, want: MinLength},
		{name: "above maximum", requested: 200, want: MaxLength},
		{name: "in range", requested: 24, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := Generate(Options{Length: tt.requested, UseLower: true})
			assert.Len(t, secret, tt.want)
		})
	}
}

func TestGenerate_ClassUnion(t *testing.T) {
	opts := Options{Length: 50, UseUpper: true, UseDigits: true}

	secret := Generate(opts)
	for _, r := range secret {
		inUpper := strings.ContainsRune(upperSet, r)
		inDigit := strings.ContainsRune(digitSet, r)
		assert.True(t, inUpper || inDigit, "rune %q outside enabled classes", r)
	}
}

func TestGenerate_ExcludeAmbiguous_AllClasses(t *testing.T) {
	opts := DefaultOptions()
	opts.Length = MaxLength

	for i := 0; i < 20; i++ {
		secret := Generate(opts)
		for _, r := range secret {
			assert.False(t, strings.ContainsRune(ambiguousSet, r),
				"ambiguous rune %q must never appear", r)
		}
	}
}

func TestGenerate_SymbolsOnly(t *testing.T) {
	secret := Generate(Options{Length: 20, UseSymbols: true})

	require.Len(t, secret, 20)
	for _, r := range secret {
		assert.True(t, strings.ContainsRune(symbolSet, r), "rune %q not a symbol", r)
	}
}
