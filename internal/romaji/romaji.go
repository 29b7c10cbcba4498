package romaji

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ToASCII folds long-vowel marks and other diacritics ("Shōta" -> "Shota")
// and drops whatever is still outside ASCII.
func ToASCII(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, input)

	ascii := make([]rune, 0, len(result))
	for _, r := range result {
		if r <= unicode.MaxASCII {
			ascii = append(ascii, r)
		}
	}
	return strings.TrimSpace(string(ascii))
}

// IsValid reports whether s is usable as a romanized name: ASCII letters
// with optional inner hyphens or apostrophes (e.g. "Shin'ichi").
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case (r == '-' || r == '\'') && i > 0 && i < len(s)-1:
		default:
			return false
		}
	}
	return true
}
