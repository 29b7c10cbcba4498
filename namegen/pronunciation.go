package namegen

import "strings"

const PronunciationSeparator = "·"

// Applied in order, before the string is split into characters.
var pronunciationReplacer = []struct {
	from string
	to   string
}{
	{"shi", "ši"},
	{"chi", "či"},
	{"tsu", "cu"},
}

// Pronounce derives a character-by-character reading guide from a romanized
// given name, e.g. "Shizuka" becomes "š·i·z·u·k·a".
func Pronounce(romaji string) string {
	s := strings.ToLower(romaji)
	for _, r := range pronunciationReplacer {
		s = strings.ReplaceAll(s, r.from, r.to)
	}

	chars := make([]string, 0, len(s))
	for _, c := range s {
		chars = append(chars, string(c))
	}
	return strings.Join(chars, PronunciationSeparator)
}
