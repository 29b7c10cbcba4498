package romaji_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/customeros/namesherpa/internal/romaji"
)

func TestToASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Yuki", expected: "Yuki"},
		{name: "macron o", input: "Shōta", expected: "Shota"},
		{name: "macron u", input: "Yūma", expected: "Yuma"},
		{name: "circumflex", input: "Satô", expected: "Sato"},
		{name: "kanji dropped", input: "雪 Yuki", expected: "Yuki"},
		{name: "surrounding space", input: "  Ren ", expected: "Ren"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, romaji.ToASCII(tt.input))
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Yuki", true},
		{"Shin'ichi", true},
		{"Jun-ichi", true},
		{"", false},
		{"-Ren", false},
		{"Ren'", false},
		{"Ren 2", false},
		{"雪", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, romaji.IsValid(tt.input))
		})
	}
}
