package namegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesCannotModifyCatalog(t *testing.T) {
	c, err := NewComposer(testTables(), WithRand(&stubRand{}))
	require.NoError(t, err)

	styles := c.Styles()
	require.Len(t, styles, 2)
	styles[0].ID = "changed"
	styles[0].Templates[0] = "Overwritten"

	looked, ok := c.LookupStyle("cute")
	require.True(t, ok)
	looked.Templates[1] = "Overwritten"

	templates := c.TemplatesFor("cute")
	assert.Equal(t, []string{
		"As delightful as morning dew",
		"Gentle and charming like cherry blossoms",
	}, templates)
	templates[0] = "Overwritten"

	name, err := c.Compose(GenderFemale, "cute")
	require.NoError(t, err)
	assert.Equal(t, "As delightful as morning dew. snow (given name) combined with assisting wisteria (family name)", name.Meaning)

	_, ok = c.LookupStyle("changed")
	assert.False(t, ok)
}

func TestResolveStyle(t *testing.T) {
	c, err := NewComposer(testTables(), WithRand(&stubRand{}))
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"cute", "cute"},
		{"CUTE", "cute"},
		{" Cute ", "cute"},
		{"", "unique"},
		{"sparkly", "unique"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.ResolveStyle(tt.input))
		})
	}
}
