package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/customeros/namesherpa/internal/config"
	"github.com/customeros/namesherpa/namegen"
)

func testComposer(t *testing.T) *namegen.Composer {
	t.Helper()
	cfg := &config.Config{Names: config.NamesConfig{DefaultStyle: "unique"}}
	composer, err := BuildComposer(cfg, zap.NewNop())
	require.NoError(t, err)
	return composer
}

func TestGenerate(t *testing.T) {
	composer := testComposer(t)

	tests := []struct {
		name          string
		gender        string
		style         string
		expectedStyle string
	}{
		{"known style", "female", "nature", "nature"},
		{"unknown style", "male", "sparkly", "unique"},
		{"no style", "Male", "", "unique"},
		{"style typed in upper case", "female", " CUTE", "cute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Generate(&out, composer, tt.gender, tt.style))

			var response GenerateResponse
			require.NoError(t, json.Unmarshal(out.Bytes(), &response))
			assert.Equal(t, strings.ToLower(tt.gender), response.Gender)
			assert.Equal(t, tt.expectedStyle, response.Style)
			assert.Equal(t, response.Name.Kanji+" ("+response.Name.Romaji+")", response.CopyText)
			assert.Contains(t, response.Name.Meaning, "(family name)")
		})
	}
}

func TestGenerateInvalidGender(t *testing.T) {
	var out bytes.Buffer
	err := Generate(&out, testComposer(t), "", "cute")
	assert.ErrorIs(t, err, namegen.ErrInvalidGender)
	assert.Empty(t, out.String())
}

func TestPronounce(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Pronounce(&out, "Yuki"))

	var response map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &response))
	assert.Equal(t, "y·u·k·i", response["pronunciation"])
}

func TestListStyles(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ListStyles(&out, testComposer(t)))

	assert.Contains(t, out.String(), `"label": "Cute & Adorable"`)

	var styles []namegen.Style
	require.NoError(t, json.Unmarshal(out.Bytes(), &styles))
	assert.Len(t, styles, 10)
}

func TestBuildComposerBadTablesDir(t *testing.T) {
	cfg := &config.Config{Names: config.NamesConfig{TablesDir: t.TempDir()}}
	_, err := BuildComposer(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestBuildComposerUnknownDefaultStyle(t *testing.T) {
	cfg := &config.Config{Names: config.NamesConfig{DefaultStyle: "gothic"}}
	_, err := BuildComposer(cfg, zap.NewNop())
	assert.ErrorIs(t, err, namegen.ErrUnknownDefaultStyle)
}

func TestInteractive(t *testing.T) {
	input := strings.Join([]string{
		"generate",
		"copy",
		"gender robot",
		"gender female",
		"style cute",
		"generate",
		"copy",
		"dance",
		"quit",
		"generate",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, Interactive(strings.NewReader(input), &out, testComposer(t)))

	output := out.String()
	assert.Contains(t, output, "Choose a gender first")
	assert.Contains(t, output, "Nothing generated yet")
	assert.Contains(t, output, "invalid gender selection")
	assert.Contains(t, output, "Gender: female")
	assert.Contains(t, output, "Style: Cute & Adorable")
	assert.Contains(t, output, "Pronunciation: ")
	assert.Contains(t, output, "Name Elements:")
	assert.Contains(t, output, `Unknown command "dance"`)
	assert.Equal(t, 1, strings.Count(output, "Pronunciation: "), "input after quit is ignored")
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	Version(&out)
	assert.Equal(t, "NameSherpa dev\n", out.String())
}
