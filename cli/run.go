package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/customeros/namesherpa/internal/config"
	"github.com/customeros/namesherpa/namegen"
)

type GenerateResponse struct {
	Gender   string                `json:"gender"`
	Style    string                `json:"style"`
	Name     namegen.GeneratedName `json:"name"`
	CopyText string                `json:"copyText"`
}

// BuildComposer loads the tables selected by cfg and wires a Composer.
func BuildComposer(cfg *config.Config, log *zap.Logger) (*namegen.Composer, error) {
	tables, err := namegen.LoadTables(cfg.Names.TablesDir)
	if err != nil {
		return nil, fmt.Errorf("error loading name tables: %w", err)
	}

	source := "embedded"
	if cfg.Names.TablesDir != "" {
		source = cfg.Names.TablesDir
	}
	log.Debug("name tables loaded",
		zap.String("source", source),
		zap.Int("male", len(tables.Male)),
		zap.Int("female", len(tables.Female)),
		zap.Int("family", len(tables.Family)),
		zap.Int("styles", len(tables.Styles)))

	return namegen.NewComposer(tables, namegen.WithDefaultStyle(cfg.Names.DefaultStyle))
}

func BuildResponse(gender namegen.Gender, style string, name namegen.GeneratedName) GenerateResponse {
	return GenerateResponse{
		Gender:   string(gender),
		Style:    style,
		Name:     name,
		CopyText: copyText(name.Kanji, name.Romaji),
	}
}

func copyText(kanji, romaji string) string {
	return fmt.Sprintf("%s (%s)", kanji, romaji)
}
