package namegen

import (
	"github.com/customeros/namesherpa/internal/tables"
)

// Tables holds the lookup data a Composer draws from. It is never mutated
// after loading.
type Tables struct {
	Male   []NameEntry
	Female []NameEntry
	Family []NameEntry
	Styles []Style
}

// LoadTables reads the name and style tables from dir, or from the copies
// embedded in the binary when dir is empty.
func LoadTables(dir string) (*Tables, error) {
	var (
		raw *tables.Tables
		err error
	)
	if dir == "" {
		raw, err = tables.Load()
	} else {
		raw, err = tables.LoadDir(dir)
	}
	if err != nil {
		return nil, err
	}

	styles := make([]Style, 0, len(raw.Styles))
	for _, s := range raw.Styles {
		styles = append(styles, Style{
			ID:          s.ID,
			Label:       s.Label,
			Description: s.Description,
			Templates:   append([]string(nil), s.Templates...),
		})
	}

	return &Tables{
		Male:   toNameEntries(raw.Male),
		Female: toNameEntries(raw.Female),
		Family: toNameEntries(raw.Family),
		Styles: styles,
	}, nil
}

func toNameEntries(entries []tables.Entry) []NameEntry {
	result := make([]NameEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, NameEntry{Kanji: e.Kanji, Romaji: e.Romaji, Meaning: e.Meaning})
	}
	return result
}
