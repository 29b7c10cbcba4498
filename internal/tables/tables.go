package tables

import (
	"embed"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/customeros/namesherpa/internal/romaji"
)

const (
	MaleNamesFile   = "male_names.toml"
	FemaleNamesFile = "female_names.toml"
	FamilyNamesFile = "family_names.toml"
	StylesFile      = "styles.toml"
)

//go:embed male_names.toml female_names.toml family_names.toml styles.toml
var tablesFS embed.FS

var (
	ErrEmptyTable     = errors.New("table has no entries")
	ErrIncompleteName = errors.New("name entry is missing kanji or romaji")
	ErrInvalidRomaji  = errors.New("romaji must be ASCII letters")
	ErrInvalidKanji   = errors.New("kanji must not contain whitespace")
	ErrEmptyStyle     = errors.New("style has no templates")
	ErrDuplicateStyle = errors.New("duplicate style id")
)

type Entry struct {
	Kanji   string `toml:"kanji"`
	Romaji  string `toml:"romaji"`
	Meaning string `toml:"meaning"`
}

type Style struct {
	ID          string   `toml:"id"`
	Label       string   `toml:"label"`
	Description string   `toml:"description"`
	Templates   []string `toml:"templates"`
}

type Tables struct {
	Male   []Entry
	Female []Entry
	Family []Entry
	Styles []Style
}

type nameFile struct {
	Names []Entry `toml:"names"`
}

type styleFile struct {
	Styles []Style `toml:"styles"`
}

// Load decodes the tables compiled into the binary.
func Load() (*Tables, error) {
	return LoadFS(tablesFS)
}

// LoadDir decodes tables from dir. File names match the embedded ones.
func LoadDir(dir string) (*Tables, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrapf(err, "tables directory %s", dir)
	}
	return LoadFS(os.DirFS(dir))
}

func LoadFS(fsys fs.FS) (*Tables, error) {
	male, err := loadNames(fsys, MaleNamesFile)
	if err != nil {
		return nil, err
	}
	female, err := loadNames(fsys, FemaleNamesFile)
	if err != nil {
		return nil, err
	}
	family, err := loadNames(fsys, FamilyNamesFile)
	if err != nil {
		return nil, err
	}
	styles, err := loadStyles(fsys)
	if err != nil {
		return nil, err
	}

	return &Tables{
		Male:   male,
		Female: female,
		Family: family,
		Styles: styles,
	}, nil
}

func loadNames(fsys fs.FS, file string) ([]Entry, error) {
	var names nameFile
	if err := decode(fsys, file, &names); err != nil {
		return nil, err
	}
	if len(names.Names) == 0 {
		return nil, errors.Wrap(ErrEmptyTable, file)
	}

	entries := make([]Entry, 0, len(names.Names))
	for i, n := range names.Names {
		// romaji keeps the casing it was written with
		entry := Entry{
			Kanji:   norm.NFC.String(strings.TrimSpace(n.Kanji)),
			Romaji:  romaji.ToASCII(n.Romaji),
			Meaning: strings.TrimSpace(n.Meaning),
		}
		if entry.Kanji == "" || entry.Romaji == "" {
			return nil, errors.Wrapf(ErrIncompleteName, "%s entry %d", file, i)
		}
		// a single space separates family and given name in composed output
		if strings.IndexFunc(entry.Kanji, unicode.IsSpace) >= 0 {
			return nil, errors.Wrapf(ErrInvalidKanji, "%s entry %d: %q", file, i, n.Kanji)
		}
		if !romaji.IsValid(entry.Romaji) {
			return nil, errors.Wrapf(ErrInvalidRomaji, "%s entry %d: %q", file, i, n.Romaji)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func loadStyles(fsys fs.FS) ([]Style, error) {
	var styles styleFile
	if err := decode(fsys, StylesFile, &styles); err != nil {
		return nil, err
	}
	if len(styles.Styles) == 0 {
		return nil, errors.Wrap(ErrEmptyTable, StylesFile)
	}

	folder := cases.Fold()
	seen := make(map[string]bool, len(styles.Styles))
	result := make([]Style, 0, len(styles.Styles))
	for _, s := range styles.Styles {
		id := folder.String(strings.TrimSpace(s.ID))
		if seen[id] {
			return nil, errors.Wrapf(ErrDuplicateStyle, "%s: %q", StylesFile, id)
		}
		seen[id] = true

		templates := make([]string, 0, len(s.Templates))
		for _, t := range s.Templates {
			if t = strings.TrimSpace(t); t != "" {
				templates = append(templates, t)
			}
		}
		if len(templates) == 0 {
			return nil, errors.Wrapf(ErrEmptyStyle, "%s: %q", StylesFile, id)
		}

		result = append(result, Style{
			ID:          id,
			Label:       strings.TrimSpace(s.Label),
			Description: strings.TrimSpace(s.Description),
			Templates:   templates,
		})
	}
	return result, nil
}

func decode(fsys fs.FS, file string, v interface{}) error {
	fileData, err := fs.ReadFile(fsys, file)
	if err != nil {
		return errors.Wrapf(err, "read %s", file)
	}

	if _, err := toml.Decode(string(fileData), v); err != nil {
		return errors.Wrapf(err, "failed to decode TOML %s", file)
	}
	return nil
}
