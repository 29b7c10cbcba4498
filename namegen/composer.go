package namegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/customeros/namesherpa/internal/util"
)

// DefaultStyle is used when a requested style is empty or unknown.
const DefaultStyle = "unique"

var (
	// ErrInvalidGender is returned for any gender other than male or female.
	ErrInvalidGender       = errors.New("invalid gender selection")
	ErrEmptyTable          = errors.New("name table is empty")
	ErrUnknownDefaultStyle = errors.New("default style is not in the style catalog")
)

// Rand is a uniform source over [0, n). *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Option configures a Composer.
type Option func(*Composer)

// WithRand replaces the time-seeded default source. A nil rng is ignored.
func WithRand(rng Rand) Option {
	return func(c *Composer) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithDefaultStyle sets the style whose templates are used when the requested
// style is empty or unknown. An empty id keeps DefaultStyle.
func WithDefaultStyle(id string) Option {
	return func(c *Composer) {
		if id = normalizeStyle(id); id != "" {
			c.defaultStyle = id
		}
	}
}

type Composer struct {
	tables       *Tables
	defaultStyle string
	rng          Rand
}

func NewComposer(tables *Tables, opts ...Option) (*Composer, error) {
	if tables == nil {
		return nil, fmt.Errorf("%w: no tables", ErrEmptyTable)
	}

	c := &Composer{
		tables:       tables,
		defaultStyle: DefaultStyle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = util.NewRNG()
	}

	switch {
	case len(tables.Male) == 0:
		return nil, fmt.Errorf("%w: male given names", ErrEmptyTable)
	case len(tables.Female) == 0:
		return nil, fmt.Errorf("%w: female given names", ErrEmptyTable)
	case len(tables.Family) == 0:
		return nil, fmt.Errorf("%w: family names", ErrEmptyTable)
	}

	def, ok := c.lookupStyle(c.defaultStyle)
	if !ok || len(def.Templates) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefaultStyle, c.defaultStyle)
	}

	return c, nil
}

func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

// Compose draws a given name for gender, a family name and a template for
// style, in that order, and assembles a GeneratedName. Unknown styles fall
// back to the default style.
func (c *Composer) Compose(gender Gender, style string) (GeneratedName, error) {
	g, err := ParseGender(string(gender))
	if err != nil {
		return GeneratedName{}, err
	}

	given := c.draw(c.givenNames(g))
	family := c.draw(c.tables.Family)
	templates := c.templatesFor(style)
	template := templates[c.rng.Intn(len(templates))]

	romaji := joinName(family.Romaji, given.Romaji)
	literal := fmt.Sprintf("%s (given name) combined with %s (family name)", given.Meaning, family.Meaning)

	return GeneratedName{
		Japanese:      romaji,
		Kanji:         joinName(family.Kanji, given.Kanji),
		Romaji:        romaji,
		Meaning:       fmt.Sprintf("%s. %s", template, literal),
		Pronunciation: Pronounce(given.Romaji),
		Elements: []NameElement{
			{Part: given.Kanji, Meaning: given.Meaning},
			{Part: family.Kanji, Meaning: family.Meaning},
		},
	}, nil
}

// GivenNames returns the table a gender draws from. The slice must not be
// modified.
func (c *Composer) GivenNames(gender Gender) ([]NameEntry, error) {
	g, err := ParseGender(string(gender))
	if err != nil {
		return nil, err
	}
	return c.givenNames(g), nil
}

func (c *Composer) FamilyNames() []NameEntry {
	return c.tables.Family
}

func (c *Composer) DefaultStyle() string {
	return c.defaultStyle
}

func (c *Composer) givenNames(g Gender) []NameEntry {
	if g == GenderFemale {
		return c.tables.Female
	}
	return c.tables.Male
}

func (c *Composer) draw(entries []NameEntry) NameEntry {
	return entries[c.rng.Intn(len(entries))]
}

func joinName(family, given string) string {
	return family + " " + given
}
