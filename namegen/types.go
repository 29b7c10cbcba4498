package namegen

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// NameEntry is one row of a name table.
type NameEntry struct {
	Kanji   string `json:"kanji"`
	Romaji  string `json:"romaji"`
	Meaning string `json:"meaning"`
}

type Style struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Templates   []string `json:"templates"`
}

type NameElement struct {
	Part    string `json:"part"`
	Meaning string `json:"meaning"`
}

// GeneratedName is the result of a single composition. Elements lists the
// given name first, then the family name.
type GeneratedName struct {
	Japanese      string        `json:"japanese"`
	Kanji         string        `json:"kanji"`
	Romaji        string        `json:"romaji"`
	Meaning       string        `json:"meaning"`
	Pronunciation string        `json:"pronunciation"`
	Elements      []NameElement `json:"elements"`
}
