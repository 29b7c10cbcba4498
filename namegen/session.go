package namegen

// Session tracks the current selections and the most recently generated
// name. Each Generate replaces the previous result. A Session is not safe for
// concurrent use.
type Session struct {
	composer *Composer
	gender   Gender
	style    string
	last     *GeneratedName
}

func NewSession(composer *Composer) *Session {
	return &Session{composer: composer}
}

// SetGender selects the gender used by Generate. An unsupported value is
// rejected and the previous selection is kept.
func (s *Session) SetGender(gender string) error {
	g, err := ParseGender(gender)
	if err != nil {
		return err
	}
	s.gender = g
	return nil
}

func (s *Session) SetStyle(style string) {
	s.style = normalizeStyle(style)
}

func (s *Session) Gender() Gender {
	return s.gender
}

func (s *Session) Style() string {
	return s.style
}

// CanGenerate reports whether a gender has been chosen.
func (s *Session) CanGenerate() bool {
	return s.gender != ""
}

func (s *Session) Generate() (GeneratedName, error) {
	name, err := s.composer.Compose(s.gender, s.style)
	if err != nil {
		return GeneratedName{}, err
	}
	s.last = &name
	return name, nil
}

func (s *Session) Last() (GeneratedName, bool) {
	if s.last == nil {
		return GeneratedName{}, false
	}
	return *s.last, true
}

// CopyText returns the script form and romanized form of the last name
// verbatim.
func (s *Session) CopyText() (kanji, romaji string, ok bool) {
	if s.last == nil {
		return "", "", false
	}
	return s.last.Kanji, s.last.Romaji, true
}
