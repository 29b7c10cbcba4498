package namegen

type stubRand struct {
	values []int
	calls  []int
}

func (s *stubRand) Intn(n int) int {
	s.calls = append(s.calls, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func testTables() *Tables {
	return &Tables{
		Male: []NameEntry{
			{Kanji: "健太", Romaji: "Kenta", Meaning: "healthy and stout"},
			{Kanji: "剛", Romaji: "Tsuyoshi", Meaning: "strong and sturdy"},
		},
		Female: []NameEntry{
			{Kanji: "雪", Romaji: "Yuki", Meaning: "snow"},
			{Kanji: "静香", Romaji: "Shizuka", Meaning: "quiet fragrance"},
		},
		Family: []NameEntry{
			{Kanji: "佐藤", Romaji: "Sato", Meaning: "assisting wisteria"},
			{Kanji: "鈴木", Romaji: "Suzuki", Meaning: "bell tree"},
		},
		Styles: []Style{
			{ID: "cute", Label: "Cute & Adorable", Templates: []string{
				"As delightful as morning dew",
				"Gentle and charming like cherry blossoms",
			}},
			{ID: "unique", Label: "Unique & Special", Templates: []string{
				"Special as the first snow",
				"Rare as precious gems",
			}},
		},
	}
}
