package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/customeros/namesherpa/namegen"
)

// Interactive drives a namegen.Session from line commands read from in.
// It returns when in is exhausted or "quit" is read.
func Interactive(in io.Reader, out io.Writer, composer *namegen.Composer) error {
	session := namegen.NewSession(composer)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Commands: gender <male|female>, style <id>, styles, generate, copy, quit")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "gender":
			if len(fields) != 2 {
				fmt.Fprintln(out, "Usage: gender <male|female>")
				continue
			}
			if err := session.SetGender(fields[1]); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintf(out, "Gender: %s\n", session.Gender())
		case "style":
			if len(fields) != 2 {
				fmt.Fprintln(out, "Usage: style <id>")
				continue
			}
			session.SetStyle(fields[1])
			if s, ok := composer.LookupStyle(session.Style()); ok {
				fmt.Fprintf(out, "Style: %s\n", s.Label)
			} else {
				fmt.Fprintf(out, "Unknown style %q, using %s\n", fields[1], composer.DefaultStyle())
			}
		case "styles":
			for _, s := range composer.Styles() {
				fmt.Fprintf(out, "  %-9s %s: %s\n", s.ID, s.Label, s.Description)
			}
		case "generate":
			if !session.CanGenerate() {
				fmt.Fprintln(out, "Choose a gender first: gender <male|female>")
				continue
			}
			name, err := session.Generate()
			if err != nil {
				return err
			}
			printName(out, name)
		case "copy":
			kanji, romaji, ok := session.CopyText()
			if !ok {
				fmt.Fprintln(out, "Nothing generated yet")
				continue
			}
			fmt.Fprintln(out, copyText(kanji, romaji))
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "Unknown command %q\n", fields[0])
		}
	}
}

func printName(out io.Writer, name namegen.GeneratedName) {
	fmt.Fprintln(out, name.Kanji)
	fmt.Fprintln(out, name.Romaji)
	fmt.Fprintf(out, "Pronunciation: %s\n", name.Pronunciation)
	fmt.Fprintf(out, "Meaning: %s\n", name.Meaning)
	if len(name.Elements) > 0 {
		fmt.Fprintln(out, "Name Elements:")
		for _, e := range name.Elements {
			fmt.Fprintf(out, "  %s: %s\n", e.Part, e.Meaning)
		}
	}
}
