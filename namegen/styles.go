package namegen

import (
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
)

// Styles returns a copy of the catalog in its declared order.
func (c *Composer) Styles() []Style {
	styles := make([]Style, 0, len(c.tables.Styles))
	for _, s := range c.tables.Styles {
		styles = append(styles, cloneStyle(s))
	}
	return styles
}

func (c *Composer) LookupStyle(id string) (Style, bool) {
	s, ok := c.lookupStyle(id)
	if !ok {
		return Style{}, false
	}
	return cloneStyle(s), true
}

// ResolveStyle returns the catalog id that composition uses for id: its
// normalized form when known, the default style otherwise.
func (c *Composer) ResolveStyle(id string) string {
	if s, ok := c.lookupStyle(id); ok && len(s.Templates) > 0 {
		return s.ID
	}
	return c.defaultStyle
}

// TemplatesFor returns the template sentences for id, or those of the default
// style when id is empty or unknown.
func (c *Composer) TemplatesFor(id string) []string {
	return slices.Clone(c.templatesFor(id))
}

func (c *Composer) templatesFor(id string) []string {
	s, _ := c.lookupStyle(c.ResolveStyle(id))
	return s.Templates
}

func (c *Composer) lookupStyle(id string) (Style, bool) {
	id = normalizeStyle(id)
	i := slices.IndexFunc(c.tables.Styles, func(s Style) bool { return s.ID == id })
	if i < 0 {
		return Style{}, false
	}
	return c.tables.Styles[i], true
}

func cloneStyle(s Style) Style {
	s.Templates = slices.Clone(s.Templates)
	return s
}

// normalizeStyle case-folds ids so "Cute" and "CUTE" select "cute".
func normalizeStyle(id string) string {
	return cases.Fold().String(strings.TrimSpace(id))
}
