package rug

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CharacterSet is the five-glyph vocabulary that skins a style rule.
type CharacterSet struct {
	Border      string `json:"border"`
	InnerBorder string `json:"innerBorder"`
	Field       string `json:"field"`
	Medallion   string `json:"medallion"`
	Accent      string `json:"accent"`
}

// DefaultCharacterSet is used whenever no AI-sourced set is available.
func DefaultCharacterSet() CharacterSet {
	return CharacterSet{
		Border:      "█",
		InnerBorder: "╬",
		Field:       "·",
		Medallion:   "❂",
		Accent:      "✧",
	}
}

// Validate checks that every glyph is present.
func (c CharacterSet) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"border", c.Border},
		{"innerBorder", c.InnerBorder},
		{"field", c.Field},
		{"medallion", c.Medallion},
		{"accent", c.Accent},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidCharacterSet, f.name)
		}
	}
	return nil
}

// Normalize trims every glyph down to its first rune so each cell stays one
// character wide. Blank glyphs are taken from the default set.
func (c CharacterSet) Normalize() CharacterSet {
	def := DefaultCharacterSet()
	return CharacterSet{
		Border:      firstRune(c.Border, def.Border),
		InnerBorder: firstRune(c.InnerBorder, def.InnerBorder),
		Field:       firstRune(c.Field, def.Field),
		Medallion:   firstRune(c.Medallion, def.Medallion),
		Accent:      firstRune(c.Accent, def.Accent),
	}
}

func firstRune(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return fallback
	}
	return string(r)
}
