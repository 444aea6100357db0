// Package theme resolves a rug style description into a named theme with its
// own character set, asking an LLM and falling back to a fixed theme.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/rug-loom/internal/rug"
)

// Source says where a theme came from
type Source string

const (
	SourceAI       Source = "ai"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
	// SourceDefault and SourceCustom mark themes that never went to a model
	SourceDefault Source = "default"
	SourceCustom  Source = "custom"
)

const (
	fallbackName        = "The Grand Shiraz"
	fallbackDescription = "A masterwork of nested patterns and mythic motifs, woven in code."
)

// ErrInvalidTheme is returned when a model answer cannot be used
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is a named character set with a short poetic description
type Theme struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Characters  rug.CharacterSet `json:"characters"`
	Source      Source           `json:"source"`
}

// FallbackTheme is served whenever the model cannot be reached or answers badly
func FallbackTheme() Theme {
	return Theme{
		Name:        fallbackName,
		Description: fallbackDescription,
		Characters:  rug.DefaultCharacterSet(),
		Source:      SourceFallback,
	}
}

// DefaultTheme is the fallback theme labelled as a deliberate choice
func DefaultTheme() Theme {
	t := FallbackTheme()
	t.Source = SourceDefault
	return t
}

// CustomTheme wraps caller-supplied glyphs
func CustomTheme(chars rug.CharacterSet) Theme {
	return Theme{
		Name:        "Custom Weave",
		Description: "Hand-picked glyphs on the loom.",
		Characters:  chars.Normalize(),
		Source:      SourceCustom,
	}
}

// ParseTheme decodes a model answer, validates it and normalises every glyph to one rune
func ParseTheme(raw string) (Theme, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Theme{}, fmt.Errorf("%w: empty response", ErrInvalidTheme)
	}

	var t Theme
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}

	t.Name = strings.TrimSpace(t.Name)
	t.Description = strings.TrimSpace(t.Description)
	if t.Name == "" {
		return Theme{}, fmt.Errorf("%w: name is empty", ErrInvalidTheme)
	}
	if err := t.Characters.Validate(); err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}

	t.Characters = t.Characters.Normalize()
	t.Source = SourceAI
	return t, nil
}

// NormalizeKey folds a style description into a cache key
func NormalizeKey(style string) string {
	return strings.ToLower(strings.Join(strings.Fields(style), " "))
}
