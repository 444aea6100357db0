package llm

const (
	themeSchemaName        = "rug_theme"
	themeSchemaDescription = "Name, poetic description and five-glyph character set for an ASCII rug"
)

// themeGlyphFields are the character-set keys every theme must carry
var themeGlyphFields = []string{"border", "innerBorder", "field", "medallion", "accent"}

// GetRugThemeSchema returns the JSON schema for an AI-sourced rug theme
// Note: OpenAI strict mode requires additionalProperties: false and every property in 'required'
func GetRugThemeSchema() map[string]any {
	glyphs := map[string]any{}
	for _, field := range themeGlyphFields {
		glyphs[field] = map[string]any{"type": "string"}
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":        map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"characters": map[string]any{
				"type":                 "object",
				"properties":           glyphs,
				"required":             append([]string(nil), themeGlyphFields...),
				"additionalProperties": false,
			},
		},
		"required":             []string{"name", "description", "characters"},
		"additionalProperties": false,
	}
}

// RugThemeOutputSchema wraps the theme schema for a GenerationRequest
func RugThemeOutputSchema() *OutputSchema {
	return &OutputSchema{
		Name:        themeSchemaName,
		Description: themeSchemaDescription,
		Schema:      GetRugThemeSchema(),
	}
}
