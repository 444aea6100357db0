package prompt

import (
	"fmt"
	"strings"
)

// styleSuffix is appended to the style name before it goes into the template
const styleSuffix = " - highly detailed and unique"

// Builder builds prompts for the theme resolver
type Builder struct {
	loader *Loader
}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder() *Builder {
	return &Builder{loader: NewPromptLoader()}
}

// BuildSystemPrompt returns the system instructions sent with every theme request
func (b *Builder) BuildSystemPrompt() (string, error) {
	return b.loader.GetThemeSystemPrompt()
}

// BuildThemePrompt renders the user prompt for a style name
func (b *Builder) BuildThemePrompt(styleName string) (string, error) {
	styleName = strings.TrimSpace(styleName)
	if styleName == "" {
		return "", fmt.Errorf("style name is required")
	}

	template, err := b.loader.GetThemePromptTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to load theme prompt: %w", err)
	}
	if strings.Count(template, "%s") != 1 {
		return "", fmt.Errorf("theme prompt template must contain exactly one %%s")
	}

	return fmt.Sprintf(template, styleName+styleSuffix), nil
}
