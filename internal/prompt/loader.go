package prompt

import (
	"strings"

	"github.com/Conceptual-Machines/rug-loom/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetThemeSystemPrompt loads the weaver system prompt
func (l *Loader) GetThemeSystemPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.ThemeSystemPromptTxt)), nil
}

// GetThemePromptTemplate loads the user prompt template; it carries one %s for the style
func (l *Loader) GetThemePromptTemplate() (string, error) {
	return strings.TrimSpace(string(embedded.ThemePromptTxt)), nil
}
