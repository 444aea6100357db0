package embedded

import (
	_ "embed"
)

// Embed the theme prompt files
//
//go:embed data/prompts/theme_prompt.txt
var ThemePromptTxt []byte

//go:embed data/prompts/theme_system_prompt.txt
var ThemeSystemPromptTxt []byte
