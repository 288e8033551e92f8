package main

import (
	"fmt"
	"strings"
)

// defaultPromptTemplate is the base request text. Overridable through the
// prompt_template config key; generatePrompt takes it as an argument so the
// composer itself stays free of global state.
const defaultPromptTemplate = `Please suggest clean names for the following items. Answer with a code block containing one "old: new" line per item, where the old names are the keys and the new names are the values:
`

// generatePrompt renders entries as quoted bullet lines under basePrompt and
// appends customInstructions when non-empty. Pure; touches no filesystem.
func generatePrompt(entries []DirectoryEntry, customInstructions, basePrompt string) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("- '%s'", e.RelPath)
	}

	text := basePrompt + "\n" + strings.Join(lines, "\n")
	if customInstructions != "" {
		text += "\n\n" + customInstructions
	}
	return text
}
