package main

import (
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// runInteractiveSelector narrows the enumerated entries down to a
// user-selected subset through a fuzzy finder. Returns nil entries and nil
// error when the user aborts (Esc / Ctrl+C), which callers treat as a
// graceful exit.
func runInteractiveSelector(entries []DirectoryEntry) ([]DirectoryEntry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries to select from")
	}

	idx, err := fuzzyfinder.FindMulti(
		entries,
		func(i int) string {
			return entries[i].RelPath
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the entries to include in the prompt. Press Tab to multi-select, Enter to confirm."
			}
			e := entries[i]
			return fmt.Sprintf("Path: %s\nType: %s\nDepth: %d", e.RelPath, e.Kind, pathDepth(e.RelPath))
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			fmt.Println("Interactive selection aborted.")
			return nil, nil
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	selected := make([]DirectoryEntry, len(idx))
	for i, n := range idx {
		selected[i] = entries[n]
	}
	return selected, nil
}
