package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	git "github.com/go-git/go-git/v5"
)

// applyRenames executes mapping against root and returns the per-pair report.
// Pairs are processed in descending depth of the original path so that entries
// inside a directory are moved before the directory itself is renamed; ties
// break lexicographically on the original path to keep runs deterministic.
// One pair's failure never aborts the batch.
func applyRenames(root string, mapping RenameMapping) Report {
	ordered := make([]RenamePair, len(mapping.Pairs()))
	copy(ordered, mapping.Pairs())
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := pathDepth(ordered[i].Original), pathDepth(ordered[j].Original)
		if di != dj {
			return di > dj
		}
		return ordered[i].Original < ordered[j].Original
	})

	report := Report{Outcomes: make([]RenameOutcome, 0, len(ordered))}
	for _, pair := range ordered {
		outcome := renameItem(root, pair)
		report.add(outcome)
		printOutcome(outcome)
	}
	return report
}

// renameItem moves one entry, never overwriting an existing target. A
// directory target that already exists is skipped, not merged.
func renameItem(root string, pair RenamePair) RenameOutcome {
	outcome := RenameOutcome{Original: pair.Original, New: pair.New}

	oldPath := filepath.Join(root, filepath.FromSlash(pair.Original))
	newPath := filepath.Join(root, filepath.FromSlash(pair.New))

	if oldPath == newPath {
		outcome.Status = StatusSkippedIdentical
		return outcome
	}
	if _, err := os.Lstat(oldPath); err != nil {
		outcome.Status = StatusSkippedMissingSource
		return outcome
	}
	if _, err := os.Lstat(newPath); err == nil {
		outcome.Status = StatusSkippedTargetExists
		return outcome
	}

	if err := os.MkdirAll(filepath.Dir(newPath), 0755); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}

	outcome.Status = StatusRenamed
	return outcome
}

// warnIfGitWorkTree tells the user when root sits inside a git work tree,
// since plain renames bypass git mv and show up as delete+add. Advisory only.
func warnIfGitWorkTree(root string) {
	_, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Warning: directory is inside a git work tree; renames are applied directly and will not be staged. Consider git mv for tracked files.")
}
