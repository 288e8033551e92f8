package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// listDirectoryItems walks root and returns every entry whose relative path
// has at most depth segments, filtered by kind. depth == -1 means unbounded.
// The traversal order carries no contract; callers must not depend on it.
func listDirectoryItems(root string, depth int, includeFiles, includeFolders bool) ([]DirectoryEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error accessing directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	var ignoreMatcher gitignore.IgnoreMatcher
	if !noIgnore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not parse .gitignore file %s: %v\n", gitIgnorePath, err)
			} else {
				ignoreMatcher = matcher
			}
		}
	}

	var entries []DirectoryEntry
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error accessing path %s: %v\n", path, err)
			return nil
		}
		if path == root {
			return nil
		}

		isDir := d.IsDir()

		if !showHidden && isHidden(d.Name()) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(root, path)

		// The matcher resolves paths against the .gitignore's own directory,
		// so it gets the full walk path, not the root-relative one.
		if ignoreMatcher != nil && ignoreMatcher.Match(path, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		if depth >= 0 && pathDepth(relPath) > depth {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		if isDir && !includeFolders {
			// Still traverse into it; only the entry itself is filtered.
			return nil
		}
		if !isDir && !includeFiles {
			return nil
		}

		kind := KindFile
		if isDir {
			kind = KindFolder
		}
		entries = append(entries, DirectoryEntry{RelPath: filepath.ToSlash(relPath), Kind: kind})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", root, walkErr)
	}

	return entries, nil
}

// isHidden checks if a base name is hidden (starts with '.').
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}

// pathDepth counts the segments of a slash- or OS-separated relative path.
// "a" is depth 1, "a/b" depth 2. The empty path and "." are depth 0.
func pathDepth(rel string) int {
	rel = filepath.ToSlash(rel)
	if rel == "" || rel == "." {
		return 0
	}
	return strings.Count(strings.Trim(rel, "/"), "/") + 1
}
