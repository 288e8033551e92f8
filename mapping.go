package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyMapping is returned when a rename is invoked with no pairs.
var ErrEmptyMapping = errors.New("no renaming map provided")

// RenameMapping is an ordered collection of rename pairs, unique on the
// original path. Construct it through NewRenameMapping or ParseMapping so the
// executor never sees an empty or ambiguous batch.
type RenameMapping struct {
	pairs []RenamePair
}

// NewRenameMapping validates pairs and wraps them in a RenameMapping.
func NewRenameMapping(pairs []RenamePair) (RenameMapping, error) {
	if len(pairs) == 0 {
		return RenameMapping{}, ErrEmptyMapping
	}
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if p.Original == "" || p.New == "" {
			return RenameMapping{}, fmt.Errorf("mapping contains an empty path (%q -> %q)", p.Original, p.New)
		}
		if _, dup := seen[p.Original]; dup {
			return RenameMapping{}, fmt.Errorf("duplicate original path in mapping: %s", p.Original)
		}
		seen[p.Original] = struct{}{}
	}
	m := RenameMapping{pairs: make([]RenamePair, len(pairs))}
	copy(m.pairs, pairs)
	return m, nil
}

// Pairs returns the pairs in the order they were supplied.
func (m RenameMapping) Pairs() []RenamePair {
	return m.pairs
}

// Len returns the number of pairs.
func (m RenameMapping) Len() int {
	return len(m.pairs)
}

// ValidateAgainst checks that every original path currently exists under root.
// Off the default path: the executor already skips missing sources per item.
func (m RenameMapping) ValidateAgainst(root string) error {
	for _, p := range m.pairs {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(p.Original))); err != nil {
			return fmt.Errorf("original path not found under %s: %s", root, p.Original)
		}
	}
	return nil
}

// ParseMapping reads a YAML (or JSON, which yaml.v3 also accepts) document of
// "old: new" pairs, preserving document order. A surrounding Markdown code
// fence is stripped first, since assistants usually answer inside one.
func ParseMapping(data []byte) (RenameMapping, error) {
	text := stripCodeFence(string(data))

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return RenameMapping{}, fmt.Errorf("invalid mapping: %w", err)
	}
	if len(doc.Content) == 0 {
		return RenameMapping{}, ErrEmptyMapping
	}
	mapNode := doc.Content[0]
	if mapNode.Kind != yaml.MappingNode {
		return RenameMapping{}, errors.New("mapping must be a document of 'old: new' pairs")
	}

	// yaml.Node mapping content alternates key, value.
	pairs := make([]RenamePair, 0, len(mapNode.Content)/2)
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		pairs = append(pairs, RenamePair{
			Original: mapNode.Content[i].Value,
			New:      mapNode.Content[i+1].Value,
		})
	}
	return NewRenameMapping(pairs)
}

// loadMappingSource reads the mapping bytes from a file, or from stdin when
// path is "-".
func loadMappingSource(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading mapping from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading mapping file: %w", err)
	}
	return data, nil
}

// stripCodeFence removes one surrounding ``` fence (with an optional language
// tag on the opening line). Text without a fence passes through unchanged.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return text
	}
	if strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return text
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}
