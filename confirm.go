package main

import (
	"bufio"
	"io"
	"strings"
)

// confirmRenaming reads a single line and reports whether the operator
// confirmed. Only "y" or "yes" (case-insensitive) count; anything else,
// including empty input or EOF, cancels. No retry loop.
func confirmRenaming(in io.Reader) bool {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
