// Package ui contains terminal presentation helpers shared by the
// taskboard commands: aligned tables, ID highlighting, and compact
// relative-time formatting.
package ui

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/TechieBelle/taskboard/internal/ids"
)

const (
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// HighlightID returns an ID with its unique prefix highlighted.
func HighlightID(id string, prefixLen int) string {
	if id == "" {
		return id
	}

	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}

	if !ansiEnabled() {
		return id
	}

	prefix := id[:prefixLen]
	suffix := id[prefixLen:]
	return ansiBold + ansiCyan + prefix + ansiReset + suffix
}

// HighlightUniquePrefix highlights the shortest prefix of id that is
// unique among all the given IDs.
func HighlightUniquePrefix(id string, all []string) string {
	return HighlightID(id, PrefixLength(ids.UniquePrefixLengths(all), id))
}

// PrefixLength looks up the unique prefix length for an ID, tolerating
// nil maps and mixed case.
func PrefixLength(lengths map[string]int, id string) int {
	if len(lengths) == 0 || id == "" {
		return 0
	}
	return lengths[strings.ToLower(id)]
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
