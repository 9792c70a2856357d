// Package templates normalizes the long descriptions and examples shown in
// command help output.
package templates

import (
	"strings"

	"github.com/MakeNowJust/heredoc"
)

// LongDesc normalizes a command's long description: indentation from the
// source literal is stripped and surrounding whitespace trimmed.
func LongDesc(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(heredoc.Doc(s))
}

// Examples normalizes an examples block, indenting every line two spaces
// the way cobra renders them under the Examples heading.
func Examples(s string) string {
	if s == "" {
		return s
	}
	out := []string{}
	for _, line := range strings.Split(strings.TrimSpace(heredoc.Doc(s)), "\n") {
		if line == "" {
			out = append(out, line)
			continue
		}
		out = append(out, "  "+line)
	}
	return strings.Join(out, "\n")
}
