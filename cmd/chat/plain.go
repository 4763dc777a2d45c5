package main

import (
	"html"
	"regexp"
	"strings"
)

var (
	breakTag   = regexp.MustCompile(`\s*<br\s*/?>\s*`)
	listItem   = regexp.MustCompile(`\s*<li>\s*`)
	anyTag     = regexp.MustCompile(`<[^>]+>`)
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// plainText renders reply markup for a terminal.
func plainText(reply string) string {
	s := breakTag.ReplaceAllString(reply, "\n")
	s = listItem.ReplaceAllString(s, "\n  - ")
	s = anyTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		indent := ""
		if strings.HasPrefix(line, "  - ") {
			indent = "  "
		}
		lines[i] = indent + strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
