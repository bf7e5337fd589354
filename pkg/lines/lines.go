// Package lines converts file text to and from the line records the
// patcher works on.
package lines

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/leveldbpatch/pkg/types"
)

// Split breaks text into lines, each keeping its own terminator. "\r\n",
// "\n" and a lone "\r" all end a line. A final line without a terminator is
// kept as is; text ending in a terminator does not produce a trailing empty
// line.
func Split(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			fallthrough
		case '\n':
			out = append(out, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// Terminator returns the line break used by the first terminated line, or
// "\n" when no line has one.
func Terminator(lines []string) string {
	for _, l := range lines {
		switch {
		case strings.HasSuffix(l, "\r\n"):
			return "\r\n"
		case strings.HasSuffix(l, "\n"):
			return "\n"
		case strings.HasSuffix(l, "\r"):
			return "\r"
		}
	}
	return "\n"
}

// Join is the inverse of Split
func Join(lines []string) string {
	return strings.Join(lines, "")
}

// Parse decomposes one raw line
func Parse(full string) types.Line {
	trimmed := strings.TrimRightFunc(full, unicode.IsSpace)
	content := strings.TrimLeftFunc(trimmed, unicode.IsSpace)
	return types.Line{
		Full:    full,
		Indent:  trimmed[:len(trimmed)-len(content)],
		Content: content,
		EOL:     full[len(trimmed):],
	}
}
