package types

import "strings"

// Line is one raw line of a build-configuration file split into its parts.
//
// Indent+Content reproduces the line without its trailing whitespace, and EOL
// holds that trailing whitespace including the newline (empty for a final
// line without one). Interior whitespace is kept inside Content.
type Line struct {
	Full    string
	Indent  string
	Content string
	EOL     string
}

// With returns a line that keeps l's indentation and terminator around content.
func (l Line) With(content string) string {
	return l.Indent + content + l.EOL
}

// Terminated reports whether l ends in a line break
func (l Line) Terminated() bool {
	return strings.HasSuffix(l.EOL, "\n") || strings.HasSuffix(l.EOL, "\r")
}

// WithBreak is With for a line that must be followed by another one. When l
// is an unterminated final line, eol is used as the terminator.
func (l Line) WithBreak(content, eol string) string {
	if l.Terminated() {
		return l.With(content)
	}
	return l.Indent + content + eol
}
