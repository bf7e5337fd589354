// Package output renders command results for the terminal or for machines.
//
// Three formats are supported: text (styled with lipgloss when the writer
// is a color-capable terminal), yaml and json. Color is disabled by the
// --no-color flag, by the NO_COLOR environment variable, or when the
// writer is not a terminal.
package output
