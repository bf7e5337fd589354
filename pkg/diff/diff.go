// Package diff renders the difference between the original and the patched
// build file.
package diff

import (
	"strings"

	"github.com/arthur-debert/leveldbpatch/pkg/lines"
	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff of before and after with three lines of
// context, labelled a/<name> and b/<name>. It is empty when nothing changed.
func Unified(name, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        markMissingNewline(lines.Split(before)),
		B:        markMissingNewline(lines.Split(after)),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
}

const noNewlineMarker = "\\ No newline at end of file\n"

// markMissingNewline ends an unterminated last line with the marker line
// diff(1) prints, so the next diff line does not run into it.
func markMissingNewline(ls []string) []string {
	if len(ls) == 0 {
		return ls
	}
	last := ls[len(ls)-1]
	if strings.HasSuffix(last, "\n") || strings.HasSuffix(last, "\r") {
		return ls
	}
	marked := append([]string(nil), ls...)
	marked[len(marked)-1] = last + "\n" + noNewlineMarker
	return marked
}
