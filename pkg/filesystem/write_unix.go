//go:build !windows

package filesystem

import (
	"io/fs"

	"github.com/google/renameio/v2"
)

// writeFileAtomic writes to a temp file next to name, fsyncs it and renames
// it over name, so readers see either the old or the new content.
func writeFileAtomic(name string, data []byte, perm fs.FileMode) error {
	return renameio.WriteFile(name, data, perm)
}
