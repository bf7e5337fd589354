//go:build windows

package filesystem

import (
	"io/fs"
	"os"
)

// renameio does not support Windows, where rename over an open file fails.
func writeFileAtomic(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}
