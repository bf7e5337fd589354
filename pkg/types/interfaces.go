package types

import "io/fs"

// FS is the subset of filesystem operations the commands need
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the whole file. Implementations backed by a real
	// disk should make the replacement atomic.
	WriteFile(name string, data []byte, perm fs.FileMode) error
}
