package testutil

import (
	"io/fs"
	"testing"

	"github.com/arthur-debert/leveldbpatch/pkg/filesystem"
	"github.com/arthur-debert/leveldbpatch/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// MemFS is an in-memory filesystem usable both as types.FS and as afero.Fs
type MemFS struct {
	types.FS
	Afero afero.Fs
}

// NewMemFS creates an in-memory filesystem holding files (path -> content)
func NewMemFS(t *testing.T, files map[string]string) *MemFS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644), "seeding %s", path)
	}
	return &MemFS{FS: filesystem.NewAferoFS(mem), Afero: mem}
}

// Content returns a file's content, failing the test if it is unreadable
func (m *MemFS) Content(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(m.Afero, path)
	require.NoError(t, err)
	return string(data)
}

// FaultyFS wraps a types.FS and returns the configured errors instead of
// calling through. It counts writes that reached the wrapped FS.
type FaultyFS struct {
	types.FS
	StatErr  error
	ReadErr  error
	WriteErr error
	Writes   int
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if f.StatErr != nil {
		return nil, f.StatErr
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.Writes++
	return f.FS.WriteFile(name, data, perm)
}
