// pkg/commands/patch/patch_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test the read, patch, write orchestration of the patch command

package patch_test

import (
	stderrors "errors"
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/leveldbpatch/pkg/commands/patch"
	"github.com/arthur-debert/leveldbpatch/pkg/errors"
	"github.com/arthur-debert/leveldbpatch/pkg/testutil"
	"github.com/arthur-debert/leveldbpatch/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(fsys types.FS) patch.Options {
	return patch.Options{
		FileSystem: fsys,
		File:       "CMakeLists.txt",
		Encoding:   "utf-8",
		SourceDir:  "/snappy/src",
		BinaryDir:  "/snappy/bin",
		Platform:   types.PlatformOther,
	}
}

func TestRun_PatchesFileInPlace(t *testing.T) {
	mem := testutil.NewMemFS(t, map[string]string{"CMakeLists.txt": testutil.LevelDBCMakeLists})

	result, err := patch.Run(options(mem))
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.True(t, result.Report.Changed)
	assert.Equal(t, "UTF-8", result.Encoding)
	assert.Equal(t, testutil.LevelDBCMakeListsPatched, mem.Content(t, "CMakeLists.txt"))
}

func TestRun_SecondRunDoesNotRewrite(t *testing.T) {
	mem := testutil.NewMemFS(t, map[string]string{"CMakeLists.txt": testutil.LevelDBCMakeLists})
	_, err := patch.Run(options(mem))
	require.NoError(t, err)

	faulty := &testutil.FaultyFS{FS: mem}
	result, err := patch.Run(options(faulty))
	require.NoError(t, err)

	assert.False(t, result.Written)
	assert.False(t, result.Report.Changed)
	assert.Equal(t, 1, result.Report.PathsPresent)
	assert.Zero(t, faulty.Writes)
	assert.Equal(t, testutil.LevelDBCMakeListsPatched, mem.Content(t, "CMakeLists.txt"))
}

func TestRun_DryRunWithDiff(t *testing.T) {
	mem := testutil.NewMemFS(t, map[string]string{"CMakeLists.txt": testutil.LevelDBCMakeLists})
	opts := options(mem)
	opts.DryRun = true
	opts.Diff = true

	result, err := patch.Run(opts)
	require.NoError(t, err)

	assert.False(t, result.Written)
	assert.True(t, result.DryRun)
	assert.True(t, strings.HasPrefix(result.Diff, "--- a/CMakeLists.txt\n+++ b/CMakeLists.txt\n"))
	assert.Contains(t, result.Diff, "+set(HAVE_SNAPPY ON CACHE BOOL \"\")\n")
	assert.Contains(t, result.Diff, "+  target_link_libraries(leveldb /snappy/bin/libsnappy.a)\n")
	assert.Equal(t, testutil.LevelDBCMakeLists, mem.Content(t, "CMakeLists.txt"), "dry run must not write")
}

func TestRun_WindowsLinkLine(t *testing.T) {
	mem := testutil.NewMemFS(t, map[string]string{"CMakeLists.txt": "target_link_libraries(leveldb snappy)\n"})
	opts := options(mem)
	opts.Platform = types.PlatformWindows

	result, err := patch.Run(opts)
	require.NoError(t, err)

	assert.Equal(t, types.PlatformWindows, result.Platform)
	assert.Equal(t,
		"# target_link_libraries(leveldb snappy)\ntarget_link_libraries(leveldb /snappy/bin/$<CONFIG>/snappy.lib)\n",
		mem.Content(t, "CMakeLists.txt"))
}

func TestRun_LinkLineAtEndOfFileWithoutNewline(t *testing.T) {
	mem := testutil.NewMemFS(t, map[string]string{
		"CMakeLists.txt": "if(HAVE_SNAPPY)\n  target_link_libraries(leveldb snappy)",
	})
	opts := options(mem)
	opts.Diff = true

	result, err := patch.Run(opts)
	require.NoError(t, err)

	assert.Equal(t,
		"if(HAVE_SNAPPY)\n  # target_link_libraries(leveldb snappy)\n  target_link_libraries(leveldb /snappy/bin/libsnappy.a)",
		mem.Content(t, "CMakeLists.txt"))
	assert.Contains(t, result.Diff, "+  # target_link_libraries(leveldb snappy)\n+  target_link_libraries(leveldb /snappy/bin/libsnappy.a)\n\\ No newline at end of file\n")
}

func TestRun_Latin1File(t *testing.T) {
	mem := testutil.NewMemFS(t, map[string]string{
		"CMakeLists.txt": "# Copyright Andr\xe9\ntarget_link_libraries(leveldb snappy)\n",
	})
	opts := options(mem)
	opts.Encoding = "ISO-8859-1"

	_, err := patch.Run(opts)
	require.NoError(t, err)

	assert.Equal(t,
		"# Copyright Andr\xe9\n# target_link_libraries(leveldb snappy)\ntarget_link_libraries(leveldb /snappy/bin/libsnappy.a)\n",
		mem.Content(t, "CMakeLists.txt"))
}

func TestRun_Errors(t *testing.T) {
	t.Run("file_not_found", func(t *testing.T) {
		mem := testutil.NewMemFS(t, nil)
		_, err := patch.Run(options(mem))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound), "got %v", err)
	})

	t.Run("stat_denied", func(t *testing.T) {
		mem := testutil.NewMemFS(t, map[string]string{"CMakeLists.txt": "project(leveldb)\n"})
		_, err := patch.Run(options(&testutil.FaultyFS{FS: mem, StatErr: os.ErrPermission}))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess), "got %v", err)
	})

	t.Run("read_failure", func(t *testing.T) {
		mem := testutil.NewMemFS(t, map[string]string{"CMakeLists.txt": "project(leveldb)\n"})
		_, err := patch.Run(options(&testutil.FaultyFS{FS: mem, ReadErr: stderrors.New("EIO")}))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead), "got %v", err)
	})

	t.Run("invalid_utf8", func(t *testing.T) {
		mem := testutil.NewMemFS(t, map[string]string{"CMakeLists.txt": "# \xff\n"})
		_, err := patch.Run(options(mem))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding), "got %v", err)
	})

	t.Run("truncated_include_leaves_file_untouched", func(t *testing.T) {
		original := "project(leveldb)\ntarget_include_directories(leveldb\n"
		mem := testutil.NewMemFS(t, map[string]string{"CMakeLists.txt": original})
		faulty := &testutil.FaultyFS{FS: mem}

		_, err := patch.Run(options(faulty))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMissingLines), "got %v", err)
		assert.Equal(t, "CMakeLists.txt", errors.GetErrorDetails(err)["path"])
		assert.Equal(t, 2, errors.GetErrorDetails(err)["line"])
		assert.Zero(t, faulty.Writes)
		assert.Equal(t, original, mem.Content(t, "CMakeLists.txt"))
	})

	t.Run("write_failure", func(t *testing.T) {
		mem := testutil.NewMemFS(t, map[string]string{"CMakeLists.txt": testutil.LevelDBCMakeLists})
		_, err := patch.Run(options(&testutil.FaultyFS{FS: mem, WriteErr: os.ErrPermission}))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite), "got %v", err)
		assert.ErrorIs(t, err, os.ErrPermission)
	})
}
