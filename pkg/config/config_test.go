// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir), environment
// PURPOSE: Test configuration layering, file formats and validation

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/leveldbpatch/pkg/errors"
	"github.com/arthur-debert/leveldbpatch/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_DefaultsMatchDefault(t *testing.T) {
	cfg, err := Load(LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".leveldb-patch.toml", `
[snappy]
source_dir = "/src/snappy"
binary_dir = "/build/snappy"

[cmake]
platform = "windows"
`)

	cfg, err := Load(LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "/src/snappy", cfg.Snappy.SourceDir)
	assert.Equal(t, "/build/snappy", cfg.Snappy.BinaryDir)
	assert.Equal(t, "windows", cfg.CMake.Platform)
	assert.Equal(t, "CMakeLists.txt", cfg.CMake.File, "unset keys keep their defaults")
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "patch.yml", `
snappy:
  source_dir: /src/snappy
  binary_dir: /build/snappy
output:
  format: YAML
  diff: true
`)

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "/src/snappy", cfg.Snappy.SourceDir)
	assert.Equal(t, FormatYAML, cfg.Output.Format, "format is normalized to lower case")
	assert.True(t, cfg.Output.Diff)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".leveldb-patch.toml", `
[snappy]
source_dir = "/from/file"
binary_dir = "/from/file/bin"
`)
	t.Setenv("LEVELDB_PATCH_SNAPPY_SOURCE_DIR", "/from/env")
	t.Setenv("LEVELDB_PATCH_OUTPUT_NO_COLOR", "true")

	cfg, err := Load(LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Snappy.SourceDir, "env beats file")
	assert.Equal(t, "/from/file/bin", cfg.Snappy.BinaryDir)
	assert.True(t, cfg.Output.NoColor)

	cfg, err = Load(LoadOptions{WorkDir: dir, Overrides: map[string]interface{}{
		"snappy.source_dir": "/from/flag",
	}})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Snappy.SourceDir, "flags beat env")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit_file_missing", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".leveldb-patch.toml", "[snappy\nsource_dir = ")
		_, err := Load(LoadOptions{WorkDir: dir})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "snappy.source_dir", envKey("LEVELDB_PATCH_SNAPPY_SOURCE_DIR"))
	assert.Equal(t, "cmake.file", envKey("LEVELDB_PATCH_CMAKE_FILE"))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Snappy.SourceDir = "/src"
		cfg.Snappy.BinaryDir = "/bin"
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing_source_dir", func(c *Config) { c.Snappy.SourceDir = "" }},
		{"blank_binary_dir", func(c *Config) { c.Snappy.BinaryDir = "  " }},
		{"empty_file", func(c *Config) { c.CMake.File = "" }},
		{"bad_platform", func(c *Config) { c.CMake.Platform = "beos" }},
		{"bad_encoding", func(c *Config) { c.CMake.Encoding = "klingon" }},
		{"bad_format", func(c *Config) { c.Output.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
		})
	}
}

func TestConfigPlatform(t *testing.T) {
	cfg := Default()
	assert.Equal(t, types.HostPlatform(), cfg.Platform(), "auto follows the host")

	cfg.CMake.Platform = "windows"
	assert.Equal(t, types.PlatformWindows, cfg.Platform())

	cfg.CMake.Platform = "other"
	assert.Equal(t, types.PlatformOther, cfg.Platform())
}
