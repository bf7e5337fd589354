package config

import (
	"strings"

	"github.com/arthur-debert/leveldbpatch/pkg/errors"
	"github.com/arthur-debert/leveldbpatch/pkg/textio"
	"github.com/arthur-debert/leveldbpatch/pkg/types"
)

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config is the complete leveldb-patch configuration
type Config struct {
	Snappy Snappy `koanf:"snappy" toml:"snappy"`
	CMake  CMake  `koanf:"cmake" toml:"cmake"`
	Output Output `koanf:"output" toml:"output"`
}

// Snappy locates the Snappy checkout LevelDB is redirected to
type Snappy struct {
	SourceDir string `koanf:"source_dir" toml:"source_dir" comment:"Snappy source directory, added to leveldb's private include path"`
	BinaryDir string `koanf:"binary_dir" toml:"binary_dir" comment:"Snappy build directory holding the static library and generated headers"`
}

// CMake describes the file being patched
type CMake struct {
	File     string `koanf:"file" toml:"file" comment:"Build file to patch, relative to the working directory"`
	Encoding string `koanf:"encoding" toml:"encoding" comment:"IANA charset of the build file"`
	Platform string `koanf:"platform" toml:"platform" comment:"Library naming convention: auto, windows or other"`
}

// Output controls how results are reported
type Output struct {
	Format  string `koanf:"format" toml:"format" comment:"Result format: text, yaml or json"`
	NoColor bool   `koanf:"no_color" toml:"no_color" comment:"Disable colors in text output"`
	Diff    bool   `koanf:"diff" toml:"diff" comment:"Include a unified diff of the changes"`
}

// Default returns the built-in configuration. It matches embedded/defaults.toml.
func Default() *Config {
	return &Config{
		CMake: CMake{
			File:     "CMakeLists.txt",
			Encoding: textio.DefaultEncoding,
			Platform: types.PlatformNameAuto,
		},
		Output: Output{
			Format: FormatText,
		},
	}
}

// Validate checks the settings needed to patch a file
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Snappy.SourceDir) == "" {
		return errors.New(errors.ErrConfigValid, "snappy source directory is required").
			WithDetail("key", "snappy.source_dir")
	}
	if strings.TrimSpace(c.Snappy.BinaryDir) == "" {
		return errors.New(errors.ErrConfigValid, "snappy binary directory is required").
			WithDetail("key", "snappy.binary_dir")
	}
	if strings.TrimSpace(c.CMake.File) == "" {
		return errors.New(errors.ErrConfigValid, "cmake file must not be empty").
			WithDetail("key", "cmake.file")
	}
	if _, err := types.ParsePlatform(c.CMake.Platform); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid cmake.platform")
	}
	if _, err := textio.Lookup(c.CMake.Encoding); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid cmake.encoding")
	}
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q (want %s, %s or %s)",
			c.Output.Format, FormatText, FormatYAML, FormatJSON).
			WithDetail("key", "output.format")
	}
	return nil
}

// Platform resolves the configured platform
func (c *Config) Platform() types.Platform {
	p, err := types.ParsePlatform(c.CMake.Platform)
	if err != nil {
		return types.HostPlatform()
	}
	return p
}
