package genconfig

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/leveldbpatch/pkg/config"
	"github.com/arthur-debert/leveldbpatch/pkg/errors"
	"github.com/arthur-debert/leveldbpatch/pkg/logging"
	"github.com/arthur-debert/leveldbpatch/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// Options holds options for the gen-config command
type Options struct {
	FileSystem types.FS
	// Dir is where the config file is written
	Dir   string
	Write bool
}

// Run outputs or writes the default configuration
func Run(opts Options) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content, err := DefaultContent()
	if err != nil {
		return nil, err
	}

	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	targetPath := filepath.Join(opts.Dir, config.ConfigFileNames[0])

	if _, err := opts.FileSystem.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", targetPath)
	}

	if err := opts.FileSystem.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}

// DefaultContent renders the default configuration as commented TOML
func DefaultContent() (string, error) {
	data, err := toml.Marshal(config.Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render default config")
	}
	return "# leveldb-patch configuration\n\n" + string(data), nil
}
