package check

import (
	"github.com/arthur-debert/leveldbpatch/pkg/commands/internal/pipeline"
	"github.com/arthur-debert/leveldbpatch/pkg/logging"
	"github.com/arthur-debert/leveldbpatch/pkg/types"
)

// Options holds options for the check command
type Options struct {
	FileSystem types.FS
	File       string
	Encoding   string
	SourceDir  string
	BinaryDir  string
	Platform   types.Platform
	Diff       bool
}

// Run reports whether patching the build file would change it. It never
// writes.
func Run(opts Options) (*types.CheckResult, error) {
	logger := logging.GetLogger("commands.check")

	out, err := pipeline.Run(pipeline.Input{
		FS:        opts.FileSystem,
		File:      opts.File,
		Encoding:  opts.Encoding,
		SourceDir: opts.SourceDir,
		BinaryDir: opts.BinaryDir,
		Platform:  opts.Platform,
		Diff:      opts.Diff,
	})
	if err != nil {
		return nil, err
	}

	result := &types.CheckResult{
		File:     opts.File,
		Platform: opts.Platform,
		UpToDate: !out.Report.Changed,
		Report:   *out.Report,
		Diff:     out.Diff,
	}

	logger.Info().
		Str("file", opts.File).
		Bool("upToDate", result.UpToDate).
		Msg("Checked build file")
	return result, nil
}
