package patch

import (
	"github.com/arthur-debert/leveldbpatch/pkg/commands/internal/pipeline"
	"github.com/arthur-debert/leveldbpatch/pkg/errors"
	"github.com/arthur-debert/leveldbpatch/pkg/logging"
	"github.com/arthur-debert/leveldbpatch/pkg/types"
)

// Options holds options for the patch command
type Options struct {
	FileSystem types.FS
	File       string
	Encoding   string
	SourceDir  string
	BinaryDir  string
	Platform   types.Platform
	DryRun     bool
	Diff       bool
}

// Run reads the build file, patches it in memory and writes it back in
// full. The file is left untouched when the pass fails, when nothing
// changed, or in dry-run mode.
func Run(opts Options) (*types.PatchResult, error) {
	logger := logging.GetLogger("commands.patch")
	done := logging.LogOperationStart(logger, "patch")
	defer done()

	logger.Info().
		Str("file", opts.File).
		Str("sourceDir", opts.SourceDir).
		Str("binaryDir", opts.BinaryDir).
		Stringer("platform", opts.Platform).
		Bool("dryRun", opts.DryRun).
		Msg("Patching build file")

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

	result := &types.PatchResult{
		File:     opts.File,
		Platform: opts.Platform,
		Encoding: out.Codec.Name(),
		DryRun:   opts.DryRun,
		Report:   *out.Report,
		Diff:     out.Diff,
	}

	logger.Debug().
		Int("probesDisabled", out.Report.ProbesDisabled).
		Int("pathsInserted", out.Report.PathsInserted).
		Int("pathsPresent", out.Report.PathsPresent).
		Int("linksReplaced", out.Report.LinksReplaced).
		Msg("Patch pass completed")

	if !out.Report.Changed {
		logger.Info().Str("file", opts.File).Msg("Build file already patched, not rewriting")
		return result, nil
	}
	if opts.DryRun {
		logger.Info().Str("file", opts.File).Msg("Dry run, not writing")
		return result, nil
	}

	data, err := out.Codec.Encode(out.Patched)
	if err != nil {
		return nil, err
	}
	if err := opts.FileSystem.WriteFile(opts.File, data, out.Mode); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", opts.File).
			WithDetail("path", opts.File)
	}
	result.Written = true

	logger.Info().Str("file", opts.File).Int("bytes", len(data)).Msg("Wrote patched build file")
	return result, nil
}
