// Package pipeline reads a build file and runs the patcher over it. It is
// shared by the patch and check commands.
package pipeline

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/leveldbpatch/pkg/diff"
	"github.com/arthur-debert/leveldbpatch/pkg/errors"
	"github.com/arthur-debert/leveldbpatch/pkg/patcher"
	"github.com/arthur-debert/leveldbpatch/pkg/textio"
	"github.com/arthur-debert/leveldbpatch/pkg/types"
)

// Input describes one patch run
type Input struct {
	FS        types.FS
	File      string
	Encoding  string
	SourceDir string
	BinaryDir string
	Platform  types.Platform
	Diff      bool
}

// Output is the in-memory result of a run. Nothing has been written yet.
type Output struct {
	Mode     fs.FileMode
	Codec    *textio.Codec
	Original string
	Patched  string
	Report   *types.PatchReport
	Diff     string
}

// Run performs the single read and the patch pass
func Run(in Input) (*Output, error) {
	codec, err := textio.Lookup(in.Encoding)
	if err != nil {
		return nil, err
	}

	info, err := in.FS.Stat(in.File)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "%s not found", in.File).
				WithDetail("path", in.File)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", in.File).
			WithDetail("path", in.File)
	}

	raw, err := in.FS.ReadFile(in.File)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", in.File).
			WithDetail("path", in.File)
	}

	original, err := codec.Decode(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncoding, "cannot decode %s", in.File).
			WithDetail("path", in.File)
	}

	p := patcher.New(patcher.Options{
		SnappySourceDir: in.SourceDir,
		SnappyBinaryDir: in.BinaryDir,
		Platform:        in.Platform,
	})
	patched, report, err := p.PatchText(original)
	if err != nil {
		var patchErr *errors.PatchError
		if stderrors.As(err, &patchErr) {
			return nil, patchErr.WithDetail("path", in.File)
		}
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot patch %s", in.File)
	}

	out := &Output{
		Mode:     info.Mode().Perm(),
		Codec:    codec,
		Original: original,
		Patched:  patched,
		Report:   report,
	}
	if in.Diff {
		out.Diff, err = diff.Unified(in.File, original, patched)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot render diff")
		}
	}
	return out, nil
}
