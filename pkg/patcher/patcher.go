package patcher

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/leveldbpatch/pkg/errors"
	"github.com/arthur-debert/leveldbpatch/pkg/lines"
	"github.com/arthur-debert/leveldbpatch/pkg/types"
)

// Trigger lines, compared against a line's content after trimming whitespace
const (
	SnappyDetectLine  = `check_library_exists(snappy snappy_compress "" HAVE_SNAPPY)`
	SnappyIncludeLine = "target_include_directories(leveldb"
	SnappyLinkLine    = "target_link_libraries(leveldb snappy)"
)

const (
	commentPrefix      = "# "
	privateKeyword     = "PRIVATE"
	snappyOverrideLine = `set(HAVE_SNAPPY ON CACHE BOOL "")`
)

// Options configures a Patcher
type Options struct {
	SnappySourceDir string
	SnappyBinaryDir string
	Platform        types.Platform
}

// Patcher holds the normalized configuration shared by every patch session
type Patcher struct {
	sourceDir string
	binaryDir string
	linkLine  string
}

// New creates a Patcher. Directory paths are cleaned and rendered with
// forward slashes so they can be embedded in CMake source on any host.
func New(opts Options) *Patcher {
	binaryDir := NormalizePath(opts.SnappyBinaryDir)
	return &Patcher{
		sourceDir: NormalizePath(opts.SnappySourceDir),
		binaryDir: binaryDir,
		linkLine:  "target_link_libraries(leveldb " + binaryDir + "/" + StaticLibrary(opts.Platform) + ")",
	}
}

// NormalizePath renders a filesystem path in forward-slash form. Repeated
// separators, "." segments and trailing separators are dropped; ".." segments
// and a POSIX leading "//" are kept as given.
func NormalizePath(p string) string {
	vol := filepath.VolumeName(p)
	rest := filepath.ToSlash(p[len(vol):])

	root := ""
	if strings.HasPrefix(rest, "/") {
		root = "/"
		if vol == "" && strings.HasPrefix(rest, "//") && !strings.HasPrefix(rest, "///") {
			root = "//"
		}
	}

	var segments []string
	for _, seg := range strings.Split(rest, "/") {
		if seg == "" || seg == "." {
			continue
		}
		segments = append(segments, seg)
	}

	out := filepath.ToSlash(vol) + root + strings.Join(segments, "/")
	if out == "" {
		return "."
	}
	return out
}

// StaticLibrary returns the Snappy archive path relative to the binary
// directory. Multi-config Windows generators place it under a per-config
// directory, selected here with a generator expression.
func StaticLibrary(p types.Platform) string {
	if p == types.PlatformWindows {
		return "$<CONFIG>/snappy.lib"
	}
	return "libsnappy.a"
}

// Patch rewrites the given lines and returns the new line sequence. Input
// lines keep their terminators, as produced by lines.Split.
func (p *Patcher) Patch(input []string) ([]string, *types.PatchReport, error) {
	s := &session{
		patcher: p,
		lines:   input,
		eol:     lines.Terminator(input),
		out:     make([]string, 0, len(input)+8),
	}
	if err := s.run(); err != nil {
		return nil, nil, err
	}
	s.report.Changed = lines.Join(s.out) != lines.Join(input)
	return s.out, &s.report, nil
}

// PatchText is Patch over a whole file's text
func (p *Patcher) PatchText(text string) (string, *types.PatchReport, error) {
	out, report, err := p.Patch(lines.Split(text))
	if err != nil {
		return "", nil, err
	}
	return lines.Join(out), report, nil
}

// session is one pass over one file. pos is the index of the next line to
// read; nothing before it is ever looked at again. eol terminates lines
// synthesized ahead of an unterminated final line.
type session struct {
	patcher *Patcher
	lines   []string
	eol     string
	pos     int
	out     []string
	report  types.PatchReport
}

func (s *session) run() error {
	for s.pos < len(s.lines) {
		line := lines.Parse(s.lines[s.pos])
		s.pos++

		switch line.Content {
		case SnappyDetectLine:
			s.onDetectLine(line)
		case SnappyIncludeLine:
			s.emit(line.Full)
			next, err := s.onIncludeStart(s.pos)
			if err != nil {
				return err
			}
			s.pos = next
		case SnappyLinkLine:
			s.onLinkLine(line)
		default:
			s.emit(line.Full)
		}
	}
	return nil
}

func (s *session) emit(text string) {
	s.out = append(s.out, text)
}

func (s *session) onDetectLine(line types.Line) {
	s.emit(line.WithBreak(commentPrefix+line.Content, s.eol))
	s.emit(line.With(snappyOverrideLine))
	s.report.ProbesDisabled++
}

// onIncludeStart handles the lines following the include directive opener
// at pos and returns the position the main loop resumes at. The two lines
// starting at pos are both inspected before anything is decided, so a
// directive cut short by the end of the file fails even when the first of
// them would be consumed.
func (s *session) onIncludeStart(pos int) (int, error) {
	if pos+1 >= len(s.lines) {
		return pos, errors.Newf(errors.ErrMissingLines,
			"%q on line %d must be followed by at least two lines", SnappyIncludeLine, pos).
			WithDetail("line", pos).
			WithDetail("available", len(s.lines)-pos)
	}
	first := lines.Parse(s.lines[pos])
	second := lines.Parse(s.lines[pos+1])

	next := pos
	if first.Content == privateKeyword {
		s.emit(first.Full)
		s.report.PrivateKept++
		next++
	} else {
		s.emit(first.WithBreak(privateKeyword, s.eol))
		s.report.PrivateInserted++
	}

	if second.Content == s.patcher.sourceDir {
		s.report.PathsPresent++
		return next, nil
	}
	s.emit(second.WithBreak(s.patcher.sourceDir, s.eol))
	s.emit(second.WithBreak(s.patcher.binaryDir, s.eol))
	s.report.PathsInserted++
	return next, nil
}

func (s *session) onLinkLine(line types.Line) {
	s.emit(line.WithBreak(commentPrefix+line.Content, s.eol))
	s.emit(line.With(s.patcher.linkLine))
	s.report.LinksReplaced++
}
