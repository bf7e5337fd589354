package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/leveldbpatch/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	green = lipgloss.AdaptiveColor{Light: "#00A000", Dark: "#00D000"}
	amber = lipgloss.AdaptiveColor{Light: "#C08000", Dark: "#FFB000"}
	red   = lipgloss.AdaptiveColor{Light: "#C00000", Dark: "#FF5555"}
	blue  = lipgloss.AdaptiveColor{Light: "#0060C0", Dark: "#5FAFFF"}
	gray  = lipgloss.AdaptiveColor{Light: "#808080", Dark: "#6C6C6C"}
)

// TextRenderer writes results for people
type TextRenderer struct {
	output io.Writer

	success  lipgloss.Style
	warning  lipgloss.Style
	errStyle lipgloss.Style
	path     lipgloss.Style
	muted    lipgloss.Style
	added    lipgloss.Style
	removed  lipgloss.Style
	hunk     lipgloss.Style
}

// NewText creates a text renderer. Styles render as plain text when color
// is false.
func NewText(w io.Writer, color bool) *TextRenderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &TextRenderer{
		output:   w,
		success:  r.NewStyle().Foreground(green).Bold(true),
		warning:  r.NewStyle().Foreground(amber).Bold(true),
		errStyle: r.NewStyle().Foreground(red).Bold(true),
		path:     r.NewStyle().Bold(true),
		muted:    r.NewStyle().Foreground(gray),
		added:    r.NewStyle().Foreground(green),
		removed:  r.NewStyle().Foreground(red),
		hunk:     r.NewStyle().Foreground(blue),
	}
}

// RenderResult renders any result type as text
func (r *TextRenderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *types.PatchResult:
		r.writePatch(&b, v)
	case *types.CheckResult:
		r.writeCheck(&b, v)
	case *types.GenConfigResult:
		r.writeGenConfig(&b, v)
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error message with appropriate styling
func (r *TextRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %v\n", r.errStyle.Render("Error:"), err)
	return werr
}

func (r *TextRenderer) writePatch(b *strings.Builder, res *types.PatchResult) {
	file := r.path.Render(res.File)
	switch {
	case !res.Report.Changed:
		fmt.Fprintf(b, "%s %s is already patched\n", r.success.Render("✓"), file)
	case res.Written:
		fmt.Fprintf(b, "%s patched %s\n", r.success.Render("✓"), file)
	default:
		fmt.Fprintf(b, "%s %s would be patched %s\n", r.warning.Render("•"), file, r.muted.Render("(dry run)"))
	}
	r.writeReport(b, res.Platform, res.Report)
	r.writeDiff(b, res.Diff)
}

func (r *TextRenderer) writeCheck(b *strings.Builder, res *types.CheckResult) {
	file := r.path.Render(res.File)
	if res.UpToDate {
		fmt.Fprintf(b, "%s %s is up to date\n", r.success.Render("✓"), file)
	} else {
		fmt.Fprintf(b, "%s %s needs patching\n", r.warning.Render("✗"), file)
	}
	r.writeReport(b, res.Platform, res.Report)
	r.writeDiff(b, res.Diff)
}

func (r *TextRenderer) writeGenConfig(b *strings.Builder, res *types.GenConfigResult) {
	if len(res.FilesWritten) == 0 {
		b.WriteString(res.ConfigContent)
		return
	}
	for _, path := range res.FilesWritten {
		fmt.Fprintf(b, "%s wrote %s\n", r.success.Render("✓"), r.path.Render(path))
	}
}

func (r *TextRenderer) writeReport(b *strings.Builder, platform types.Platform, rep types.PatchReport) {
	rows := []struct {
		label string
		n     int
	}{
		{"library probes disabled", rep.ProbesDisabled},
		{"PRIVATE inserted", rep.PrivateInserted},
		{"include paths inserted", rep.PathsInserted},
		{"include paths present", rep.PathsPresent},
		{"link lines replaced", rep.LinksReplaced},
	}
	for _, row := range rows {
		if row.n == 0 {
			continue
		}
		fmt.Fprintf(b, "  %-24s %d\n", row.label, row.n)
	}
	fmt.Fprintf(b, "  %s\n", r.muted.Render("platform: "+platform.String()))
}

func (r *TextRenderer) writeDiff(b *strings.Builder, diff string) {
	if diff == "" {
		return
	}
	b.WriteString("\n")
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = r.path.Render(line)
		case strings.HasPrefix(line, "@@"):
			line = r.hunk.Render(line)
		case strings.HasPrefix(line, "+"):
			line = r.added.Render(line)
		case strings.HasPrefix(line, "-"):
			line = r.removed.Render(line)
		}
		b.WriteString(line + "\n")
	}
}
