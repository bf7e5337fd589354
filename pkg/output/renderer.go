package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/leveldbpatch/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Renderer writes command results in one format
type Renderer interface {
	RenderResult(result interface{}) error
	RenderError(err error) error
}

// New creates the renderer for format
func New(w io.Writer, format Format, noColor bool) (Renderer, error) {
	logger := logging.GetLogger("output")
	logger.Debug().
		Stringer("format", format).
		Bool("noColor", noColor).
		Msg("Creating renderer")

	switch format {
	case FormatText:
		return NewText(w, ColorEnabled(w, noColor)), nil
	case FormatYAML:
		return &yamlRenderer{output: w}, nil
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return &jsonRenderer{encoder: encoder}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

type jsonRenderer struct {
	encoder *json.Encoder
}

func (r *jsonRenderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}

type yamlRenderer struct {
	output io.Writer
}

func (r *yamlRenderer) RenderResult(result interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}

func (r *yamlRenderer) RenderError(err error) error {
	return r.RenderResult(map[string]string{"error": err.Error()})
}
