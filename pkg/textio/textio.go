// Package textio converts file bytes to and from text in a named charset.
package textio

import (
	"unicode/utf8"

	"github.com/arthur-debert/leveldbpatch/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is used when no encoding is configured
const DefaultEncoding = "utf-8"

const utf8Name = "UTF-8"

// Codec decodes and encodes file content for one charset
type Codec struct {
	name string
	enc  encoding.Encoding
}

// Lookup resolves an IANA charset name (case-insensitive, aliases allowed)
func Lookup(name string) (*Codec, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncoding, "unknown encoding %q", name)
	}
	if enc == nil {
		return nil, errors.Newf(errors.ErrEncoding, "encoding %q is registered but not supported", name)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	return &Codec{name: canonical, enc: enc}, nil
}

// Name returns the canonical IANA name
func (c *Codec) Name() string {
	return c.name
}

// Decode converts raw file bytes to text. UTF-8 input must be valid.
func (c *Codec) Decode(data []byte) (string, error) {
	if c.name == utf8Name {
		if !utf8.Valid(data) {
			return "", errors.New(errors.ErrEncoding, "content is not valid UTF-8")
		}
		return string(data), nil
	}
	out, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEncoding, "cannot decode content as %s", c.name)
	}
	return string(out), nil
}

// Encode converts text back to file bytes
func (c *Codec) Encode(text string) ([]byte, error) {
	if c.name == utf8Name {
		return []byte(text), nil
	}
	out, err := c.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncoding, "cannot encode content as %s", c.name)
	}
	return out, nil
}
