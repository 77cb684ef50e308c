package textbuilder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Indenter controls the indentation of JSON, YAML, and TOML blocks.
// Without it, JSON is compact, YAML uses four spaces and TOML two.
type Indenter interface {
	Indent() string
}

// JSON writes v as a JSON document. Lines of indented output follow the
// current indentation; the trailing newline is dropped.
func (b Builder) JSON(v any) Builder {
	return b.encoded("json", v, func(buf *bytes.Buffer) error {
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if ind, ok := v.(Indenter); ok {
			enc.SetIndent("", ind.Indent())
		}
		return enc.Encode(v)
	})
}

// YAML writes v as a YAML document, one line per [Builder.Newline].
func (b Builder) YAML(v any) Builder {
	return b.encoded("yaml", v, func(buf *bytes.Buffer) error {
		enc := yaml.NewEncoder(buf)
		if ind, ok := v.(Indenter); ok {
			enc.SetIndent(len(ind.Indent()))
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	})
}

// TOML writes v, which must be a map or struct, as a TOML document.
func (b Builder) TOML(v any) Builder {
	return b.encoded("toml", v, func(buf *bytes.Buffer) error {
		enc := toml.NewEncoder(buf)
		if ind, ok := v.(Indenter); ok {
			enc.Indent = ind.Indent()
		}
		return enc.Encode(v)
	})
}

func (b Builder) encoded(codec string, v any, encode func(*bytes.Buffer) error) Builder {
	if b.Err() != nil {
		return b.Append(None)
	}
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return b.failWith(fmt.Errorf("%w: %s encoding of %T: %w", ErrFormat, codec, v, err))
	}
	return b.Lines(strings.TrimSuffix(buf.String(), "\n"))
}
