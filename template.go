package textbuilder

import (
	"errors"
	"fmt"
	"text/template"
)

// Template executes the text/template tmpl against data and writes the
// output directly into the sink, like [Builder.Formatf]. Parse and
// execution failures are reported as [ErrFormat].
func (b Builder) Template(tmpl string, data any) Builder {
	if b.Err() != nil {
		return b.Append(None)
	}
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return b.failWith(fmt.Errorf("%w: invalid template: %w", ErrFormat, err))
	}
	return b.Append(Func(func(s Sink) error {
		err := t.Execute(s, data)
		if err == nil || errors.Is(err, ErrWrite) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}))
}
