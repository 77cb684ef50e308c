package textbuilder

import "strings"

// Appendable is a value that can render itself into a [Sink]. String must
// return the same text AppendTo writes, so every Appendable can appear in
// error messages and debug output.
type Appendable interface {
	AppendTo(s Sink) error
	String() string
}

// Char is a single rune.
type Char rune

func (c Char) AppendTo(s Sink) error {
	_, err := s.WriteString(string(rune(c)))
	return err
}

func (c Char) String() string { return string(rune(c)) }

// Str is a borrowed piece of text, written as is.
type Str string

func (t Str) AppendTo(s Sink) error {
	_, err := s.WriteString(string(t))
	return err
}

func (t Str) String() string { return string(t) }

// Runes is an owned, mutable text value.
type Runes []rune

func (r Runes) AppendTo(s Sink) error {
	_, err := s.WriteString(string(r))
	return err
}

func (r Runes) String() string { return string(r) }

// Func adapts a rendering function to Appendable.
type Func func(s Sink) error

func (f Func) AppendTo(s Sink) error {
	if f == nil {
		return nil
	}
	return f(s)
}

// String renders f into memory. A rendering error truncates the result.
func (f Func) String() string {
	var sb strings.Builder
	_ = f.AppendTo(&sb)
	return sb.String()
}

type nothing struct{}

func (nothing) AppendTo(Sink) error { return nil }
func (nothing) String() string      { return "" }

// None renders nothing. Use it where a delimiter, indent, or line break is
// required but no text is wanted.
var None Appendable = nothing{}

func orNone(a Appendable) Appendable {
	if a == nil {
		return None
	}
	return a
}

var (
	_ Sink = (*strings.Builder)(nil)
	_ Sink = (*sink)(nil)
)
