package textbuilder

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidUTF8  = errors.New("invalid utf-8")
	ErrWrite        = errors.New("sink write failed")
	ErrFormat       = errors.New("formatting failed")
	ErrStaleBuilder = errors.New("builder used after it was consumed")
	ErrUnbound      = errors.New("builder is not bound to a sink")
)

// Sink is the append-only destination a Builder writes to.
type Sink interface {
	io.Writer
	io.StringWriter
}

// sink tags every failed write with ErrWrite and counts accepted bytes.
type sink struct {
	w io.Writer
	n int64
}

func (s *sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return n, nil
}

func (s *sink) WriteString(str string) (int, error) {
	n, err := io.WriteString(s.w, str)
	s.n += int64(n)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return n, nil
}

type state struct {
	out       *sink
	lineBreak Appendable
	indents   []Appendable
	err       error
	gen       uint64
}

func (st *state) fail(err error) {
	if st.err == nil {
		st.err = err
	}
}

// Builder is a handle to in-progress text. Every method that writes consumes
// the handle it is called on and returns its successor; only the most
// recently returned handle may be used. Using an older one fails the build
// with [ErrStaleBuilder].
//
// Errors are sticky: after the first failure every further operation is a
// no-op and [Builder.Err] reports the failure.
type Builder struct {
	st  *state
	gen uint64
}

// Option configures a Builder at construction.
type Option func(*state)

// WithLineBreak sets the initial line break. The default is "\n".
func WithLineBreak(a Appendable) Option {
	return func(st *state) {
		st.lineBreak = orNone(a)
	}
}

// New returns a Builder that writes to w.
func New(w io.Writer, opts ...Option) Builder {
	st := &state{
		out:       &sink{w: w},
		lineBreak: Char('\n'),
	}
	for _, opt := range opts {
		opt(st)
	}
	return Builder{st: st}
}

// Write runs body against a Builder bound to w. Text written before a
// failure stays in w.
func Write(w io.Writer, body func(Builder) Builder, opts ...Option) error {
	b := New(w, opts...)
	return body(b).finish(b.st)
}

// Build runs body against a fresh in-memory sink and returns the text. On
// failure it returns an empty string and the error.
func Build(body func(Builder) Builder, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, body, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (b Builder) finish(st *state) error {
	if b.st != st || b.gen != st.gen {
		st.fail(ErrStaleBuilder)
	}
	return st.err
}

// enter validates the handle. It returns false if the operation must not run.
func (b Builder) enter() bool {
	if b.st == nil {
		return false
	}
	if b.gen != b.st.gen {
		b.st.fail(ErrStaleBuilder)
		return false
	}
	return b.st.err == nil
}

// next consumes b and issues its successor.
func (b Builder) next() Builder {
	if b.st == nil {
		return b
	}
	b.st.gen++
	return Builder{st: b.st, gen: b.st.gen}
}

func (b Builder) check(err error) Builder {
	if err != nil {
		b.st.fail(err)
	}
	return b.next()
}

func (b Builder) failWith(err error) Builder {
	if !b.enter() {
		return b.next()
	}
	return b.check(err)
}

// Err reports the first failure of the build, or nil.
func (b Builder) Err() error {
	switch {
	case b.st == nil:
		return ErrUnbound
	case b.st.err != nil:
		return b.st.err
	case b.gen != b.st.gen:
		return ErrStaleBuilder
	}
	return nil
}

// Depth returns the number of active indentation scopes.
func (b Builder) Depth() int {
	if b.st == nil {
		return 0
	}
	return len(b.st.indents)
}

// LineBreak returns the Appendable emitted by [Builder.Newline].
func (b Builder) LineBreak() Appendable {
	if b.st == nil {
		return None
	}
	return b.st.lineBreak
}

// Len returns the number of bytes the sink has accepted so far.
func (b Builder) Len() int64 {
	if b.st == nil {
		return 0
	}
	return b.st.out.n
}

// SetLineBreak replaces the line break for subsequent newlines. A nil value
// is treated as [None].
func (b Builder) SetLineBreak(a Appendable) Builder {
	if !b.enter() {
		return b.next()
	}
	b.st.lineBreak = orNone(a)
	return b.next()
}

// Newline writes the line break followed by every active indent, outermost
// first.
func (b Builder) Newline() Builder {
	if !b.enter() {
		return b.next()
	}
	if err := b.st.lineBreak.AppendTo(b.st.out); err != nil {
		return b.check(err)
	}
	for _, indent := range b.st.indents {
		if err := indent.AppendTo(b.st.out); err != nil {
			return b.check(err)
		}
	}
	return b.next()
}

// Append writes a verbatim.
func (b Builder) Append(a Appendable) Builder {
	if !b.enter() {
		return b.next()
	}
	return b.check(orNone(a).AppendTo(b.st.out))
}

// Str writes s verbatim.
func (b Builder) Str(s string) Builder {
	return b.Append(Str(s))
}

// Char writes a single rune.
func (b Builder) Char(r rune) Builder {
	return b.Append(Char(r))
}

// Display writes the human-readable form of v (the %v verb).
func (b Builder) Display(v any) Builder {
	return b.Formatf("%v", v)
}

// Debug writes the diagnostic form of v (the %#v verb, which honors
// fmt.GoStringer).
func (b Builder) Debug(v any) Builder {
	return b.Formatf("%#v", v)
}

// LowerHex writes v with the %x verb.
func (b Builder) LowerHex(v any) Builder {
	return b.Formatf("%x", v)
}

// UpperHex writes v with the %X verb.
func (b Builder) UpperHex(v any) Builder {
	return b.Formatf("%X", v)
}

// Formatf writes the result of fmt.Fprintf directly into the sink.
func (b Builder) Formatf(format string, args ...any) Builder {
	if !b.enter() {
		return b.next()
	}
	_, err := fmt.Fprintf(b.st.out, format, args...)
	return b.check(err)
}

// UTF8 writes p as text. If p is not valid UTF-8 nothing is written and the
// build fails with [ErrInvalidUTF8].
func (b Builder) UTF8(p []byte) Builder {
	if !b.enter() {
		return b.next()
	}
	if !utf8.Valid(p) {
		return b.check(fmt.Errorf("%w: bad byte at offset %d", ErrInvalidUTF8, invalidOffset(p)))
	}
	_, err := b.st.out.Write(p)
	return b.check(err)
}

func invalidOffset(p []byte) int {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(p)
}

// Lines writes s, emitting each "\n" in it through [Builder.Newline] so that
// embedded line breaks honor the current line break and indentation.
func (b Builder) Lines(s string) Builder {
	first := true
	for line := range strings.SplitSeq(s, "\n") {
		if !first {
			b = b.Newline()
		}
		first = false
		if line != "" {
			b = b.Str(line)
		}
	}
	return b
}

// Indented pushes indent, runs body, and pops indent again however body
// exits. Newlines written inside body are followed by every active indent.
func (b Builder) Indented(indent Appendable, body func(Builder) Builder) Builder {
	if !b.enter() {
		return b.next()
	}
	st := b.st
	st.indents = append(st.indents, orNone(indent))
	depth := len(st.indents)
	defer func() {
		st.indents = st.indents[:depth-1]
	}()
	out := body(b.next())
	if out.st != st || out.gen != st.gen {
		st.fail(ErrStaleBuilder)
	}
	st.gen++
	return Builder{st: st, gen: st.gen}
}

// Value writes the Appendable that transform derives from v.
func Value[V any, A Appendable](b Builder, v V, transform func(V) A) Builder {
	if b.Err() != nil {
		return b.Append(None)
	}
	return b.Append(transform(v))
}
