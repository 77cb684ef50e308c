package textbuilder

import (
	"github.com/fatih/color"
	"golang.org/x/text/unicode/norm"
)

// Styled renders Text passed through Style. A nil Style renders Text as is.
// Styles that add escape sequences change the text but not its meaning, so
// apply them last, after any padding.
type Styled struct {
	Text  string
	Style func(string) string
}

func (st Styled) AppendTo(s Sink) error {
	_, err := s.WriteString(st.String())
	return err
}

func (st Styled) String() string {
	if st.Style == nil {
		return st.Text
	}
	return st.Style(st.Text)
}

// Color returns a style that wraps text in the ANSI sequences for attrs.
// It follows color.NoColor, so output to a non-terminal stays plain unless
// color is forced.
func Color(attrs ...color.Attribute) func(string) string {
	return ColorStyle(color.New(attrs...))
}

// ColorStyle returns a style that renders text with c.
func ColorStyle(c *color.Color) func(string) string {
	return func(s string) string {
		return c.Sprint(s)
	}
}

// Normalized renders Text in the Unicode normalization Form, such as
// norm.NFC.
type Normalized struct {
	Form norm.Form
	Text string
}

func (n Normalized) AppendTo(s Sink) error {
	_, err := s.WriteString(n.String())
	return err
}

func (n Normalized) String() string {
	return n.Form.String(n.Text)
}
