package textbuilder

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls how text is placed within a fixed width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Padded renders Text padded with spaces to Width display columns. Text wider
// than Width is truncated, ending in Ellipsis when Width leaves room for it.
// Widths are display widths, so wide (CJK) runes count as two columns.
type Padded struct {
	Text     string
	Width    int
	Align    Alignment
	Ellipsis string
}

func (p Padded) AppendTo(s Sink) error {
	_, err := s.WriteString(p.String())
	return err
}

func (p Padded) String() string {
	return alignCell(truncateCell(p.Text, p.Width, p.Ellipsis), p.Width, p.Align)
}

func truncateCell(s string, width int, ellipsis string) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if runewidth.StringWidth(ellipsis) >= width {
		ellipsis = ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
