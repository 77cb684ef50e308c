package textbuilder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded  BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                        // No borders, space-separated columns
	BorderASCII                       // +-+|
	BorderHeavy                       // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                      // ╔═╗╚╝║╦╩╠╣╬
	BorderMarkdown                    // GitHub-flavored Markdown pipes
)

// Table describes tabular text for [Builder.Table]. Only Rows is required.
//
// Markdown tables need a Header and ignore Title and Footer.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
	Footer []string
	// Caption is written as a line below the table.
	Caption string
	Border  BorderStyle
	Align   []Alignment
	// MaxWidths caps column widths; longer cells end in "...". Zero means
	// no limit.
	MaxWidths []int
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// Table writes t one line at a time, separated by [Builder.Newline], so the
// whole table follows the current indentation. No newline follows the last
// line. A table without cells writes nothing.
func (b Builder) Table(t Table) Builder {
	if b.Err() != nil {
		return b.Append(None)
	}
	lines, err := t.lines()
	if err != nil {
		return b.failWith(err)
	}
	return Delimit(b, Builder.Newline, slices.Values(lines), func(b Builder, _ int, line string) Builder {
		return b.Str(line)
	})
}

func (t Table) lines() ([]string, error) {
	numCols := colCount(t.Header, t.Rows, t.Footer)
	if numCols == 0 {
		return nil, nil
	}
	widths := computeWidths(numCols, t.Header, t.Rows, t.Footer)
	for i, limit := range t.MaxWidths {
		if i < numCols && limit > 0 && widths[i] > limit {
			widths[i] = limit
		}
	}
	aligns := extendAligns(t.Align, numCols)

	var lines []string
	switch t.Border {
	case BorderMarkdown:
		if len(t.Header) == 0 {
			return nil, fmt.Errorf("%w: markdown table requires a header", ErrFormat)
		}
		lines = markdownLines(t.Header, t.Rows, widths, aligns)
	case BorderNone:
		lines = plainLines(t.Header, t.Rows, t.Footer, widths, aligns)
	default:
		bc, ok := borderSets[t.Border]
		if !ok {
			return nil, fmt.Errorf("%w: unknown border style %d", ErrFormat, t.Border)
		}
		lines = borderedLines(bc, t.Title, t.Header, t.Rows, t.Footer, widths, aligns)
	}
	if t.Caption != "" {
		lines = append(lines, t.Caption)
	}
	return lines, nil
}

func colCount(header []string, rows [][]string, footer []string) int {
	n := len(header)
	for _, row := range rows {
		n = max(n, len(row))
	}
	return max(n, len(footer))
}

func computeWidths(numCols int, header []string, rows [][]string, footer []string) []int {
	widths := make([]int, numCols)
	measure := func(cells []string) {
		for i, cell := range cells {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	measure(footer)
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func formatCells(cells []string, widths []int, aligns []Alignment) []string {
	out := make([]string, len(widths))
	for i, width := range widths {
		out[i] = Padded{Text: cellAt(cells, i), Width: width, Align: aligns[i], Ellipsis: "..."}.String()
	}
	return out
}

func plainLines(header []string, rows [][]string, footer []string, widths []int, aligns []Alignment) []string {
	row := func(cells []string) string {
		return strings.TrimRight(strings.Join(formatCells(cells, widths, aligns), "  "), " ")
	}
	seps := make([]string, len(widths))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	sep := strings.Join(seps, "  ")

	var lines []string
	if len(header) > 0 {
		lines = append(lines, row(header), sep)
	}
	for _, r := range rows {
		lines = append(lines, row(r))
	}
	if len(footer) > 0 {
		lines = append(lines, sep, row(footer))
	}
	return lines
}

func borderedLines(bc borderChars, title string, header []string, rows [][]string, footer []string, widths []int, aligns []Alignment) []string {
	hline := func(left, mid, right string) string {
		var sb strings.Builder
		sb.WriteString(left)
		for i, width := range widths {
			sb.WriteString(strings.Repeat(bc.horizontal, width+2))
			if i < len(widths)-1 {
				sb.WriteString(mid)
			}
		}
		sb.WriteString(right)
		return sb.String()
	}
	row := func(cells []string) string {
		inner := strings.Join(formatCells(cells, widths, aligns), " "+bc.vertical+" ")
		return bc.vertical + " " + inner + " " + bc.vertical
	}
	divider := hline(bc.leftTee, bc.cross, bc.rightTee)

	var lines []string
	if title != "" {
		// One spanning cell, then a transition to columns.
		inner := tableInnerWidth(widths) - 2
		lines = append(lines,
			hline(bc.topLeft, bc.horizontal, bc.topRight),
			bc.vertical+" "+Padded{Text: title, Width: inner, Align: AlignCenter}.String()+" "+bc.vertical,
			hline(bc.leftTee, bc.topTee, bc.rightTee),
		)
	} else {
		lines = append(lines, hline(bc.topLeft, bc.topTee, bc.topRight))
	}
	if len(header) > 0 {
		lines = append(lines, row(header), divider)
	}
	for _, r := range rows {
		lines = append(lines, row(r))
	}
	if len(footer) > 0 {
		lines = append(lines, divider, row(footer))
	}
	return append(lines, hline(bc.bottomLeft, bc.bottomTee, bc.bottomRight))
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func markdownLines(header []string, rows [][]string, widths []int, aligns []Alignment) []string {
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}
	row := func(cells []string) string {
		return "| " + strings.Join(formatCells(cells, widths, aligns), " | ") + " |"
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	lines := []string{row(header), "| " + strings.Join(sep, " | ") + " |"}
	for _, r := range rows {
		lines = append(lines, row(r))
	}
	return lines
}
