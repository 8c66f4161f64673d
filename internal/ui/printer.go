package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/orbytrixx/orbytrixx/internal/form"
)

// Printer writes UI components to a writer at a fixed width. Commands print
// through a Printer rather than fmt directly.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer for w sized to the terminal. A nil w means
// os.Stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: w, width: GetTerminalWidth()}
}

// WithWidth returns a copy of the printer rendering at width
func (p *Printer) WithWidth(width int) *Printer {
	return &Printer{out: p.out, width: ClampWidth(width)}
}

// Width returns the render width
func (p *Printer) Width() int {
	return p.width
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Printf writes formatted content
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
	p.Newline()
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details ...Param) {
	p.Println(NewWarningResult(title, details...).SetWidth(p.width).Render())
}

// PrintError prints a failure box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(NewFailureResult(title, err, troubleshooting).SetWidth(p.width).Render())
}

// PrintValidation prints the field errors of a form
func (p *Printer) PrintValidation(variant form.Variant, errs form.Errors) {
	p.Println(NewValidation(variant, errs).SetWidth(p.width).Render())
}

// PrintTable prints rows under a header line. The first column is
// highlighted; the last column is truncated to fit the width.
func (p *Printer) PrintTable(headers []string, rows [][]string) {
	p.Println(RenderTable(headers, rows, p.width))
}

// RenderTable renders aligned columns. Every row must have len(headers)
// cells.
func RenderTable(headers []string, rows [][]string, width int) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	const gap = 2
	last := len(widths) - 1
	used := 2
	for _, w := range widths[:last] {
		used += w + gap
	}
	if room := width - used; room > 0 && widths[last] > room {
		widths[last] = room
	}

	renderRow := func(cells []string, style func(col int) lipgloss.Style) string {
		var b strings.Builder
		b.WriteString("  ")
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i == last {
				b.WriteString(style(i).Render(truncate(cell, widths[i])))
				break
			}
			b.WriteString(style(i).Render(cell))
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+gap))
		}
		return b.String()
	}

	lines := []string{
		renderRow(headers, func(int) lipgloss.Style { return TableHeaderStyle }),
		"  " + RenderHorizontalDivider(used-2+widths[last], "─"),
	}
	for _, row := range rows {
		lines = append(lines, renderRow(row, func(col int) lipgloss.Style {
			if col == 0 {
				return TableKeyStyle
			}
			return TableCellStyle
		}))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
