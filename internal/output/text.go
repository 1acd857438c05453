package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	infoColorConstant     = "10"
	commentColorConstant  = "11"
	errorColorConstant    = "9"
	bannerRuleConstant    = "═══════════════════════════════════"
	sectionRuleConstant   = "═"
	separatorRuleConstant = "─"
	newlineConstant       = "\n"
)

// TextWriter writes human-formatted lines, styling them when the destination is a terminal.
type TextWriter struct {
	writer       io.Writer
	infoStyle    lipgloss.Style
	commentStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewTextWriter constructs a TextWriter whose color profile is detected from writer.
func NewTextWriter(writer io.Writer) *TextWriter {
	if writer == nil {
		writer = io.Discard
	}
	renderer := lipgloss.NewRenderer(writer)
	return &TextWriter{
		writer:       writer,
		infoStyle:    renderer.NewStyle().Foreground(lipgloss.Color(infoColorConstant)),
		commentStyle: renderer.NewStyle().Foreground(lipgloss.Color(commentColorConstant)),
		errorStyle:   renderer.NewStyle().Foreground(lipgloss.Color(errorColorConstant)),
	}
}

// Writer exposes the destination for components that print raw output.
func (textWriter *TextWriter) Writer() io.Writer {
	return textWriter.writer
}

// Info styles text as informational.
func (textWriter *TextWriter) Info(text string) string {
	return textWriter.infoStyle.Render(text)
}

// Comment styles text as secondary.
func (textWriter *TextWriter) Comment(text string) string {
	return textWriter.commentStyle.Render(text)
}

// Error styles text as an error.
func (textWriter *TextWriter) Error(text string) string {
	return textWriter.errorStyle.Render(text)
}

// Line writes a formatted line.
func (textWriter *TextWriter) Line(format string, arguments ...any) {
	fmt.Fprintf(textWriter.writer, format+newlineConstant, arguments...)
}

// Blank writes an empty line.
func (textWriter *TextWriter) Blank() {
	io.WriteString(textWriter.writer, newlineConstant)
}

// Banner writes a title line underlined with the banner rule, surrounded by blank lines.
func (textWriter *TextWriter) Banner(title string) {
	textWriter.Blank()
	textWriter.Line("%s", textWriter.Info(title))
	textWriter.Line("%s", textWriter.Comment(bannerRuleConstant))
	textWriter.Blank()
}

// SectionRule returns a heavy rule of the given width.
func SectionRule(width int) string {
	return strings.Repeat(sectionRuleConstant, width)
}

// SeparatorRule returns a light rule of the given width.
func SeparatorRule(width int) string {
	return strings.Repeat(separatorRuleConstant, width)
}
