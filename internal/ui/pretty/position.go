package pretty

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/linepos/pkg/linepos"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

// FormatLocation formats a "path:line:col" location header. The language
// tag is appended dimmed when non-empty.
func (s *Styles) FormatLocation(path string, line linepos.LineNumber, col int, language string) string {
	location := fmt.Sprintf("%s:%s:%d",
		s.FilePath.Render(path),
		s.Location.Render(line.Display()),
		col,
	)

	if language != "" {
		location += "  " + s.Language.Render("("+language+")")
	}

	return location + "\n"
}

// FormatSourceContext formats a source line with a caret marker under the
// given byte column.
func (s *Styles) FormatSourceContext(lineText string, col int) string {
	var builder strings.Builder

	const indent = "    "
	width := terminalWidth() - len(indent)

	builder.WriteString(indent + s.SourceLine.Render(truncate(lineText, width)) + "\n")

	if col >= 0 && col < width {
		builder.WriteString(indent + strings.Repeat(" ", col) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatSpanContext formats a source line with the covered columns
// underlined. Zero-width spans degrade to a single caret.
func (s *Styles) FormatSpanContext(lineText string, span linepos.Span) string {
	var builder strings.Builder

	const indent = "    "
	width := terminalWidth() - len(indent)

	gutter := s.GutterLine.Render(span.Line.Display() + " | ")
	builder.WriteString(indent + gutter + s.SourceLine.Render(truncate(lineText, width)) + "\n")

	padding := strings.Repeat(" ", len(span.Line.Display()+" | ")+span.StartCol)
	marker := "^"
	if span.Width() > 0 {
		marker = strings.Repeat("~", span.Width())
	}
	if span.StartCol < width {
		builder.WriteString(indent + padding + s.Underline.Render(marker) + "\n")
	}

	return builder.String()
}

// terminalWidth returns the current terminal width, or defaultWidth when
// stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
