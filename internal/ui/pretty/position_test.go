package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/linepos/internal/ui/pretty"
	"github.com/yaklabco/linepos/pkg/linepos"
)

func TestFormatLocation(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatLocation("main.go", linepos.LineNumber(1), 4, "go")
	assert.Equal(t, "main.go:2:4  (go)\n", out, "line should render one-indexed")

	out = styles.FormatLocation("main.go", linepos.LineNumber(0), 0, "")
	assert.Equal(t, "main.go:1:0\n", out, "empty language omits the tag")
}

func TestFormatSourceContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSourceContext("hello world", 6)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 2)
	assert.Equal(t, "    hello world", lines[0])
	assert.Equal(t, "    "+strings.Repeat(" ", 6)+"^", lines[1])
}

func TestFormatSpanContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	span := linepos.Span{Line: 1, StartCol: 1, EndCol: 3}
	out := styles.FormatSpanContext("bar", span)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 2)
	assert.Equal(t, "    2 | bar", lines[0])
	// 4 indent spaces, then padding for the "2 | " gutter plus StartCol 1.
	assert.Equal(t, strings.Repeat(" ", 9)+"~~", lines[1], "underline covers cols 1..3")
}

func TestFormatSpanContext_ZeroWidth(t *testing.T) {
	styles := pretty.NewStyles(false)

	span := linepos.Span{Line: 0, StartCol: 2, EndCol: 2}
	out := styles.FormatSpanContext("foo", span)

	assert.Contains(t, out, "^", "zero-width span should render a caret")
	assert.NotContains(t, out, "~")
}
