package linepos_test

import (
	"fmt"
	"testing"

	"github.com/yaklabco/linepos/pkg/linepos"
)

func TestLineNumber_Display(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     linepos.LineNumber
		expected string
	}{
		{0, "1"},
		{1, "2"},
		{41, "42"},
	}

	for _, testCase := range tests {
		if got := testCase.line.Display(); got != testCase.expected {
			t.Errorf("LineNumber(%d).Display(): expected %q, got %q",
				testCase.line.AsIndex(), testCase.expected, got)
		}
	}
}

func TestLineNumber_AsIndex(t *testing.T) {
	t.Parallel()

	if got := linepos.LineNumber(7).AsIndex(); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestLineNumber_Comparable(t *testing.T) {
	t.Parallel()

	// Line numbers order and hash like the integers they wrap.
	if !(linepos.LineNumber(1) < linepos.LineNumber(2)) {
		t.Error("expected line 1 < line 2")
	}

	seen := map[linepos.LineNumber]int{}
	seen[3]++
	seen[3]++
	if seen[3] != 2 {
		t.Errorf("expected map count 2, got %d", seen[3])
	}
}

func TestLineNumber_String(t *testing.T) {
	t.Parallel()

	if got := fmt.Sprintf("line %s", linepos.LineNumber(0)); got != "line 1" {
		t.Errorf("expected %q, got %q", "line 1", got)
	}
}

func TestSpan_Helpers(t *testing.T) {
	t.Parallel()

	span := linepos.Span{Line: 1, StartCol: 2, EndCol: 5}

	if got := span.Width(); got != 3 {
		t.Errorf("Width: expected 3, got %d", got)
	}
	if span.IsEmpty() {
		t.Error("expected non-empty span")
	}
	if !span.Contains(2) || span.Contains(5) {
		t.Error("Contains should include StartCol and exclude EndCol")
	}
	if got := span.String(); got != "2:2-5" {
		t.Errorf("String: expected %q, got %q", "2:2-5", got)
	}

	empty := linepos.Span{Line: 0, StartCol: 4, EndCol: 4}
	if !empty.IsEmpty() || empty.Width() != 0 {
		t.Error("expected zero-width span to be empty")
	}
}
