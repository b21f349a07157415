package linepos

import "fmt"

// Span is a contiguous byte range confined to a single line. StartCol and
// EndCol are byte offsets from the start of that line, StartCol <= EndCol.
type Span struct {
	Line     LineNumber `json:"line"`
	StartCol int        `json:"startCol"`
	EndCol   int        `json:"endCol"`
}

// Width returns the number of bytes the span covers.
func (s Span) Width() int {
	return s.EndCol - s.StartCol
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.StartCol == s.EndCol
}

// Contains reports whether the given column falls within the span.
func (s Span) Contains(col int) bool {
	return col >= s.StartCol && col < s.EndCol
}

// String renders the span as "line:start-end", with the line one-indexed
// and the columns zero-indexed.
func (s Span) String() string {
	return fmt.Sprintf("%s:%d-%d", s.Line.Display(), s.StartCol, s.EndCol)
}
