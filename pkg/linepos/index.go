package linepos

import (
	"fmt"
	"sort"
	"strings"
)

// lineBounds is the byte range of a single line. start is the offset of
// the line's first byte; end is the offset of its trailing newline byte,
// or one past the last byte for the final line.
type lineBounds struct {
	start int
	end   int
}

// Index maps byte offsets in a text buffer to line-relative positions.
// It stores only line boundary offsets, never the text itself, and is
// immutable after construction, so concurrent readers need no locking.
//
// Lines are delimited by '\n' only. A '\r' immediately before the '\n'
// is treated as ordinary line content; callers that care about CRLF
// widths must account for the '\r' themselves.
type Index struct {
	// bounds holds one entry per line in ascending, contiguous,
	// non-overlapping order. Never empty: even an empty buffer has one
	// line spanning (0, 0).
	bounds []lineBounds
}

// NewIndex builds an Index from text. The buffer is scanned once and not
// retained. A buffer ending in '\n' yields a final empty line past the
// last newline; an empty buffer yields a single line spanning (0, 0).
func NewIndex(text string) *Index {
	bounds := make([]lineBounds, 0, strings.Count(text, "\n")+1)

	lineStart := 0
	for {
		nl := strings.IndexByte(text[lineStart:], '\n')
		if nl < 0 {
			bounds = append(bounds, lineBounds{start: lineStart, end: len(text)})
			break
		}
		bounds = append(bounds, lineBounds{start: lineStart, end: lineStart + nl})
		lineStart += nl + 1
	}

	return &Index{bounds: bounds}
}

// LineCount returns the number of lines in the indexed buffer, counting
// the empty line after a trailing newline.
func (ix *Index) LineCount() int {
	return len(ix.bounds)
}

// Bound returns the largest valid offset for queries against this index.
func (ix *Index) Bound() int {
	return ix.bounds[len(ix.bounds)-1].end
}

// Line returns the line containing offset. Offsets from 0 up to and
// including Bound() are valid; anything else fails with an
// *OutOfBoundsError rather than being clamped.
func (ix *Index) Line(offset int) (LineNumber, error) {
	if offset < 0 || offset > ix.Bound() {
		return 0, &OutOfBoundsError{Offset: offset, Bound: ix.Bound()}
	}

	// A line precedes the offset when its end is below it and follows
	// when its start is above it. Bounds are contiguous, so exactly one
	// line contains any in-bounds offset.
	idx := sort.Search(len(ix.bounds), func(i int) bool {
		return ix.bounds[i].end >= offset
	})

	if idx >= len(ix.bounds) || ix.bounds[idx].start > offset {
		// Unreachable if construction is correct; a miss here means the
		// index itself is corrupt, which no caller input can cause.
		panic(fmt.Sprintf("linepos: no line contains in-bounds offset %d", offset))
	}

	return LineNumber(idx), nil
}

// Position returns the line containing offset together with the byte
// column within that line.
func (ix *Index) Position(offset int) (LineNumber, int, error) {
	line, err := ix.Line(offset)
	if err != nil {
		return 0, 0, err
	}
	return line, offset - ix.bounds[line.AsIndex()].start, nil
}

// Spans converts the region [regionStart, regionEnd] into single-line
// spans, one per line the region touches. Joining the covered text with
// '\n' reconstructs the exact region. A zero-width region yields a
// single zero-width span.
func (ix *Index) Spans(regionStart, regionEnd int) ([]Span, error) {
	if regionStart > regionEnd {
		return nil, &InvalidRangeError{Start: regionStart, End: regionEnd}
	}

	first, err := ix.Line(regionStart)
	if err != nil {
		return nil, err
	}
	last, err := ix.Line(regionEnd)
	if err != nil {
		return nil, err
	}

	spans := make([]Span, 0, int(last-first)+1)
	for n := first; n <= last; n++ {
		b := ix.bounds[n.AsIndex()]

		startCol := 0
		if regionStart > b.start {
			startCol = regionStart - b.start
		}
		endCol := b.end - b.start
		if regionEnd < b.end {
			endCol = regionEnd - b.start
		}

		spans = append(spans, Span{Line: n, StartCol: startCol, EndCol: endCol})
	}

	return spans, nil
}

// SpansRelativeTo translates a region expressed in this index's own
// coordinates into the coordinate space of an enclosing buffer, given
// the anchor span where this buffer's text begins within it.
//
// Spans on the first line share a physical line with whatever precedes
// the anchor, so their columns shift by the anchor's start column. Later
// lines start at column zero in both coordinate spaces and only their
// line numbers shift.
func (ix *Index) SpansRelativeTo(anchor Span, regionStart, regionEnd int) ([]Span, error) {
	inner, err := ix.Spans(regionStart, regionEnd)
	if err != nil {
		return nil, err
	}

	spans := make([]Span, 0, len(inner))
	for _, sp := range inner {
		if sp.Line == 0 {
			spans = append(spans, Span{
				Line:     anchor.Line,
				StartCol: anchor.StartCol + sp.StartCol,
				EndCol:   anchor.StartCol + sp.EndCol,
			})
			continue
		}
		spans = append(spans, Span{
			Line:     anchor.Line + sp.Line,
			StartCol: sp.StartCol,
			EndCol:   sp.EndCol,
		})
	}

	return spans, nil
}
