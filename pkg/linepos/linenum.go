// Package linepos converts absolute byte offsets within a text buffer
// into line numbers, byte columns, and per-line spans.
//
// An Index is built once from a buffer and then answers read-only
// queries. Only '\n' delimits lines; a '\r' preceding the '\n' counts as
// ordinary line content. Columns count bytes, not runes.
package linepos

import "strconv"

// LineNumber identifies a line within a buffer. It is a distinct type so
// that line numbers cannot be accidentally mixed with byte offsets or
// columns. Zero-indexed internally; Display renders the one-indexed form
// people expect in diagnostics.
//
// Values are non-negative and fit in 32 bits.
type LineNumber uint32

// Display returns the one-indexed human-readable form.
func (n LineNumber) Display() string {
	return strconv.FormatUint(uint64(n)+1, 10)
}

// AsIndex returns the zero-indexed value, suitable for indexing into a
// caller's own slice of line texts.
func (n LineNumber) AsIndex() int {
	return int(n)
}

// String implements fmt.Stringer using the one-indexed form.
func (n LineNumber) String() string {
	return n.Display()
}
