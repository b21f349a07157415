package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldSize  = "size"

	// Position fields.
	FieldOffset   = "offset"
	FieldStart    = "start"
	FieldEnd      = "end"
	FieldLine     = "line"
	FieldColumn   = "column"
	FieldBound    = "bound"
	FieldSpans    = "spans"
	FieldLanguage = "language"

	// Configuration fields.
	FieldFormat = "format"
	FieldColor  = "color"
	FieldConfig = "config"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
