// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldFiles  = "files"

	// Configuration fields.
	FieldJobs        = "jobs"
	FieldMaxBytes    = "max_bytes"
	FieldMaxLines    = "max_lines"
	FieldAllowBinary = "allow_binary"

	// Statistics fields.
	FieldBytes    = "bytes"
	FieldLines    = "lines"
	FieldEmitted  = "emitted"
	FieldSkipped  = "skipped"
	FieldDuration = "duration"
	FieldBackup   = "backup"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
