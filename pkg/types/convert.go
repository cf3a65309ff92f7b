// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Status indicates the outcome of a single conversion.
type Status string

const (
	StatusDone    Status = "converted"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Task describes one file conversion: where the input lives, where the
// output should end up, and an optional export filter for the external tool.
type Task struct {
	// Source is the path to the input document.
	Source string `json:"source" yaml:"source"`

	// Destination is the path the converted file is moved to. Its extension
	// selects the target format.
	Destination string `json:"destination" yaml:"destination"`

	// Filter is an optional export filter appended to the format token as
	// "<format>:<filter>" (e.g. "pdf:writer_pdf_Export").
	Filter string `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// Result holds the structured outcome of a conversion attempt.
//
// Success is the authoritative verdict: true only when the expected output
// file appeared and was moved to the destination. The exit code and stderr
// of the external tool are carried for diagnostics but never influence
// Success; LibreOffice is known to exit zero while producing nothing.
type Result struct {
	// Task echoes the request that produced this result.
	Task Task `json:"task" yaml:"task"`

	// Success reports whether the destination file was produced.
	Success bool `json:"success" yaml:"success"`

	// Format is the convert_to token passed to the external tool,
	// including the filter suffix when one was supplied.
	Format string `json:"format" yaml:"format"`

	// ExitCode is the external process exit code, or -1 when the process
	// could not be started at all.
	ExitCode int `json:"exit_code" yaml:"exit_code"`

	// Stderr is the captured standard error output of the external tool.
	Stderr string `json:"stderr,omitempty" yaml:"stderr,omitempty"`

	// Command is the rendered argument vector that was executed.
	Command []string `json:"command,omitempty" yaml:"command,omitempty"`

	// StartedAt is when the conversion began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Duration is the wall-clock time of the whole conversion, including
	// the move to the destination.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Status maps the boolean verdict onto a Status value.
func (r Result) Status() Status {
	if r.Success {
		return StatusDone
	}
	return StatusFailed
}
