// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// Binary is an explicit path to the soffice executable. When empty the
	// converter probes the standard installation directories.
	Binary string `json:"binary,omitempty" yaml:"binary,omitempty"`

	// TempDir is the base directory for per-call work directories. When
	// empty the platform temp directory is used.
	TempDir string `json:"temp_dir,omitempty" yaml:"temp_dir,omitempty"`

	// Command overrides the command template. Tokens wrapped in % are
	// placeholders (%bin%, %convert_to%, %outdir%, %source%).
	Command []string `json:"command,omitempty" yaml:"command,omitempty"`

	// Jobs is the number of conversions run concurrently in batch mode
	// (default 1).
	Jobs int `json:"jobs" yaml:"jobs"`
}

// JournalConfig holds settings for the conversion journal.
type JournalConfig struct {
	// Path is the SQLite database file recording conversion history.
	// An empty path disables the journal.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// MaxResults is the default maximum number of history entries returned
	// by queries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all configuration for the office-convert CLI.
type Config struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}
