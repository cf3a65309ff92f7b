// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives document conversion through the LibreOffice
// command-line tool. It owns no format knowledge of its own: it renders a
// command template, runs the external binary, and relocates the file the
// binary is expected to produce.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/office-convert/internal/office"
	"github.com/pdiddy/office-convert/pkg/types"
)

var (
	// ErrInputNotFound is returned by Convert when no source is configured
	// or the configured source does not exist on disk.
	ErrInputNotFound = errors.New("input file not found")

	// ErrOutputNotConfigured is returned by Convert when no destination is
	// configured.
	ErrOutputNotConfigured = errors.New("output file not configured")
)

// workDirPrefix names the per-call work directories created under the
// base temp path.
const workDirPrefix = "office-convert-"

// runner abstracts external process execution for testing.
type runner interface {
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osRunner is the production runner backed by os/exec.
type osRunner struct{}

func (osRunner) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Converter converts documents by shelling out to soffice. The binary path
// is resolved once at construction; source, destination, temp path, and
// command template are configured through chainable setters. Configuration
// is read-only during Convert, so distinct Converter instances (or the same
// instance, if not reconfigured) may convert concurrently: every call owns
// a uniquely named work directory.
type Converter struct {
	bin      string
	tempPath string
	command  []string
	source   string
	dest     string
	run      runner
}

// New creates a Converter. A non-empty binary path overrides discovery;
// otherwise the standard installation directories are probed. The base temp
// path is resolved once here from the platform temp directory and can be
// overridden with SetTempPath.
func New(binary string) (*Converter, error) {
	bin, err := office.Locate(binary)
	if err != nil {
		return nil, err
	}
	return &Converter{
		bin:      bin,
		tempPath: trimSeparator(os.TempDir()),
		command:  DefaultCommand(),
		run:      osRunner{},
	}, nil
}

// Binary returns the resolved soffice path.
func (c *Converter) Binary() string { return c.bin }

// SetTempPath overrides the base directory for per-call work directories.
func (c *Converter) SetTempPath(path string) *Converter {
	c.tempPath = trimSeparator(path)
	return c
}

// TempPath returns the base directory for per-call work directories.
func (c *Converter) TempPath() string { return c.tempPath }

// SetCommand overrides the command template.
func (c *Converter) SetCommand(tokens []string) *Converter {
	c.command = append([]string(nil), tokens...)
	return c
}

// Command returns a copy of the command template.
func (c *Converter) Command() []string {
	return append([]string(nil), c.command...)
}

// From sets the source document path.
func (c *Converter) From(path string) *Converter {
	c.source = path
	return c
}

// To sets the destination path. Its extension selects the target format.
func (c *Converter) To(path string) *Converter {
	c.dest = path
	return c
}

// Convert runs the external tool and moves its output to the destination.
//
// The returned error is non-nil only for precondition failures: a missing
// or unset source (ErrInputNotFound) or an unset destination
// (ErrOutputNotConfigured). Every external failure mode — tool crash,
// nonzero exit, output under an unexpected name, failed move — yields a nil
// error and Result.Success == false; the exit code and captured stderr in
// the Result are the only diagnostics. Success is determined solely by the
// expected output file appearing and being moved, never by the exit code.
func (c *Converter) Convert(ctx context.Context, filter string) (types.Result, error) {
	start := time.Now()
	res := types.Result{
		Task:      types.Task{Source: c.source, Destination: c.dest, Filter: filter},
		ExitCode:  -1,
		StartedAt: start.UTC(),
	}

	if c.source == "" {
		return res, fmt.Errorf("%w: no source configured", ErrInputNotFound)
	}
	if info, err := os.Stat(c.source); err != nil || info.IsDir() {
		return res, fmt.Errorf("%w: %s", ErrInputNotFound, c.source)
	}
	if c.dest == "" {
		return res, fmt.Errorf("%w: call To before Convert", ErrOutputNotConfigured)
	}

	format := strings.TrimPrefix(filepath.Ext(c.dest), ".")
	convertTo := format
	if filter != "" {
		convertTo = format + ":" + filter
	}
	res.Format = convertTo

	outDir := filepath.Join(c.tempPath, workDirPrefix+uuid.NewString())
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		res.Stderr = err.Error()
		res.Duration = time.Since(start)
		return res, nil
	}
	// Non-recursive on purpose: stray files the tool leaves behind keep the
	// directory around rather than being destroyed silently.
	defer func() { _ = os.Remove(outDir) }()

	// The external tool names its output after the source, with the target
	// format's extension. This is an assumption about soffice behavior, not
	// something the wrapper controls.
	base := strings.TrimSuffix(filepath.Base(c.source), filepath.Ext(c.source))
	expected := filepath.Join(outDir, base+"."+format)

	argv := renderCommand(c.command, map[string]string{
		placeholderBin:       c.bin,
		placeholderConvertTo: convertTo,
		placeholderOutdir:    outDir,
		placeholderSource:    c.source,
	})
	res.Command = argv

	if len(argv) > 0 {
		var stderr bytes.Buffer
		err := c.run.Run(ctx, argv[0], argv[1:], io.Discard, &stderr)
		res.Stderr = strings.TrimSpace(stderr.String())
		res.ExitCode = exitCode(err)
	}

	if _, err := os.Stat(expected); err != nil {
		res.Duration = time.Since(start)
		return res, nil
	}

	if err := os.MkdirAll(filepath.Dir(c.dest), 0o755); err != nil {
		res.Duration = time.Since(start)
		return res, nil
	}
	if err := moveFile(expected, c.dest); err != nil {
		res.Duration = time.Since(start)
		return res, nil
	}

	res.Success = true
	res.Duration = time.Since(start)
	return res, nil
}

// Do converts a single task with a fresh configuration snapshot, leaving
// the receiver's source and destination untouched. Batch callers use this
// so one Converter can serve many tasks concurrently.
func (c *Converter) Do(ctx context.Context, task types.Task) types.Result {
	clone := &Converter{
		bin:      c.bin,
		tempPath: c.tempPath,
		command:  c.Command(),
		source:   task.Source,
		dest:     task.Destination,
		run:      c.run,
	}
	res, err := clone.Convert(ctx, task.Filter)
	if err != nil {
		res.Stderr = err.Error()
	}
	return res
}

// exitCode maps a process error onto an exit code: 0 on success, the
// process's code when it ran and failed, -1 when it never started.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// moveFile renames src to dst, falling back to copy-and-remove when the
// two paths live on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return os.Remove(src)
}

// trimSeparator strips trailing path separators from a base path so joins
// never produce doubled separators.
func trimSeparator(path string) string {
	trimmed := strings.TrimRight(path, string(os.PathSeparator))
	if trimmed == "" {
		return path
	}
	return trimmed
}
