// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office locates the LibreOffice executable on the local system.
package office

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrBinaryNotFound is returned when no usable soffice executable was
// supplied or discovered. It is a construction-time error: a Converter
// cannot exist without a binary.
var ErrBinaryNotFound = errors.New("soffice binary not found")

// candidateDirs lists the installation directories probed, in order, when
// no explicit binary path is supplied.
var candidateDirs = []string{
	"/usr/bin",
	"/usr/local/bin",
	"/opt/libreoffice/program",
}

// binaryNames lists the executable names probed inside each candidate
// directory, in order.
var binaryNames = []string{"soffice", "soffice.bin"}

// prober abstracts filesystem stat calls for testing.
type prober interface {
	Stat(path string) (fs.FileInfo, error)
}

// osProber is the production prober backed by the os package.
type osProber struct{}

func (osProber) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

var defaultProber prober = osProber{}

// Locate resolves the path to the soffice executable. A non-empty override
// is verified to exist and returned as-is. Otherwise each candidate
// directory is probed for soffice then soffice.bin and the first existing
// regular file wins. When nothing is found Locate returns a
// ErrBinaryNotFound wrapped with the probed locations.
func Locate(override string) (string, error) {
	return locate(override, defaultProber)
}

func locate(override string, p prober) (string, error) {
	if override != "" {
		info, err := p.Stat(override)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%w: %s does not exist or is not a file", ErrBinaryNotFound, override)
		}
		return override, nil
	}

	for _, dir := range candidateDirs {
		for _, name := range binaryNames {
			path := filepath.Join(dir, name)
			info, err := p.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: probed %v for %v", ErrBinaryNotFound, candidateDirs, binaryNames)
}
