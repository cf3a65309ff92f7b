// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package office

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// fakeInfo is a minimal fs.FileInfo for the mock prober.
type fakeInfo struct {
	name string
	dir  bool
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() fs.FileMode  { return 0o755 }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.dir }
func (f fakeInfo) Sys() any           { return nil }

// mockProber reports existence for a fixed set of paths.
type mockProber struct {
	files map[string]bool // path -> isDir
}

func (m *mockProber) Stat(path string) (fs.FileInfo, error) {
	isDir, ok := m.files[path]
	if !ok {
		return nil, errors.New("stat " + path + ": no such file")
	}
	return fakeInfo{name: path, dir: isDir}, nil
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		override string
		files    map[string]bool
		want     string
		wantErr  bool
	}{
		{
			name:  "soffice in first candidate dir",
			files: map[string]bool{"/usr/bin/soffice": false},
			want:  "/usr/bin/soffice",
		},
		{
			name:  "soffice.bin fallback in same dir",
			files: map[string]bool{"/usr/bin/soffice.bin": false},
			want:  "/usr/bin/soffice.bin",
		},
		{
			name:  "later dir wins when earlier dirs empty",
			files: map[string]bool{"/opt/libreoffice/program/soffice": false},
			want:  "/opt/libreoffice/program/soffice",
		},
		{
			name: "soffice preferred over soffice.bin",
			files: map[string]bool{
				"/usr/local/bin/soffice":     false,
				"/usr/local/bin/soffice.bin": false,
			},
			want: "/usr/local/bin/soffice",
		},
		{
			name:    "nothing found anywhere",
			files:   map[string]bool{},
			wantErr: true,
		},
		{
			name:     "override exists",
			override: "/custom/soffice",
			files:    map[string]bool{"/custom/soffice": false},
			want:     "/custom/soffice",
		},
		{
			name:     "override missing",
			override: "/custom/soffice",
			files:    map[string]bool{},
			wantErr:  true,
		},
		{
			name:     "override is a directory",
			override: "/usr/bin",
			files:    map[string]bool{"/usr/bin": true},
			wantErr:  true,
		},
		{
			name: "directory named soffice is skipped",
			files: map[string]bool{
				"/usr/bin/soffice":       true,
				"/usr/local/bin/soffice": false,
			},
			want: "/usr/local/bin/soffice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := locate(tt.override, &mockProber{files: tt.files})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrBinaryNotFound) {
					t.Errorf("error should wrap ErrBinaryNotFound, got: %v", err)
				}
				if !strings.Contains(err.Error(), "soffice") {
					t.Errorf("error should mention soffice, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("path = %q, want %q", got, tt.want)
			}
		})
	}
}
