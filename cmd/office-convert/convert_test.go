package main

import (
	"path/filepath"
	"testing"
)

func TestBuildTasks(t *testing.T) {
	tests := []struct {
		name      string
		inputs    []string
		output    string
		outputDir string
		to        string
		filter    string
		wantDest  []string
		wantErr   bool
	}{
		{
			name:     "explicit output for single input",
			inputs:   []string{"report.docx"},
			output:   "/srv/out/report.pdf",
			wantDest: []string{"/srv/out/report.pdf"},
		},
		{
			name:    "explicit output rejects multiple inputs",
			inputs:  []string{"a.docx", "b.docx"},
			output:  "out.pdf",
			wantErr: true,
		},
		{
			name:      "batch with --to",
			inputs:    []string{"a.docx", "sub/b.odt"},
			outputDir: "out",
			to:        "pdf",
			wantDest:  []string{filepath.Join("out", "a.pdf"), filepath.Join("out", "b.pdf")},
		},
		{
			name:      "leading dot in --to is tolerated",
			inputs:    []string{"a.docx"},
			outputDir: ".",
			to:        ".pdf",
			wantDest:  []string{"a.pdf"},
		},
		{
			name:    "missing --to without --output",
			inputs:  []string{"a.docx"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := buildTasks(tt.inputs, tt.output, tt.outputDir, tt.to, tt.filter)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tasks) != len(tt.wantDest) {
				t.Fatalf("got %d tasks, want %d", len(tasks), len(tt.wantDest))
			}
			for i, want := range tt.wantDest {
				if tasks[i].Destination != want {
					t.Errorf("tasks[%d].Destination = %q, want %q", i, tasks[i].Destination, want)
				}
			}
		})
	}
}
