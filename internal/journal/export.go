// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// WriteYAML writes entries to w as a YAML document.
func WriteYAML(w io.Writer, entries []Entry) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON writes entries to w as indented JSON.
func WriteJSON(w io.Writer, entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteTable writes entries to w as aligned plain-text rows.
func WriteTable(w io.Writer, entries []Entry) {
	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "FAILED"
		}
		fmt.Fprintf(w, "%-6s %s  %s -> %s (%s, %dms)\n",
			status, e.StartedAt.Format("2006-01-02 15:04:05"), e.Source, e.Destination, e.Format, e.DurationMS)
	}
}
