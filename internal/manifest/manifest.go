// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest reads and writes YAML file-list manifests. A manifest
// replaces a hard-coded file list: it names the PDFs to process and, after
// a run, records a summary so the same set can be re-run or audited later.
package manifest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdftext/internal/extract"
)

// Manifest is the on-disk representation of an extraction run: the ordered
// file list and, once a run has completed, its summary.
type Manifest struct {
	Files   []string    `yaml:"files"`
	Summary *RunSummary `yaml:"summary,omitempty"`
}

// RunSummary stores per-run statistics and a timestamp.
type RunSummary struct {
	Extracted int       `yaml:"extracted"`
	Empty     int       `yaml:"empty"`
	Failed    int       `yaml:"failed"`
	Backend   string    `yaml:"backend"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Read loads a manifest from disk.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Files) == 0 {
		return nil, fmt.Errorf("manifest %s lists no files", path)
	}
	return &m, nil
}

// Write saves the file list and the outcome of a run to a YAML manifest.
func Write(path string, files []string, backend string, res extract.BatchResult) error {
	m := Manifest{
		Files: files,
		Summary: &RunSummary{
			Extracted: res.Extracted,
			Empty:     res.Empty,
			Failed:    res.Failed,
			Backend:   backend,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
