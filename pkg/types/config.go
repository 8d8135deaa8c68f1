// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the PDF text-extraction library.
type ExtractionBackend string

const (
	BackendLedongthuc ExtractionBackend = "ledongthuc"
	BackendDslipak    ExtractionBackend = "dslipak"
	BackendPoppler    ExtractionBackend = "poppler"
)

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	// Backend selects the extraction library: ledongthuc, dslipak, or poppler.
	Backend ExtractionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Files is the default list of PDF paths processed when no arguments
	// or manifest are given.
	Files []string `json:"files" yaml:"files" mapstructure:"files"`

	// Strict makes the extract command exit non-zero when any file fails.
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`
}

// CatalogConfig holds settings for the extraction catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding the SQLite database and exports.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir" mapstructure:"catalog_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups all stage configurations for the tool.
type Config struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog"`
}
