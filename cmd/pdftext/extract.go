// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdftext/internal/extract"
	"github.com/pdiddy/pdftext/internal/manifest"
	"github.com/pdiddy/pdftext/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract text from PDF files and print it with page markers",
	Long: `Extract opens each PDF in order, walks its pages, and prints the text of
every page that has any, preceded by a page marker. A file that cannot be
read produces a single error line; processing always continues with the
next file.

The file list comes from arguments, a YAML manifest (--manifest), or the
extraction.files config key, in that precedence order.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	savePath, _ := cmd.Flags().GetString("save-manifest")

	strict, _ := cmd.Flags().GetBool("strict")
	if !cmd.Flags().Changed("strict") {
		strict = extractionConfig().Strict
	}

	files, err := resolveFiles(args, manifestPath)
	if err != nil {
		return err
	}

	ext, err := newExtractor(cmd)
	if err != nil {
		return err
	}

	result := extract.RunAll(ext, files, os.Stdout)

	if savePath != "" {
		if err := manifest.Write(savePath, files, ext.Name(), result); err != nil {
			return err
		}
	}

	if strict && result.HasFailures() {
		return fmt.Errorf("%d file(s) failed extraction", result.Failed)
	}
	return nil
}

// resolveFiles picks the file list: explicit arguments win, then a manifest,
// then the configured default list.
func resolveFiles(args []string, manifestPath string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if manifestPath != "" {
		m, err := manifest.Read(manifestPath)
		if err != nil {
			return nil, err
		}
		return m.Files, nil
	}
	if files := extractionConfig().Files; len(files) > 0 {
		return files, nil
	}
	return nil, fmt.Errorf("no files to process: pass paths, use --manifest, or set extraction.files")
}

// newExtractor builds the extraction backend selected by flag or config.
func newExtractor(cmd *cobra.Command) (extract.Extractor, error) {
	backend, _ := cmd.Flags().GetString("backend")
	if backend == "" {
		backend = string(extractionConfig().Backend)
	}
	return extract.New(types.ExtractionBackend(backend))
}

// extractionConfig loads the extraction section of the config file.
func extractionConfig() types.ExtractionConfig {
	var cfg types.ExtractionConfig
	_ = viper.UnmarshalKey("extraction", &cfg)
	return cfg
}

func init() {
	extractCmd.Flags().String("backend", "", "extraction backend: ledongthuc, dslipak, or poppler")
	extractCmd.Flags().String("manifest", "", "YAML manifest listing the files to process")
	extractCmd.Flags().String("save-manifest", "", "write the file list and run summary to this YAML manifest")
	extractCmd.Flags().Bool("strict", false, "exit non-zero when any file fails extraction")

	rootCmd.AddCommand(extractCmd)
}
