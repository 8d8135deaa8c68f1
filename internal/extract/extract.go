// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract runs per-file PDF text extraction and prints the results
// with file and page delimiters. Different libraries (ledongthuc, dslipak,
// poppler) implement the Extractor interface.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pdftext/pkg/types"
)

// Document is an opened PDF exposing a finite, forward-only walk over its
// pages. Pages are addressed by 1-based position.
type Document interface {
	// NumPage returns the number of pages in the document.
	NumPage() int

	// PageText returns the plain text of page i (1-based), or an empty
	// string when the page has no extractable text.
	PageText(i int) (string, error)

	// Close releases the underlying file handle.
	Close() error
}

// Extractor opens a PDF file for text extraction. The parsing algorithm
// (layout analysis, font and encoding handling) is entirely the backend's
// concern.
type Extractor interface {
	// Name returns the backend name ("ledongthuc", "dslipak", "poppler").
	Name() string

	// Open acquires a document handle for the file at path.
	Open(path string) (Document, error)
}

// FileResult is the per-file outcome of an extraction run: either the pages
// that yielded text, or the error that stopped processing of that file.
type FileResult struct {
	Path  string
	Pages []types.PageText
	Err   error

	// NumPages is the document's total page count, including pages that
	// yielded no text. Zero when the file could not be opened.
	NumPages int
}

// Status maps the result to an ExtractionStatus.
func (r FileResult) Status() types.ExtractionStatus {
	switch {
	case r.Err != nil:
		return types.ExtractionFailed
	case len(r.Pages) == 0:
		return types.ExtractionEmpty
	default:
		return types.ExtractionDone
	}
}

// BatchResult holds the outcome of an extraction run over a file list.
type BatchResult struct {
	Extracted int
	Empty     int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Extracted + r.Empty + r.Failed
}

// HasFailures reports whether any files failed extraction.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

var separator = strings.Repeat("=", 80)

// ExtractFile processes a single file: it prints the file banner, then each
// page's text as it is extracted, prefixed with a page marker. Pages with no
// extractable text are skipped silently; any non-empty text, including
// whitespace-only text, is printed verbatim. Any failure while opening or
// reading pages prints a single error line and stops processing of this
// file; pages already printed stay printed. The document handle is released
// on every exit path.
func ExtractFile(ext Extractor, path string, w io.Writer) FileResult {
	fmt.Fprintf(w, "\n%s\nFILE: %s\n%s\n", separator, path, separator)

	res := FileResult{Path: path}

	doc, err := ext.Open(path)
	if err != nil {
		fmt.Fprintf(w, "Error reading %s: %v\n", path, err)
		res.Err = err
		return res
	}
	defer doc.Close()

	res.NumPages = doc.NumPage()
	for i := 1; i <= res.NumPages; i++ {
		text, err := doc.PageText(i)
		if err != nil {
			fmt.Fprintf(w, "Error reading %s: %v\n", path, err)
			res.Err = err
			return res
		}
		if text == "" {
			continue
		}
		fmt.Fprintf(w, "\n--- Page %d ---\n%s\n", i, text)
		res.Pages = append(res.Pages, types.PageText{Number: i, Text: text})
	}

	return res
}

// RunAll processes every file in order, isolating failures per file: a file
// that cannot be opened or read produces one error line and never prevents
// subsequent files from being processed. Output is strictly sequential, in
// file-list order and page order within a file. RunAll prints no trailing
// summary; the returned counts are for callers that need one.
func RunAll(ext Extractor, files []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, path := range files {
		res := ExtractFile(ext, path, w)
		switch res.Status() {
		case types.ExtractionDone:
			result.Extracted++
		case types.ExtractionEmpty:
			result.Empty++
		case types.ExtractionFailed:
			result.Failed++
		}
	}
	return result
}

// Collect extracts all pages of a single file without printing. It is used
// by the catalog indexer, which persists pages instead of streaming them to
// stdout. Pages with no extractable text are omitted, matching ExtractFile.
func Collect(ext Extractor, path string) FileResult {
	res := FileResult{Path: path}

	doc, err := ext.Open(path)
	if err != nil {
		res.Err = err
		return res
	}
	defer doc.Close()

	res.NumPages = doc.NumPage()
	for i := 1; i <= res.NumPages; i++ {
		text, err := doc.PageText(i)
		if err != nil {
			res.Err = err
			return res
		}
		if text == "" {
			continue
		}
		res.Pages = append(res.Pages, types.PageText{Number: i, Text: text})
	}

	return res
}
