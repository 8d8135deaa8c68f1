// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/pdftext/internal/container"
)

const imagePdftotext = "pdftotext:latest"

// pdftotextArgs reads the PDF from stdin and writes layout-preserving text
// to stdout. pdftotext emits a form feed after each page.
var pdftotextArgs = []string{"-layout", "-", "-"}

// PopplerExtractor extracts text by piping the PDF through a pdftotext
// container image. It depends on a container.Runtime (docker or podman)
// injected at construction time.
type PopplerExtractor struct {
	runtime container.Runtime
}

// NewPopplerExtractor creates an extractor that uses the given container
// runtime to run the pdftotext image. It verifies that the image exists
// locally before returning.
func NewPopplerExtractor(rt container.Runtime) (*PopplerExtractor, error) {
	if err := rt.ImageExists(imagePdftotext); err != nil {
		return nil, fmt.Errorf("pdftotext image not available in %s: %w", rt.Name(), err)
	}
	return &PopplerExtractor{runtime: rt}, nil
}

func (e *PopplerExtractor) Name() string { return "poppler" }

// Open pipes the whole PDF through the container once and splits the output
// into pages on pdftotext's form-feed delimiter. Per-page access is then
// served from memory.
func (e *PopplerExtractor) Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out bytes.Buffer
	if err := e.runtime.Run(imagePdftotext, pdftotextArgs, f, &out); err != nil {
		return nil, err
	}

	pages := strings.Split(out.String(), "\f")
	// pdftotext terminates the last page with a form feed as well,
	// leaving an empty trailing element.
	if n := len(pages); n > 0 && pages[n-1] == "" {
		pages = pages[:n-1]
	}

	return &popplerDoc{pages: pages}, nil
}

type popplerDoc struct {
	pages []string
}

func (d *popplerDoc) NumPage() int {
	return len(d.pages)
}

func (d *popplerDoc) PageText(i int) (string, error) {
	if i < 1 || i > len(d.pages) {
		return "", fmt.Errorf("page %d out of range [1, %d]", i, len(d.pages))
	}
	return d.pages[i-1], nil
}

func (d *popplerDoc) Close() error {
	return nil
}
