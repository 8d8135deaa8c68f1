// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"

	"github.com/ledongthuc/pdf"
)

// LedongthucExtractor extracts text with github.com/ledongthuc/pdf. It is
// the default backend: pure Go, reads only the embedded text layer. Scanned
// (image-only) PDFs yield empty pages.
type LedongthucExtractor struct{}

// NewLedongthucExtractor returns the default extraction backend.
func NewLedongthucExtractor() *LedongthucExtractor {
	return &LedongthucExtractor{}
}

func (e *LedongthucExtractor) Name() string { return "ledongthuc" }

// Open opens the PDF at path. The returned document owns the file handle.
func (e *LedongthucExtractor) Open(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &ledongthucDoc{
		f:     f,
		r:     r,
		fonts: make(map[string]*pdf.Font),
	}, nil
}

// ledongthucDoc wraps a pdf.Reader. The font cache is shared across pages;
// re-parsing font descriptors per page is the library's main cost.
type ledongthucDoc struct {
	f     *os.File
	r     *pdf.Reader
	fonts map[string]*pdf.Font
}

func (d *ledongthucDoc) NumPage() int {
	return d.r.NumPage()
}

func (d *ledongthucDoc) PageText(i int) (string, error) {
	p := d.r.Page(i)
	if p.V.IsNull() {
		return "", nil
	}
	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			font := p.Font(name)
			d.fonts[name] = &font
		}
	}
	return p.GetPlainText(d.fonts)
}

func (d *ledongthucDoc) Close() error {
	return d.f.Close()
}
