// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"github.com/dslipak/pdf"
)

// DslipakExtractor extracts text with github.com/dslipak/pdf. Same API
// family as the default backend but with different tolerance for malformed
// cross-reference tables; useful as a second opinion on files the default
// backend rejects.
type DslipakExtractor struct{}

// NewDslipakExtractor returns the dslipak extraction backend.
func NewDslipakExtractor() *DslipakExtractor {
	return &DslipakExtractor{}
}

func (e *DslipakExtractor) Name() string { return "dslipak" }

// Open opens the PDF at path. The library reads the whole file on open, so
// the returned document holds no file handle.
func (e *DslipakExtractor) Open(path string) (Document, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &dslipakDoc{r: r}, nil
}

type dslipakDoc struct {
	r *pdf.Reader
}

func (d *dslipakDoc) NumPage() int {
	return d.r.NumPage()
}

func (d *dslipakDoc) PageText(i int) (string, error) {
	p := d.r.Page(i)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}

func (d *dslipakDoc) Close() error {
	return nil
}
