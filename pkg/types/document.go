// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ExtractionStatus indicates the outcome of text extraction for a document.
type ExtractionStatus string

const (
	ExtractionDone   ExtractionStatus = "done"
	ExtractionEmpty  ExtractionStatus = "empty"
	ExtractionFailed ExtractionStatus = "failed"
)

// PageText is the extracted text of a single page. Pages are numbered from 1
// in document order. Text holds the extracted content verbatim, including
// embedded newlines; pages with no extractable text are not represented.
type PageText struct {
	// Number is the 1-based page position in the document.
	Number int `json:"number" yaml:"number"`

	// Text is the extracted plain text.
	Text string `json:"text" yaml:"text"`
}

// DocumentInfo holds structural and Info-dictionary metadata for a PDF file.
type DocumentInfo struct {
	// Path is the filesystem path the document was read from.
	Path string `json:"path" yaml:"path"`

	// Version is the PDF header version (e.g. "1.7").
	Version string `json:"version" yaml:"version"`

	// PageCount is the number of pages in the document.
	PageCount int `json:"page_count" yaml:"page_count"`

	// Encrypted reports whether the document carries an encryption dictionary.
	Encrypted bool `json:"encrypted" yaml:"encrypted"`

	// Title is the Info-dictionary title, if present.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Author is the Info-dictionary author, if present.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Creator is the application that created the original document.
	Creator string `json:"creator,omitempty" yaml:"creator,omitempty"`

	// Producer is the application that produced the PDF.
	Producer string `json:"producer,omitempty" yaml:"producer,omitempty"`

	// Created is the Info-dictionary creation date, if parseable.
	Created time.Time `json:"created" yaml:"created"`

	// Modified is the Info-dictionary modification date, if parseable.
	Modified time.Time `json:"modified" yaml:"modified"`
}
