// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfinfo reads structural metadata from PDF files: page count,
// header version, encryption flag, and the Info dictionary.
package pdfinfo

import (
	"fmt"
	"io"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcputypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdiddy/pdftext/pkg/types"
)

// Read parses the PDF at path and returns its metadata. The file is
// validated before fields are read, so a malformed document fails here
// rather than producing partial results.
func Read(path string) (*types.DocumentInfo, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, err
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, err
	}

	info := &types.DocumentInfo{
		Path:      path,
		PageCount: ctx.PageCount,
		Encrypted: ctx.Encrypt != nil,
	}
	if ctx.HeaderVersion != nil {
		info.Version = ctx.HeaderVersion.String()
	}

	if ctx.Info != nil {
		if dict, err := ctx.DereferenceDict(*ctx.Info); err == nil {
			info.Title = stringFromDict(dict, "Title")
			info.Author = stringFromDict(dict, "Author")
			info.Creator = stringFromDict(dict, "Creator")
			info.Producer = stringFromDict(dict, "Producer")
			info.Created = parsePDFDate(stringFromDict(dict, "CreationDate"))
			info.Modified = parsePDFDate(stringFromDict(dict, "ModDate"))
		}
	}

	return info, nil
}

// Fprint writes a human-readable metadata block for info to w.
func Fprint(w io.Writer, info *types.DocumentInfo) {
	fmt.Fprintf(w, "File: %s\n", info.Path)
	fmt.Fprintf(w, "Version: %s\n", info.Version)
	fmt.Fprintf(w, "Pages: %d\n", info.PageCount)
	fmt.Fprintf(w, "Encrypted: %t\n", info.Encrypted)
	if info.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", info.Title)
	}
	if info.Author != "" {
		fmt.Fprintf(w, "Author: %s\n", info.Author)
	}
	if info.Creator != "" {
		fmt.Fprintf(w, "Creator: %s\n", info.Creator)
	}
	if info.Producer != "" {
		fmt.Fprintf(w, "Producer: %s\n", info.Producer)
	}
	if !info.Created.IsZero() {
		fmt.Fprintf(w, "Created: %s\n", info.Created.Format(time.RFC3339))
	}
	if !info.Modified.IsZero() {
		fmt.Fprintf(w, "Modified: %s\n", info.Modified.Format(time.RFC3339))
	}
}

func stringFromDict(dict pdfcputypes.Dict, key string) string {
	if dict == nil {
		return ""
	}
	obj := dict[key]
	if obj == nil {
		return ""
	}
	// Info-dictionary strings may be PDFDocEncoded or BOM-prefixed UTF-16BE;
	// pdfcpu's helpers decode both.
	switch v := obj.(type) {
	case pdfcputypes.StringLiteral:
		s, err := pdfcputypes.StringLiteralToString(v)
		if err != nil {
			return ""
		}
		return s
	case pdfcputypes.HexLiteral:
		s, err := pdfcputypes.HexLiteralToString(v)
		if err != nil {
			return ""
		}
		return s
	default:
		return ""
	}
}

// parsePDFDate parses an Info-dictionary date of the form
// D:YYYYMMDDHHmmSS with an optional timezone suffix, which is ignored.
func parsePDFDate(s string) time.Time {
	if len(s) >= 2 && s[:2] == "D:" {
		s = s[2:]
	}
	if len(s) < 14 {
		return time.Time{}
	}
	t, err := time.Parse("20060102150405", s[:14])
	if err != nil {
		return time.Time{}
	}
	return t
}
