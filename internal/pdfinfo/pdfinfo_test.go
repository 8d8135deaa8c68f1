// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfinfo

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pdfcputypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdiddy/pdftext/pkg/types"
)

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.pdf")
	if err := os.WriteFile(path, []byte("just text, no PDF header"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for non-PDF content")
	}
}

func TestStringFromDict(t *testing.T) {
	dict := pdfcputypes.Dict{
		"Title":    pdfcputypes.StringLiteral("Plain Title"),
		"Author":   pdfcputypes.HexLiteral("506C61696E20417574686F72"),
		"Creator":  pdfcputypes.StringLiteral("\xfe\xff\x00W\x00o\x00r\x00d"),
		"Producer": pdfcputypes.HexLiteral("FEFF004C0061005400650058"),
		"Count":    pdfcputypes.Integer(3),
	}

	tests := []struct {
		key  string
		want string
	}{
		{"Title", "Plain Title"},
		{"Author", "Plain Author"},
		{"Creator", "Word"},
		// UTF-16BE hex values decode through the BOM instead of
		// surfacing raw hex digits.
		{"Producer", "LaTeX"},
		{"Count", ""},
		{"Missing", ""},
	}
	for _, tt := range tests {
		if got := stringFromDict(dict, tt.key); got != tt.want {
			t.Errorf("stringFromDict(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if got := stringFromDict(nil, "Title"); got != "" {
		t.Errorf("nil dict should yield empty string, got %q", got)
	}
}

func TestParsePDFDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "full date with prefix",
			in:   "D:20240115093045",
			want: time.Date(2024, 1, 15, 9, 30, 45, 0, time.UTC),
		},
		{
			name: "date with timezone suffix ignored",
			in:   "D:20231201000000+01'00",
			want: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "without prefix",
			in:   "20220630120000",
			want: time.Date(2022, 6, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "too short",
			in:   "D:2024",
			want: time.Time{},
		},
		{
			name: "empty",
			in:   "",
			want: time.Time{},
		},
		{
			name: "garbage",
			in:   "D:not-a-date-here",
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parsePDFDate(tt.in); !got.Equal(tt.want) {
				t.Errorf("parsePDFDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	info := &types.DocumentInfo{
		Path:      "report.pdf",
		Version:   "1.7",
		PageCount: 12,
		Title:     "Quarterly Report",
		Producer:  "LaTeX",
	}

	var out bytes.Buffer
	Fprint(&out, info)
	got := out.String()

	for _, want := range []string{
		"File: report.pdf",
		"Version: 1.7",
		"Pages: 12",
		"Encrypted: false",
		"Title: Quarterly Report",
		"Producer: LaTeX",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// Empty optional fields are omitted entirely.
	if strings.Contains(got, "Author:") {
		t.Error("empty author should not be printed")
	}
	if strings.Contains(got, "Created:") {
		t.Error("zero creation date should not be printed")
	}
}
