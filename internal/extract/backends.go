// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"

	"github.com/pdiddy/pdftext/internal/container"
	"github.com/pdiddy/pdftext/pkg/types"
)

// New returns the extractor for the named backend. An empty name selects
// the default (ledongthuc). The poppler backend requires a working docker
// or podman installation with the pdftotext image pulled.
func New(backend types.ExtractionBackend) (Extractor, error) {
	switch backend {
	case types.BackendLedongthuc, "":
		return NewLedongthucExtractor(), nil
	case types.BackendDslipak:
		return NewDslipakExtractor(), nil
	case types.BackendPoppler:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		return NewPopplerExtractor(rt)
	default:
		return nil, fmt.Errorf("unknown backend %q: use ledongthuc, dslipak, or poppler", backend)
	}
}
