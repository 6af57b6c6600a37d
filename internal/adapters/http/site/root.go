// Package site serves the embedded calculator page. The page is the
// input-collection and chart-rendering side of the system: the Go service
// only ever hands it validated records and labels over the JSON API.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("site serve failed")
)

// Register attaches the embedded calculator page routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the embedded calculator page at root /
	files := http.FileServer(FS())
	mux.Handle("/", files)
}
