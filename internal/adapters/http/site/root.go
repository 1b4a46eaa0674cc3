// Package site serves the embedded signup web page.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded site routes to mux. The file server owns
// the root path, so it must be registered alongside more specific routes.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.FileServer(FS())
	mux.Handle("/", files)
}
