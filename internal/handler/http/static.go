package http

import (
	"net/http"
	"os"
	"path/filepath"
)

// static serves the single-page-app assets for every path no API route
// claimed. Existing files under the static directory are served as-is;
// anything else falls back to index.html so client-side routing works on a
// full page reload.
func (h *Handler) static(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	// Clean with a leading slash keeps the path inside the static dir.
	requested := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		http.ServeFile(w, r, requested)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
