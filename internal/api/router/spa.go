package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// spaHandler serves the static site, falling back to index.html for any
// unmatched GET so client-side routes survive a refresh. Unmatched API
// paths get a JSON 404 instead of the main page.
type spaHandler struct {
	publicDir string
}

func NewSPAHandler(publicDir string) http.Handler {
	return &spaHandler{publicDir: publicDir}
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") || r.Method != http.MethodGet {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`))
		return
	}

	// Keep stale admin assets out of caches.
	if r.URL.Path == "/admin.html" || r.URL.Path == "/admin.js" {
		w.Header().Set("Cache-Control", "no-store")
	}

	path := filepath.Join(h.publicDir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.publicDir, "index.html"))
}
