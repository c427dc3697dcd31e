package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// spaHandler serves the prebuilt client bundle. Paths that match a real file
// under staticDir are served as-is; everything else falls back to index.html
// so client-side routing works (single-page-app convention). Paths under
// /api never reach the fallback — they get a JSON 404.
type spaHandler struct {
	staticDir string
}

// NewSPAHandler returns the fallback handler for all routes the API router
// did not match. Register it as the router's NotFound handler.
func NewSPAHandler(staticDir string) http.Handler {
	return spaHandler{staticDir: staticDir}
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api") {
		apiNotFound(w, r)
		return
	}

	// Clean with a leading slash first so "../" segments cannot escape staticDir.
	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
