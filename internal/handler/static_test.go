package handler_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccluneyz/coffeeco/backend/internal/handler"
)

// newStaticDir creates a throwaway client bundle with an index page and one asset.
func newStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>coffeeco</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.css"), []byte("body{}"), 0o644))
	return dir
}

// TestSPAHandler_ServesExistingFile verifies that a path matching a real file
// is served as-is rather than falling back to index.html.
func TestSPAHandler_ServesExistingFile(t *testing.T) {
	h := handler.NewSPAHandler(newStaticDir(t))

	req := httptest.NewRequest(http.MethodGet, "/styles.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
}

// TestSPAHandler_FallsBackToIndex verifies the single-page-app convention:
// unknown non-API routes get index.html so client-side routing can take over.
func TestSPAHandler_FallsBackToIndex(t *testing.T) {
	h := handler.NewSPAHandler(newStaticDir(t))

	req := httptest.NewRequest(http.MethodGet, "/favorites/nested/route", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "coffeeco")
}

// TestSPAHandler_APIPathGetsJSON404 verifies that unmatched /api paths never
// receive the HTML fallback.
func TestSPAHandler_APIPathGetsJSON404(t *testing.T) {
	h := handler.NewSPAHandler(newStaticDir(t))

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Body.String(), "API endpoint not found")
}

// TestSPAHandler_TraversalCannotEscapeRoot verifies that "../" path segments
// stay inside the static directory.
func TestSPAHandler_TraversalCannotEscapeRoot(t *testing.T) {
	dir := newStaticDir(t)
	// Place a file just outside the static root.
	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))

	h := handler.NewSPAHandler(dir)

	req := httptest.NewRequest(http.MethodGet, "/../secret.txt", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.NotContains(t, rec.Body.String(), "secret")
}
