package handler

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// StaticHandler serves files from a public directory and answers every
// other request with the directory's index.html, so client-side routes
// resolve to the front end instead of a 404.
type StaticHandler struct {
	root string
	fs   http.FileSystem
}

// NewStaticHandler creates a StaticHandler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{root: dir, fs: http.Dir(dir)}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		if h.serveFile(w, r, r.URL.Path) {
			return
		}
	}
	h.serveIndex(w, r)
}

// serveFile serves the file (or directory index) at urlPath and reports
// whether it did. Dotfiles are never served.
func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, urlPath string) bool {
	name := path.Clean("/" + urlPath)
	if hasDotSegment(name) {
		return false
	}

	f, err := h.fs.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	if info.IsDir() {
		idx, err := h.fs.Open(path.Join(name, indexFile))
		if err != nil {
			return false
		}
		defer idx.Close()
		idxInfo, err := idx.Stat()
		if err != nil || !idxInfo.Mode().IsRegular() {
			return false
		}
		serveContent(w, r, idxInfo, idx)
		return true
	}
	if !info.Mode().IsRegular() {
		return false
	}

	serveContent(w, r, info, f)
	return true
}

func (h *StaticHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(filepath.Join(h.root, indexFile))
	if err != nil {
		slog.Warn("entry document unavailable", "root", h.root, "error", err)
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		slog.Warn("entry document unavailable", "root", h.root, "error", err)
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	serveContent(w, r, info, f)
}

func serveContent(w http.ResponseWriter, r *http.Request, info fs.FileInfo, f http.File) {
	w.Header().Set("Cache-Control", "public, max-age=0")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func hasDotSegment(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
