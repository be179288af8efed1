package handler

import (
	"net/http"
	"path/filepath"
)

// StaticHandler serves the two fixed frontend documents from disk.
type StaticHandler struct {
	dir string
}

// NewStaticHandler creates a StaticHandler serving documents from dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Dashboard handles GET / - the main dashboard page.
func (h *StaticHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}

// ProfilePage handles GET /page2 - the medical profile page.
func (h *StaticHandler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.dir, "page2.html"))
}
