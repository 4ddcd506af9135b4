package handler

import (
	"net/http"
	"path/filepath"
)

var Index = "GET /"

const indexPage = "index.html"

type staticHandler struct {
	indexFile string
	files     http.Handler
}

// NewStaticHandler serves the landing page at "/" and every other path from
// staticDir.
func NewStaticHandler(viewsDir, staticDir string) *staticHandler {
	return &staticHandler{
		indexFile: filepath.Join(viewsDir, indexPage),
		files:     http.FileServer(http.Dir(staticDir)),
	}
}

func (s *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		http.ServeFile(w, r, s.indexFile)
		return
	}
	s.files.ServeHTTP(w, r)
}
