package handler_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"exercisetracker/internal/http/handler"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StaticHandler", func() {
	var (
		h         http.Handler
		w         *httptest.ResponseRecorder
		viewsDir  string
		staticDir string
	)

	BeforeEach(func() {
		viewsDir = GinkgoT().TempDir()
		staticDir = GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(viewsDir, "index.html"), []byte("<h1>Exercise tracker</h1>"), 0o644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(staticDir, "style.css"), []byte("body { margin: 0; }"), 0o644)).To(Succeed())

		w = httptest.NewRecorder()
		h = handler.NewStaticHandler(viewsDir, staticDir)
	})

	It("should serve the landing page at the root", func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Exercise tracker"))
	})

	It("should serve assets from the static directory", func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/style.css", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(HavePrefix("text/css"))
		Expect(w.Body.String()).To(Equal("body { margin: 0; }"))
	})

	It("should return 404 for missing assets", func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing.js", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
