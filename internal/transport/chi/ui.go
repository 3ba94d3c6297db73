package chi

import (
	_ "embed"
	"net/http"
)

//go:embed page.html
var pageHTML []byte

// Index handles GET /, serving the interactive search page.
func (s *Server) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(pageHTML)
}
