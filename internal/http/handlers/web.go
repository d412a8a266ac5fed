package handlers

import (
	"embed"
	"net/http"
)

//go:embed static/index.html
var staticFS embed.FS

// Index serves the single-page frontend.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "frontend unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
